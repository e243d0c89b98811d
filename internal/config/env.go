package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; values already in the environment win.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads every env file present in the working directory.
func loadEnvFiles() {
	present := make([]string, 0, len(envFiles))
	for _, name := range envFiles {
		if _, err := os.Stat(name); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return
	}
	// A malformed env file must not block generation; ${VAR} simply stays empty.
	_ = godotenv.Load(present...)
}
