package version

// Version contains the application version information.
// Release builds set it via ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/barrelgen/internal/version.Version=v1.2.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	if GitCommit == "unknown" {
		return "barrelgen " + Version
	}
	return "barrelgen " + Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
