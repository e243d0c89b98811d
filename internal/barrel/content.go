package barrel

import "strings"

// RenderBarrel builds the barrel body: one export line per file, each newline-terminated.
func RenderBarrel(prefix string, files []string) string {
	var b strings.Builder
	for _, f := range files {
		b.WriteString("export '")
		b.WriteString(prefix)
		b.WriteString(f)
		b.WriteString("';\n")
	}
	return b.String()
}
