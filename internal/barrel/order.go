package barrel

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OrderExports returns files sorted by locale-aware collation.
// Equal keys keep their input order. The input is not modified.
func OrderExports(files []string) []string {
	out := make([]string, len(files))
	copy(out, files)

	c := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i], out[j]) < 0
	})
	return out
}
