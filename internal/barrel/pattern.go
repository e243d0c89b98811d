package barrel

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

// Pattern is a compiled exclusion glob.
//
// A pattern without a slash matches the final path segment. A pattern with a
// slash matches the whole POSIX path; relative ones may start at any depth.
type Pattern struct {
	raw       string
	re        *regexp.Regexp
	matchBase bool
}

// CompilePattern compiles a single glob.
func CompilePattern(glob string) (*Pattern, error) {
	matchBase := !strings.Contains(glob, "/")
	expr := glob
	if !matchBase && !strings.HasPrefix(expr, "/") && !strings.HasPrefix(expr, "**") {
		expr = "**/" + expr
	}
	re, err := regexp.Compile(globToRegex(expr))
	if err != nil {
		return nil, errors.WrapError(fmt.Errorf("%w: %w", ErrInvalidPattern, err), errors.CategoryConfig, "invalid exclusion pattern").
			Fatal().
			WithContext("pattern", glob).
			Build()
	}
	return &Pattern{raw: glob, re: re, matchBase: matchBase}, nil
}

// String returns the glob as written.
func (p *Pattern) String() string { return p.raw }

// Match reports whether the POSIX path matches.
func (p *Pattern) Match(posixPath string) bool {
	if p.matchBase {
		return p.re.MatchString(path.Base(posixPath))
	}
	return p.re.MatchString(posixPath)
}

// PatternSet matches when any member matches.
type PatternSet []*Pattern

// CompilePatterns compiles every glob, failing on the first invalid one.
func CompilePatterns(globs []string) (PatternSet, error) {
	out := make(PatternSet, 0, len(globs))
	for _, g := range globs {
		if strings.TrimSpace(g) == "" {
			continue
		}
		p, err := CompilePattern(g)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// MatchAny reports whether any pattern matches the path.
func (s PatternSet) MatchAny(posixPath string) bool {
	for _, p := range s {
		if p.Match(posixPath) {
			return true
		}
	}
	return false
}

// MatchesGlob reports whether path matches glob. Invalid globs never match.
func MatchesGlob(posixPath, glob string) bool {
	p, err := CompilePattern(glob)
	if err != nil {
		return false
	}
	return p.Match(posixPath)
}

// globToRegex converts a shell-style glob to an anchored regex.
// `**/` spans zero or more directories, a trailing `/**` anything below,
// `*` and `?` stay within one segment.
func globToRegex(glob string) string {
	trailing := ""
	if strings.HasSuffix(glob, "/**") {
		glob = strings.TrimSuffix(glob, "/**")
		trailing = "(?:/.*)?"
	}

	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(glob); i++ {
		c := glob[i]
		switch c {
		case '*':
			j := i
			for j < len(glob) && glob[j] == '*' {
				j++
			}
			if j-i == 1 {
				b.WriteString("[^/]*")
				continue
			}
			segmentStart := i == 0 || glob[i-1] == '/'
			if segmentStart && j < len(glob) && glob[j] == '/' {
				b.WriteString("(?:.*/)?")
				i = j
			} else {
				b.WriteString(".*")
				i = j - 1
			}
		case '?':
			b.WriteString("[^/]")
		case '[':
			end := strings.IndexByte(glob[i+1:], ']')
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			class := glob[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i += end + 1
		case '\\':
			if i+1 < len(glob) {
				i++
				b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
			} else {
				b.WriteString(`\\`)
			}
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	b.WriteString(trailing)
	b.WriteString("$")
	return b.String()
}
