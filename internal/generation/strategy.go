package generation

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/barrelgen/internal/foundation"
	"git.home.luguber.info/inful/barrelgen/internal/foundation/errors"
)

// Strategy selects how a directory tree maps onto barrel files.
type Strategy string

const (
	// Regular writes one barrel for the target's immediate files.
	Regular Strategy = "REGULAR"
	// Recursive writes a barrel in every visited directory; parents export child barrels.
	Recursive Strategy = "RECURSIVE"
	// RegularSubfolders writes one barrel exporting every file in the subtree.
	RegularSubfolders Strategy = "REGULAR_SUBFOLDERS"
)

var strategyNormalizer = foundation.NewNormalizer(map[string]Strategy{
	"regular":            Regular,
	"recursive":          Recursive,
	"regular_subfolders": RegularSubfolders,
	"subfolders":         RegularSubfolders,
}, Regular)

// ParseStrategy accepts any casing, with '-' or '_' as separator.
func ParseStrategy(raw string) (Strategy, error) {
	s, err := strategyNormalizer.NormalizeWithError(raw)
	if err != nil {
		return "", unknownStrategy(raw, err)
	}
	return s, nil
}

// unknownStrategy carries the accepted spellings in its message.
func unknownStrategy(raw string, cause error) error {
	msg := fmt.Sprintf("unknown generation type %q (expected one of: %s)", raw, strings.Join(strategyNormalizer.Keys(), ", "))
	return errors.ValidationError(msg).
		WithCause(cause).
		WithContext("type", raw).
		Build()
}

// Label is the lower-case form used in log lines and metric labels.
func (s Strategy) Label() string {
	return strings.ToLower(string(s))
}

// Valid reports whether s is one of the declared strategies.
func (s Strategy) Valid() bool {
	switch s {
	case Regular, Recursive, RegularSubfolders:
		return true
	}
	return false
}
