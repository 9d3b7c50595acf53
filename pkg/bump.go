package semtag

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Kind selects which version component a bump increments.
type Kind int

const (
	KindMajor Kind = iota
	KindMinor
	KindPatch
)

// Kinds lists all bump kinds in prompt order.
var Kinds = []Kind{KindMajor, KindMinor, KindPatch}

// ErrOverflow is returned when an increment would exceed the representable
// component range. It is fatal; the value is never wrapped around.
var ErrOverflow = errors.New("version component overflow")

func (k Kind) String() string {
	switch k {
	case KindMajor:
		return "Major"
	case KindMinor:
		return "Minor"
	case KindPatch:
		return "Patch"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a bump keyword ("major", "minor", "patch",
// case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "major":
		return KindMajor, nil
	case "minor":
		return KindMinor, nil
	case "patch":
		return KindPatch, nil
	}
	return 0, fmt.Errorf("unknown bump kind: %q", s)
}

// Bump computes the successor of current for the requested kind. Lower
// components reset to zero and any prerelease or build metadata is dropped;
// a bumped version is always a plain release.
func Bump(current Version, kind Kind) (Version, error) {
	next := Version{Major: current.Major, Minor: current.Minor, Patch: current.Patch}
	var err error
	switch kind {
	case KindMajor:
		next.Major, err = increment(next.Major)
		next.Minor = 0
		next.Patch = 0
	case KindMinor:
		next.Minor, err = increment(next.Minor)
		next.Patch = 0
	case KindPatch:
		next.Patch, err = increment(next.Patch)
	default:
		return Version{}, fmt.Errorf("unknown bump kind: %d", int(kind))
	}
	if err != nil {
		return Version{}, fmt.Errorf("bumping %s of %s: %w", kind, current, err)
	}
	return next, nil
}

func increment(n uint64) (uint64, error) {
	if n == math.MaxUint64 {
		return 0, ErrOverflow
	}
	return n + 1, nil
}
