package semtag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotSemver is returned (wrapped with detail) when a tag does not contain
// a well-formed semantic version. Callers that scan many tags should test
// with errors.Is and skip the offending tag.
var ErrNotSemver = errors.New("not a semantic version")

// Version is an immutable semantic version value. Prerelease identifiers are
// kept as an ordered sequence; Build metadata is carried verbatim and never
// participates in comparison.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []string
	Build      string
}

// ParseTag parses a raw tag string into a Version.
//
// The tag may carry a leading run of non-digit characters (e.g. "v" or
// "release-") before the MAJOR.MINOR.PATCH triplet; the prefix is accepted
// and discarded here (FormatTag recovers it from the raw string). After the
// triplet an optional "-prerelease" and "+build" suffix are accepted.
// Numeric segments must not have leading zeros unless they are exactly "0".
func ParseTag(raw string) (Version, error) {
	rest := raw[len(TagPrefix(raw)):]
	if rest == "" {
		return Version{}, fmt.Errorf("%w: no version digits in %q", ErrNotSemver, raw)
	}

	var v Version
	if at := strings.IndexByte(rest, '+'); at >= 0 {
		v.Build = rest[at+1:]
		rest = rest[:at]
		if err := checkIdentifiers(v.Build, false); err != nil {
			return Version{}, fmt.Errorf("%w: build metadata in %q: %v", ErrNotSemver, raw, err)
		}
	}
	if at := strings.IndexByte(rest, '-'); at >= 0 {
		pre := rest[at+1:]
		rest = rest[:at]
		if err := checkIdentifiers(pre, true); err != nil {
			return Version{}, fmt.Errorf("%w: prerelease in %q: %v", ErrNotSemver, raw, err)
		}
		v.Prerelease = strings.Split(pre, ".")
	}

	nums := strings.Split(rest, ".")
	if len(nums) != 3 {
		return Version{}, fmt.Errorf("%w: %q does not contain MAJOR.MINOR.PATCH", ErrNotSemver, raw)
	}
	var err error
	if v.Major, err = parseNumeric(nums[0]); err != nil {
		return Version{}, fmt.Errorf("%w: major in %q: %v", ErrNotSemver, raw, err)
	}
	if v.Minor, err = parseNumeric(nums[1]); err != nil {
		return Version{}, fmt.Errorf("%w: minor in %q: %v", ErrNotSemver, raw, err)
	}
	if v.Patch, err = parseNumeric(nums[2]); err != nil {
		return Version{}, fmt.Errorf("%w: patch in %q: %v", ErrNotSemver, raw, err)
	}
	return v, nil
}

// TagPrefix returns the leading run of non-digit characters of a raw tag,
// which may be empty. Everything from the first ASCII digit on is considered
// the version part.
func TagPrefix(raw string) string {
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			return raw[:i]
		}
	}
	return raw
}

// String renders the version without any tag prefix, e.g. "1.2.3-rc.1+b42".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		s += "-" + strings.Join(v.Prerelease, ".")
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Compare returns -1, 0, or +1 if v is lower than, equal to, or higher than
// o in semantic-versioning precedence. Build metadata is ignored; a release
// outranks a prerelease of the same triplet.
func (v Version) Compare(o Version) int {
	if c := compareUint(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareUint(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := compareUint(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case len(v.Prerelease) == 0 && len(o.Prerelease) == 0:
		return 0
	case len(v.Prerelease) == 0:
		return 1
	case len(o.Prerelease) == 0:
		return -1
	}
	return comparePrerelease(v.Prerelease, o.Prerelease)
}

// LessThan reports whether v has lower precedence than o.
func (v Version) LessThan(o Version) bool {
	return v.Compare(o) < 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// comparePrerelease walks both identifier sequences position by position.
// Numeric identifiers compare numerically and always rank below alphanumeric
// ones; a sequence that is a strict prefix of the other ranks lower.
func comparePrerelease(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		an, aNum := numericIdentifier(a[i])
		bn, bNum := numericIdentifier(b[i])
		switch {
		case aNum && bNum:
			if c := compareUint(an, bn); c != 0 {
				return c
			}
		case aNum:
			return -1
		case bNum:
			return 1
		default:
			if c := strings.Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
	}
	return compareUint(uint64(len(a)), uint64(len(b)))
}

func numericIdentifier(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	return n, err == nil
}

// parseNumeric parses a MAJOR/MINOR/PATCH segment: ASCII digits only, no
// leading zero unless the segment is exactly "0".
func parseNumeric(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty numeric segment")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character in %q", s)
		}
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("leading zero in %q", s)
	}
	return strconv.ParseUint(s, 10, 64)
}

// checkIdentifiers validates a dot-separated prerelease or build suffix.
// Identifiers are ASCII alphanumerics and hyphens and must be non-empty.
// Numeric prerelease identifiers additionally must not have leading zeros.
func checkIdentifiers(s string, prerelease bool) error {
	if s == "" {
		return errors.New("empty suffix")
	}
	for _, id := range strings.Split(s, ".") {
		if id == "" {
			return errors.New("empty identifier")
		}
		numeric := true
		for i := 0; i < len(id); i++ {
			c := id[i]
			switch {
			case c >= '0' && c <= '9':
			case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-':
				numeric = false
			default:
				return fmt.Errorf("invalid character %q in identifier %q", c, id)
			}
		}
		if prerelease && numeric && len(id) > 1 && id[0] == '0' {
			return fmt.Errorf("leading zero in numeric identifier %q", id)
		}
	}
	return nil
}
