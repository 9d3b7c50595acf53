package semtag

import (
	"errors"

	"github.com/Masterminds/semver/v3"

	"github.com/example/semtag/pkg/log"
)

// ErrNoTags is returned by Scan when no tag in the input parses as a
// semantic version. It is recoverable: the caller decides the fallback
// (e.g. offering an initial 0.1.0) instead of this package picking one.
var ErrNoTags = errors.New("no semantic version tags found")

// TagRecord pairs a raw tag string with its parsed version. Records only
// live for the duration of one scan.
type TagRecord struct {
	Raw     string
	Version Version
}

type scanOptions struct {
	filter *semver.Constraints
}

// ScanOption adjusts how Scan selects among tags.
type ScanOption func(*scanOptions)

// WithFilter restricts the scan to tags whose MAJOR.MINOR.PATCH triplet
// satisfies the constraint, so a repository with several release lines can
// bump within one of them (e.g. "^1").
func WithFilter(c *semver.Constraints) ScanOption {
	return func(o *scanOptions) {
		o.filter = c
	}
}

// Scan parses every raw tag and returns the record with the highest
// precedence. Tags that are not semantic versions are skipped, tolerating
// non-semver tags in the same repository. When two distinct tags parse to
// equal versions the first one in input order wins; the input is assumed to
// be in repository listing order and is not re-sorted.
func Scan(rawTags []string, opts ...ScanOption) (TagRecord, error) {
	var o scanOptions
	for _, opt := range opts {
		opt(&o)
	}

	var best TagRecord
	found := false
	for _, raw := range rawTags {
		v, err := ParseTag(raw)
		if err != nil {
			log.Debug("skipping tag", "tag", raw, "reason", err)
			continue
		}
		if o.filter != nil && !o.filter.Check(semver.New(v.Major, v.Minor, v.Patch, "", "")) {
			log.Debug("tag excluded by filter", "tag", raw)
			continue
		}
		if !found || best.Version.LessThan(v) {
			best = TagRecord{Raw: raw, Version: v}
			found = true
		}
	}
	if !found {
		return TagRecord{}, ErrNoTags
	}
	return best, nil
}
