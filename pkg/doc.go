// Package semtag provides the version-resolution and bump-computation core
// of the semtag CLI.
//
// It provides functionalities for:
//   - Parsing raw tag strings into structured semantic versions, accepting an
//     optional leading prefix such as "v" or "release-" (ParseTag).
//   - Ordering versions by semantic-versioning precedence, including the
//     prerelease identifier rules; build metadata never affects ordering
//     (Version.Compare).
//   - Scanning a tag list for the highest-precedence version while skipping
//     non-semver tags, optionally constrained to a release line (Scan).
//   - Computing the successor version for a bump kind; bumped versions are
//     always plain releases (Bump).
//   - Rendering the successor as a tag string that reuses the winning tag's
//     prefix (FormatTag).
//   - Git collaborators for listing tags, reading the current branch, and
//     creating annotated tags (OpenRepo).
//
// Usage Example:
//
//	repo, err := semtag.OpenRepo(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tags, _ := repo.Tags()
//	latest, err := semtag.Scan(tags)
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, semtag.ErrNoTags) means no semver tags yet
//	}
//	next, _ := semtag.Bump(latest.Version, semtag.KindMinor)
//	fmt.Println(semtag.FormatTag(latest.Raw, next)) // e.g. "v1.3.0"
package semtag
