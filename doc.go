// Package main implements the semtag CLI tool.
//
// The semtag tool computes the next semantic-version tag for a git
// repository. It lists the repository's tags, parses the ones that encode a
// semantic version, selects the highest-precedence version among them, asks
// which component to bump (Major, Minor, or Patch), and creates the
// resulting annotated tag at HEAD. Tags that don't encode a semantic version
// are ignored, so semver and non-semver tags can coexist in one repository.
//
// Command Usage:
//
//	semtag [flags] [workdir]
//
// Flags:
//
//	-d, --debug:   Increases log verbosity. May be repeated; -dd also attaches
//	               source locations to log records.
//	-f, --force:   Allows tagging while a branch other than master or main is
//	               checked out.
//	-b, --bump:    Selects the bump kind (major|minor|patch) up front, which
//	               skips the interactive prompt. Required when stdin is not a
//	               terminal.
//	    --filter:  Only considers tags whose version satisfies the given
//	               constraint (Masterminds syntax, e.g. "^1"). Useful when a
//	               repository carries several release lines.
//	    --seed:    The version offered when the repository has no
//	               semantic-version tags yet. Defaults to 0.1.0.
//	-y, --yes:     Skips the creation confirmation.
//	    --dry-run: Prints the tag that would be created without creating it.
//
// Examples:
//
//	# Bump interactively in the current repository
//	semtag
//
//	# Bump the minor version of the repository at ../service without prompts
//	semtag --bump minor --yes ../service
//
//	# See what tag a patch bump would create
//	semtag --bump patch --dry-run
//
//	# Only consider the 1.x release line
//	semtag --filter "^1" --bump patch
//
// The new tag reuses the prefix of the tag it succeeds: bumping the minor of
// v1.2.0 creates v1.3.0, bumping 1.2.0 creates 1.3.0. Prerelease and build
// metadata never survive a bump; the created tag is always a plain release.
//
// A repository can override defaults (tag prefix for seeding, annotation
// message, allowed branches, default filter) with a .semtag.toml file at its
// root.
//
// For the library API, see the documentation of the "pkg" package.
package main
