package semtag

import "fmt"

// FormatTag renders a new tag string for v, reusing whatever leading prefix
// the template tag carried (e.g. "v1.2.0" begets "v1.3.0", "1.2.0" begets
// "1.3.0"). Only the MAJOR.MINOR.PATCH triplet is emitted; prerelease and
// build metadata are never re-attached.
func FormatTag(templateRaw string, v Version) string {
	return fmt.Sprintf("%s%d.%d.%d", TagPrefix(templateRaw), v.Major, v.Minor, v.Patch)
}
