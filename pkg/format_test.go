package semtag

import "testing"

// TestFormatTag validates prefix preservation and plain-release output.
func TestFormatTag(t *testing.T) {
	tests := []struct {
		template string
		v        Version
		expected string
	}{
		{"v1.2.0", Version{Major: 1, Minor: 3}, "v1.3.0"},
		{"1.2.0", Version{Major: 1, Minor: 3}, "1.3.0"},
		{"release-1.2.0", Version{Major: 2}, "release-2.0.0"},
		// Prerelease and build are never re-attached.
		{"v1.2.0-rc.1", Version{Major: 1, Minor: 2, Patch: 1, Prerelease: []string{"rc", "2"}, Build: "b1"}, "v1.2.1"},
	}
	for _, tc := range tests {
		if got := FormatTag(tc.template, tc.v); got != tc.expected {
			t.Errorf("FormatTag(%q, %+v) = %q, expected %q", tc.template, tc.v, got, tc.expected)
		}
	}
}
