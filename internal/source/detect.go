package source

import "strings"

// IsGitURL reports whether the assembly source argument names a git
// repository rather than a local directory
func IsGitURL(arg string) bool {
	lower := strings.ToLower(arg)

	if strings.HasPrefix(arg, "git@") || strings.HasSuffix(lower, ".git") {
		return true
	}
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "ssh://") || strings.HasPrefix(lower, "git://") {
		return true
	}
	return false
}
