package template

import "strings"

// Slugify derives a URL/anchor-safe identifier from display text:
// lowercase, runs of non-alphanumerics collapsed to a single hyphen,
// leading and trailing hyphens trimmed.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevHyphen := false
	for _, r := range strings.ToLower(text) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
