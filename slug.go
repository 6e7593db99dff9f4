package symdex

import "strings"

// MaxSlugLen is the maximum slug length.
const MaxSlugLen = 80

// Slugify maps a label to a lowercase identifier made of [a-z0-9_].
// Every run of other characters becomes a single underscore, leading and
// trailing underscores are dropped and the result is at most MaxSlugLen long.
// Distinct labels may share a slug.
func Slugify(label string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	slug := b.String()
	if len(slug) > MaxSlugLen {
		slug = strings.TrimRight(slug[:MaxSlugLen], "_")
	}
	return slug
}
