package symdex_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fwojciec/symdex"
	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_]{0,80}$`)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"punctuation and parens", "Infantry, Mechanized (NATO)", "infantry_mechanized_nato"},
		{"already a slug", "armor", "armor"},
		{"digits kept", "Rocket Launcher 122mm", "rocket_launcher_122mm"},
		{"leading and trailing junk", "  --Tank, Heavy!!  ", "tank_heavy"},
		{"unicode letters are separators", "Défense Aérienne", "d_fense_a_rienne"},
		{"only separators", " ,.;- ", ""},
		{"empty", "", ""},
		{"unlabeled default", symdex.DefaultLabel, "unlabeled"},
		{"runs collapse", "a   b___c", "a_b_c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, symdex.Slugify(tt.label))
		})
	}
}

func TestSlugify_TruncatesToMaxLength(t *testing.T) {
	t.Parallel()

	label := strings.Repeat("abcdefghi ", 20)

	slug := symdex.Slugify(label)

	assert.LessOrEqual(t, len(slug), symdex.MaxSlugLen)
	assert.True(t, strings.HasPrefix(slug, "abcdefghi_abcdefghi"))
	// Position 80 falls on a separator, which must not be left dangling.
	assert.False(t, strings.HasSuffix(slug, "_"))
	assert.Regexp(t, slugPattern, slug)
}

func TestSlugify_IsDeterministicAndWellFormed(t *testing.T) {
	t.Parallel()

	labels := []string{
		"Air Defense Artillery (ADA)",
		"_underscored_",
		"Ünïcödé Symbol / Variant #2",
		strings.Repeat("x", 200),
		"Tank, Heavy — Tracked",
	}

	for _, label := range labels {
		first := symdex.Slugify(label)
		assert.Equal(t, first, symdex.Slugify(label), label)
		assert.Regexp(t, slugPattern, first, label)
		assert.False(t, strings.HasPrefix(first, "_"), label)
		assert.False(t, strings.HasSuffix(first, "_"), label)
	}
}
