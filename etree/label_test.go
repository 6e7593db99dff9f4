package etree_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/fwojciec/symdex"
	symetree "github.com/fwojciec/symdex/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panelFrom parses a single <g> panel element.
func panelFrom(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(xml))
	return doc.Root()
}

func TestLabelExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers the English variant and joins its lines", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch>
			<text systemLanguage="de"><tspan>Panzer</tspan></text>
			<text systemLanguage="en"><tspan>  Tank, </tspan><tspan>Heavy</tspan></text>
			<text><tspan>Default</tspan></text>
		</switch></g>`)

		assert.Equal(t, "Tank, Heavy", symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("falls back to the last variant without an English one", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch>
			<text systemLanguage="fr"><tspan>Char</tspan></text>
			<text systemLanguage="de"><tspan>Panzer</tspan></text>
		</switch></g>`)

		assert.Equal(t, "Panzer", symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("single non-English variant is used rather than unlabeled", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch><text systemLanguage="fr"><tspan>Char lourd</tspan></text></switch></g>`)

		assert.Equal(t, "Char lourd", symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("configured fallback language beats last variant", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch>
			<text systemLanguage="fr"><tspan>Char</tspan></text>
			<text systemLanguage="de"><tspan>Panzer</tspan></text>
		</switch></g>`)
		x := &symetree.LabelExtractor{Lang: "en", FallbackLang: "fr"}

		assert.Equal(t, "Char", x.Extract(panel))
	})

	t.Run("configured preferred language", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch>
			<text systemLanguage="en"><tspan>Tank</tspan></text>
			<text systemLanguage="de"><tspan>Panzer</tspan></text>
			<text><tspan>Default</tspan></text>
		</switch></g>`)
		x := &symetree.LabelExtractor{Lang: "de"}

		assert.Equal(t, "Panzer", x.Extract(panel))
	})

	t.Run("collapses whitespace inside lines", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch><text systemLanguage="en"><tspan>Air
			Defense    Artillery</tspan><tspan>   </tspan><tspan>(ADA)</tspan></text></switch></g>`)

		assert.Equal(t, "Air Defense Artillery (ADA)", symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("text without tspans yields unlabeled", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch><text systemLanguage="en">Armor</text></switch></g>`)

		assert.Equal(t, symdex.DefaultLabel, symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("no switch yields unlabeled", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><text><tspan>Caption outside switch</tspan></text></g>`)

		assert.Equal(t, symdex.DefaultLabel, symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("switch without text yields unlabeled", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch><g/></switch></g>`)

		assert.Equal(t, symdex.DefaultLabel, symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("blank text yields unlabeled", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g><switch><text systemLanguage="en"><tspan>  </tspan></text></switch></g>`)

		assert.Equal(t, symdex.DefaultLabel, symetree.NewLabelExtractor().Extract(panel))
	})

	t.Run("only the first switch is read", func(t *testing.T) {
		t.Parallel()

		panel := panelFrom(t, `<g>
			<switch><text systemLanguage="en"><tspan>First</tspan></text></switch>
			<switch><text systemLanguage="en"><tspan>Second</tspan></text></switch>
		</g>`)

		assert.Equal(t, "First", symetree.NewLabelExtractor().Extract(panel))
	})
}
