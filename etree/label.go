package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/symdex"
)

// DefaultLang is the preferred label language.
const DefaultLang = "en"

// LabelExtractor resolves a panel's label from its <switch> of
// language-tagged <text> variants.
type LabelExtractor struct {
	// Lang is the preferred systemLanguage.
	Lang string

	// FallbackLang is tried when no Lang variant exists. When empty, or
	// also missing, the last <text> in the switch is used.
	FallbackLang string
}

// NewLabelExtractor returns a LabelExtractor preferring English.
func NewLabelExtractor() *LabelExtractor {
	return &LabelExtractor{Lang: DefaultLang}
}

// Extract returns the flattened label of panel, or symdex.DefaultLabel if
// the panel has no usable text.
func (x *LabelExtractor) Extract(panel *etree.Element) string {
	sw := panel.SelectElement("switch")
	if sw == nil {
		return symdex.DefaultLabel
	}

	text := x.chooseText(descendants(sw, "text"))
	if text == nil {
		return symdex.DefaultLabel
	}

	var parts []string
	for _, tspan := range descendants(text, "tspan") {
		if s := strings.TrimSpace(textContent(tspan)); s != "" {
			parts = append(parts, s)
		}
	}

	label := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	if label == "" {
		return symdex.DefaultLabel
	}
	return label
}

func (x *LabelExtractor) chooseText(texts []*etree.Element) *etree.Element {
	if len(texts) == 0 {
		return nil
	}
	for _, lang := range []string{x.Lang, x.FallbackLang} {
		if lang == "" {
			continue
		}
		for _, t := range texts {
			if t.SelectAttrValue("systemLanguage", "") == lang {
				return t
			}
		}
	}
	return texts[len(texts)-1]
}

// descendants returns el's descendant elements with the given tag, in
// document order.
func descendants(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		walk(child, func(e *etree.Element) {
			if e.Tag == tag {
				out = append(out, e)
			}
		})
	}
	return out
}

// textContent concatenates all character data below el.
func textContent(el *etree.Element) string {
	var b strings.Builder
	var collect func(*etree.Element)
	collect = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				collect(t)
			}
		}
	}
	collect(el)
	return b.String()
}
