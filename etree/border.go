package etree

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// PanelBorder is the path data every panel template draws its border with.
const PanelBorder = "M 5,5 H 595 V 395 H 5 Z"

// Border dimensions of a panel template.
const (
	BorderWidth  = 590
	BorderHeight = 390
)

// BorderMatcher reports whether an element draws a panel border.
type BorderMatcher interface {
	MatchBorder(el *etree.Element) bool
}

// LiteralBorder matches paths whose data is exactly PanelBorder.
// Borders drawn with any other path syntax are not recognized.
type LiteralBorder struct{}

// MatchBorder implements BorderMatcher.
func (LiteralBorder) MatchBorder(el *etree.Element) bool {
	if el.Tag != "path" {
		return false
	}
	attr := el.SelectAttr("d")
	return attr != nil && attr.Value == PanelBorder
}

// GeometryBorder matches paths and rects that outline a closed axis-aligned
// rectangle of the border size, whatever syntax they are written in.
type GeometryBorder struct{}

// MatchBorder implements BorderMatcher.
func (GeometryBorder) MatchBorder(el *etree.Element) bool {
	switch el.Tag {
	case "path":
		w, h, ok := rectangleSize(el.SelectAttrValue("d", ""))
		return ok && sameLength(w, BorderWidth) && sameLength(h, BorderHeight)
	case "rect":
		w, errW := strconv.ParseFloat(strings.TrimSpace(el.SelectAttrValue("width", "")), 64)
		h, errH := strconv.ParseFloat(strings.TrimSpace(el.SelectAttrValue("height", "")), 64)
		return errW == nil && errH == nil && sameLength(w, BorderWidth) && sameLength(h, BorderHeight)
	}
	return false
}

func sameLength(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
