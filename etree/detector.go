package etree

import (
	"regexp"
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/symdex"
)

var translateRE = regexp.MustCompile(`translate\(\s*([-+0-9.eE]+)(?:\s*,\s*|\s+)?([-+0-9.eE]+)?\s*\)`)

// Detection is a panel group found by a Detector.
type Detection struct {
	Element *etree.Element
	Index   int // position among all positioned groups
	Origin  symdex.Point
}

// Detector finds panel groups: <g transform="..."> elements with a
// descendant that draws a panel border.
type Detector struct {
	Border BorderMatcher
}

// NewDetector returns a Detector using border to classify groups.
// A nil border selects LiteralBorder.
func NewDetector(border BorderMatcher) *Detector {
	if border == nil {
		border = LiteralBorder{}
	}
	return &Detector{Border: border}
}

// Detect walks root and its descendants in document order and returns every
// panel group. Nested panel groups are reported individually.
func (d *Detector) Detect(root *etree.Element) []*Detection {
	var detections []*Detection
	index := 0
	walk(root, func(el *etree.Element) {
		if el.Tag != "g" || el.SelectAttr("transform") == nil {
			return
		}
		i := index
		index++
		if !d.hasBorder(el) {
			return
		}
		detections = append(detections, &Detection{
			Element: el,
			Index:   i,
			Origin:  ParseTranslate(el.SelectAttrValue("transform", "")),
		})
	})
	return detections
}

func (d *Detector) hasBorder(group *etree.Element) bool {
	found := false
	for _, child := range group.ChildElements() {
		walk(child, func(el *etree.Element) {
			if !found && d.Border.MatchBorder(el) {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}

// ParseTranslate returns the offset of the first translate() in a transform
// attribute. A missing y component is zero; an attribute without a parseable
// translate yields the zero point.
func ParseTranslate(transform string) symdex.Point {
	m := translateRE.FindStringSubmatch(transform)
	if m == nil {
		return symdex.Point{}
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return symdex.Point{}
	}
	var y float64
	if m[2] != "" {
		if y, err = strconv.ParseFloat(m[2], 64); err != nil {
			return symdex.Point{}
		}
	}
	return symdex.Point{X: x, Y: y}
}

// walk calls fn for el and each of its descendant elements in pre-order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		walk(child, fn)
	}
}
