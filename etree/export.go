package etree

import (
	"strconv"

	"github.com/beevik/etree"
	"github.com/fwojciec/symdex"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Exporter builds standalone preview documents from panel groups.
// Copied elements keep their source formatting.
type Exporter struct{}

// NewExporter returns an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export copies the panel's child elements, except the label <switch> and
// any bare <text>, into a new 600x400 SVG document.
func (e *Exporter) Export(panel *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")

	w := strconv.Itoa(symdex.PanelWidth)
	h := strconv.Itoa(symdex.PanelHeight)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNamespace)
	for _, ns := range namespaceDecls(panel) {
		svg.CreateAttr(ns.FullKey(), ns.Value)
	}
	svg.CreateAttr("width", w)
	svg.CreateAttr("height", h)
	svg.CreateAttr("viewBox", "0 0 "+w+" "+h)

	for _, child := range panel.ChildElements() {
		if child.Tag == "switch" || child.Tag == "text" {
			continue
		}
		svg.CreateText("\n")
		svg.AddChild(child.Copy())
	}
	svg.CreateText("\n")
	doc.CreateText("\n")
	return doc.WriteToBytes()
}

// namespaceDecls returns the prefixed xmlns declarations in scope at el,
// so copied elements keep resolving prefixes such as xlink:.
func namespaceDecls(el *etree.Element) []etree.Attr {
	var decls []etree.Attr
	seen := make(map[string]bool)
	for p := el; p != nil; p = p.Parent() {
		for _, a := range p.Attr {
			if a.Space != "xmlns" || seen[a.Key] {
				continue
			}
			seen[a.Key] = true
			decls = append(decls, a)
		}
	}
	return decls
}
