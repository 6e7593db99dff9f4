// Package etree implements panel scanning for SVG template documents
// using the beevik/etree XML DOM.
package etree

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"

	"github.com/beevik/etree"
	"github.com/fwojciec/symdex"
)

// LoadDocument reads the SVG document at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not
// well-formed XML.
func LoadDocument(path string) (*etree.Document, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, symdex.Errorf(symdex.ENOTFOUND, "SVG not found at %s", path)
	} else if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	// Illustrator and Inkscape exports routinely carry HTML entities
	// such as &nbsp; that plain XML does not define.
	doc.ReadSettings.Entity = xml.HTMLEntity
	if err := doc.ReadFromFile(path); err != nil {
		return nil, symdex.Errorf(symdex.EINVALID, "parsing %s: %v", path, err)
	}
	if doc.Root() == nil {
		return nil, symdex.Errorf(symdex.EINVALID, "%s has no root element", path)
	}
	return doc, nil
}
