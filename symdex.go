// Package symdex provides a local catalog of symbol panels extracted from
// large SVG template documents. It detects the fixed-size panels a document
// is made of, resolves each panel's multilingual label, exports a standalone
// preview per panel, and writes a manifest that a keyword search reads back.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., etree/, sqlite/, fs/).
package symdex
