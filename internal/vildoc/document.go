// Package vildoc reads and writes Vial .vil documents while preserving the
// content and ordering of every section it does not touch. The Vial
// application is picky about the shape of its save files, so a template's
// sections must round-trip exactly.
package vildoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Section is one top-level entry of a .vil document. Value holds the raw
// JSON exactly as it appeared in the source document.
type Section struct {
	Name  string
	Value json.RawMessage
}

// Document is an ordered .vil document.
type Document struct {
	sections []Section
	index    map[string]int
}

// Parse decodes a .vil document, keeping section order.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read document start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("document root is %v, expected an object", tok)
	}

	doc := &Document{index: make(map[string]int)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read section name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("section name is %v, expected a string", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("read section %q: %w", name, err)
		}
		if _, dup := doc.index[name]; dup {
			return nil, fmt.Errorf("duplicate section %q", name)
		}
		doc.index[name] = len(doc.sections)
		doc.sections = append(doc.sections, Section{Name: name, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read document end: %w", err)
	}
	return doc, nil
}

// Get returns the raw value of the named section.
func (d *Document) Get(name string) (json.RawMessage, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.sections[i].Value, true
}

// Set replaces the value of an existing section in place. It reports false
// when the section does not exist; Set never appends, since the template is
// authoritative for which sections a document carries.
func (d *Document) Set(name string, value json.RawMessage) bool {
	i, ok := d.index[name]
	if !ok {
		return false
	}
	d.sections[i].Value = value
	return true
}

// Sections returns the ordered section list.
func (d *Document) Sections() []Section {
	return d.sections
}

// Encode writes the document as compact JSON with sections in their original
// order.
func (d *Document) Encode(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range d.sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(sec.Name)
		if err != nil {
			return fmt.Errorf("encode section name %q: %w", sec.Name, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		if err := json.Compact(&buf, sec.Value); err != nil {
			return fmt.Errorf("encode section %q: %w", sec.Name, err)
		}
	}
	buf.WriteByte('}')

	_, err := w.Write(buf.Bytes())
	return err
}

// Bytes returns the encoded document.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
