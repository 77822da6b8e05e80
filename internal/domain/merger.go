package domain

import (
	"encoding/json"
	"fmt"

	m "github.com/zmk-tools/zmk2vial/internal/model"
	"github.com/zmk-tools/zmk2vial/internal/vildoc"
)

const layoutSection = "layout"

// Merger injects mapped grids into a template document. Only the layout
// section is touched; macros, tap-dance tables and settings stay exactly as
// the template had them.
type Merger interface {
	// Capacity returns how many layers the template's layout section holds.
	Capacity(doc *vildoc.Document) (int, error)

	// Merge replaces the template's layout section with the mapped grids.
	Merge(doc *vildoc.Document, grids []m.Grid) error
}

type merger struct{}

// NewMerger constructs a Merger.
func NewMerger() Merger {
	return &merger{}
}

func (mg *merger) Capacity(doc *vildoc.Document) (int, error) {
	raw, ok := doc.Get(layoutSection)
	if !ok {
		return 0, fmt.Errorf("%w: template has no %q section", m.ErrTemplateSectionMissing, layoutSection)
	}

	var layers []json.RawMessage
	if err := json.Unmarshal(raw, &layers); err != nil {
		return 0, fmt.Errorf("%w: template %q section is not a layer array: %v",
			m.ErrTemplateSectionMissing, layoutSection, err)
	}
	return len(layers), nil
}

func (mg *merger) Merge(doc *vildoc.Document, grids []m.Grid) error {
	data, err := json.Marshal(grids)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if !doc.Set(layoutSection, data) {
		return fmt.Errorf("%w: template has no %q section", m.ErrTemplateSectionMissing, layoutSection)
	}
	return nil
}
