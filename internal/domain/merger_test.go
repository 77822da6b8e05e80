package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	m "github.com/zmk-tools/zmk2vial/internal/model"
	"github.com/zmk-tools/zmk2vial/internal/vildoc"
)

const miniTemplate = `{"version":1,"layout":[[["KC_NO"]],[["KC_NO"]]],"macro":[["text","keep me"]],"tap_dance":[["KC_ESC","KC_LCTRL","KC_NO","KC_NO",140]],"settings":{"4":140}}`

func TestMerger_Capacity(t *testing.T) {
	doc, err := vildoc.Parse([]byte(miniTemplate))
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}

	capacity, err := NewMerger().Capacity(doc)
	if err != nil {
		t.Fatalf("Capacity failed: %v", err)
	}
	if capacity != 2 {
		t.Errorf("capacity = %d, want 2", capacity)
	}
}

func TestMerger_CapacityMissingLayout(t *testing.T) {
	doc, err := vildoc.Parse([]byte(`{"version":1,"macro":[]}`))
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}

	if _, err := NewMerger().Capacity(doc); !errors.Is(err, m.ErrTemplateSectionMissing) {
		t.Fatalf("expected ErrTemplateSectionMissing, got %v", err)
	}
}

func TestMerger_MergeReplacesOnlyLayout(t *testing.T) {
	doc, err := vildoc.Parse([]byte(miniTemplate))
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}

	grids := []m.Grid{m.TransparentGrid(NewPositionMap().Dead)}
	if err := NewMerger().Merge(doc, grids); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	out, err := doc.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	merged, err := vildoc.Parse(out)
	if err != nil {
		t.Fatalf("re-parse merged document: %v", err)
	}

	original, _ := vildoc.Parse([]byte(miniTemplate))
	for _, sec := range original.Sections() {
		if sec.Name == "layout" {
			continue
		}
		got, ok := merged.Get(sec.Name)
		if !ok {
			t.Errorf("merged document lost section %q", sec.Name)
			continue
		}
		if !bytes.Equal(got, sec.Value) {
			t.Errorf("section %q changed:\n got %s\nwant %s", sec.Name, got, sec.Value)
		}
	}

	layout, _ := merged.Get("layout")
	var layers [][]json.RawMessage
	if err := json.Unmarshal(layout, &layers); err != nil {
		t.Fatalf("merged layout not an array: %v", err)
	}
	if len(layers) != 1 || len(layers[0]) != m.DestRows {
		t.Errorf("merged layout has %d layers x %d rows", len(layers), len(layers[0]))
	}
}
