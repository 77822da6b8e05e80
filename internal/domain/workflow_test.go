package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zmk-tools/zmk2vial/internal/adapter"
	m "github.com/zmk-tools/zmk2vial/internal/model"
	"github.com/zmk-tools/zmk2vial/internal/vildoc"
)

func newTestWorkflow() Workflow {
	return NewWorkflow(adapter.NewTemplateStore(), adapter.NewVilWriter())
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestWorkflow_ConvertEndToEnd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "corne.vil")

	summary, err := newTestWorkflow().Convert(ConvertArgs{
		Source:   adapter.NewLocalKeymapSource(m.Path(filepath.Join("testdata", "corne.keymap"))),
		Template: m.Path(filepath.Join("testdata", "template.vil")),
		Output:   m.Path(output),
	})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if summary.Layers != 3 || summary.Capacity != 4 {
		t.Errorf("summary = %+v, want 3 layers in 4 slots", summary)
	}
	if len(summary.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", summary.Warnings)
	}

	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	merged, err := vildoc.Parse(written)
	if err != nil {
		t.Fatalf("re-parse output: %v", err)
	}

	// every non-layout section survives byte-for-byte
	templateData, err := os.ReadFile(filepath.Join("testdata", "template.vil"))
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	template, err := vildoc.Parse(templateData)
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	for _, sec := range template.Sections() {
		if sec.Name == "layout" {
			continue
		}
		got, ok := merged.Get(sec.Name)
		if !ok {
			t.Errorf("output lost section %q", sec.Name)
			continue
		}
		if !bytes.Equal(got, sec.Value) {
			t.Errorf("section %q changed:\n got %s\nwant %s", sec.Name, got, sec.Value)
		}
	}

	layout, ok := merged.Get("layout")
	if !ok {
		t.Fatal("output has no layout section")
	}
	var layers []m.Grid
	if err := json.Unmarshal(layout, &layers); err != nil {
		t.Fatalf("decode output layout: %v", err)
	}
	if len(layers) != 4 {
		t.Fatalf("output has %d layers, want 4", len(layers))
	}
	if got := layers[0][0][0]; got != (m.Cell{Keycode: "KC_TAB"}) {
		t.Errorf("layer 0 cell [0][0] = %+v, want KC_TAB", got)
	}
	if got := layers[0][3][0]; !got.Dead {
		t.Errorf("layer 0 cell [3][0] = %+v, want dead", got)
	}
}

func TestWorkflow_LayerOverflowWritesNoOutput(t *testing.T) {
	template := writeTempFile(t, "small.vil", `{"version":1,"layout":[[["KC_NO"]],[["KC_NO"]]],"settings":{}}`)
	output := filepath.Join(t.TempDir(), "out.vil")

	_, err := newTestWorkflow().Convert(ConvertArgs{
		Source:   adapter.NewLocalKeymapSource(m.Path(filepath.Join("testdata", "corne.keymap"))),
		Template: m.Path(template),
		Output:   m.Path(output),
	})
	if !errors.Is(err, m.ErrLayerOverflow) {
		t.Fatalf("expected ErrLayerOverflow, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed run")
	}
}

func TestWorkflow_UnsupportedBindingWritesNoOutput(t *testing.T) {
	keymap := writeTempFile(t, "bad.keymap", `
keymap {
    base_layer {
        bindings = <&kp A &rainbow_macro>;
    };
};`)
	output := filepath.Join(t.TempDir(), "out.vil")

	_, err := newTestWorkflow().Convert(ConvertArgs{
		Source:   adapter.NewLocalKeymapSource(m.Path(keymap)),
		Template: m.Path(filepath.Join("testdata", "template.vil")),
		Output:   m.Path(output),
	})
	if !errors.Is(err, m.ErrUnsupportedBinding) {
		t.Fatalf("expected ErrUnsupportedBinding, got %v", err)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed run")
	}
}

func TestWorkflow_MissingInputs(t *testing.T) {
	wf := newTestWorkflow()

	_, err := wf.Convert(ConvertArgs{
		Source:   adapter.NewLocalKeymapSource("testdata/absent.keymap"),
		Template: m.Path(filepath.Join("testdata", "template.vil")),
		Output:   "out.vil",
	})
	if !errors.Is(err, m.ErrConfigNotFound) {
		t.Fatalf("missing keymap: expected ErrConfigNotFound, got %v", err)
	}

	_, err = wf.Convert(ConvertArgs{
		Source:   adapter.NewLocalKeymapSource(m.Path(filepath.Join("testdata", "corne.keymap"))),
		Template: "testdata/absent.vil",
		Output:   "out.vil",
	})
	if !errors.Is(err, m.ErrConfigNotFound) {
		t.Fatalf("missing template: expected ErrConfigNotFound, got %v", err)
	}
}

func TestWorkflow_Inspect(t *testing.T) {
	keymap, err := newTestWorkflow().Inspect(
		adapter.NewLocalKeymapSource(m.Path(filepath.Join("testdata", "corne.keymap"))))
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if len(keymap.Layers) != 3 {
		t.Errorf("expected 3 layers, got %d", len(keymap.Layers))
	}
}
