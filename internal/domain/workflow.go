package domain

import (
	"github.com/rs/zerolog"

	"github.com/zmk-tools/zmk2vial/internal/adapter"
	"github.com/zmk-tools/zmk2vial/internal/log"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// ConvertArgs carries everything one conversion run needs.
type ConvertArgs struct {
	Source   adapter.KeymapSource
	Template m.Path
	Output   m.Path
}

// ConvertSummary describes a completed conversion for display.
type ConvertSummary struct {
	Layers   int // layers found in the source
	Capacity int // layers the destination file holds
	Warnings []string
	Output   m.Path
}

// Workflow is the conversion pipeline: fetch, parse, map, merge, write.
// Every run is independent; the workflow holds no mutable state.
type Workflow interface {
	Convert(args ConvertArgs) (ConvertSummary, error)

	// Inspect parses the source without needing a template, for the list
	// command.
	Inspect(source adapter.KeymapSource) (m.Keymap, error)
}

type workflow struct {
	templates adapter.TemplateStore
	writer    adapter.VilWriter
	parser    Parser
	mapper    Mapper
	merger    Merger
	log       zerolog.Logger
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(templates adapter.TemplateStore, writer adapter.VilWriter) Workflow {
	return &workflow{
		templates: templates,
		writer:    writer,
		parser:    NewParser(),
		mapper:    NewMapper(),
		merger:    NewMerger(),
		log:       log.WithComponent("workflow"),
	}
}

func (w *workflow) Convert(args ConvertArgs) (ConvertSummary, error) {
	content, err := args.Source.Fetch()
	if err != nil {
		return ConvertSummary{}, err
	}
	w.log.Info().Str("source", args.Source.Location()).Int("bytes", len(content)).Msg("loaded keymap")

	keymap, err := w.parser.Parse(content)
	if err != nil {
		return ConvertSummary{}, err
	}
	w.log.Info().Int("layers", len(keymap.Layers)).Msg("parsed keymap")

	doc, err := w.templates.Load(args.Template)
	if err != nil {
		return ConvertSummary{}, err
	}

	capacity, err := w.merger.Capacity(doc)
	if err != nil {
		return ConvertSummary{}, err
	}

	result, err := w.mapper.Map(keymap, capacity)
	if err != nil {
		return ConvertSummary{}, err
	}

	if err := w.merger.Merge(doc, result.Grids); err != nil {
		return ConvertSummary{}, err
	}

	data, err := doc.Bytes()
	if err != nil {
		return ConvertSummary{}, err
	}
	if err := w.writer.Write(args.Output, data); err != nil {
		return ConvertSummary{}, err
	}
	w.log.Info().Str("output", string(args.Output)).Int("bytes", len(data)).Msg("wrote layout")

	return ConvertSummary{
		Layers:   len(keymap.Layers),
		Capacity: capacity,
		Warnings: result.Warnings,
		Output:   args.Output,
	}, nil
}

func (w *workflow) Inspect(source adapter.KeymapSource) (m.Keymap, error) {
	content, err := source.Fetch()
	if err != nil {
		return m.Keymap{}, err
	}
	return w.parser.Parse(content)
}
