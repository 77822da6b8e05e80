package adapter

import (
	"fmt"
	"os"

	m "github.com/zmk-tools/zmk2vial/internal/model"
	"github.com/zmk-tools/zmk2vial/internal/vildoc"
)

// TemplateStore loads the destination template document.
type TemplateStore interface {
	Load(path m.Path) (*vildoc.Document, error)
}

type localTemplateStore struct{}

// NewTemplateStore constructs a TemplateStore reading from the local
// filesystem.
func NewTemplateStore() TemplateStore {
	return &localTemplateStore{}
}

func (ts *localTemplateStore) Load(path m.Path) (*vildoc.Document, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read template %s: %v", m.ErrConfigNotFound, path, err)
	}

	doc, err := vildoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: template %s: %v", m.ErrInvalidSourceFormat, path, err)
	}
	return doc, nil
}
