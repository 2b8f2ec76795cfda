// Package report persists reconciliation results and product
// collections as JSON artifacts, so a failed run leaves inspectable
// evidence instead of transient log lines.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Emitter writes JSON artifacts into a fixed directory. Writing the
// same artifact twice overwrites it; there are no merge or append
// semantics.
type Emitter struct {
	dir string
}

// NewEmitter creates the artifact directory if needed.
func NewEmitter(dir string) (*Emitter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("report: create artifact dir %q: %w", dir, err)
	}
	return &Emitter{dir: dir}, nil
}

// Emit serializes payload to <dir>/<name> as indented JSON and returns
// the full artifact path.
func (e *Emitter) Emit(name string, payload any) (string, error) {
	path := filepath.Join(e.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: create artifact %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("report: write artifact %q: %w", path, err)
	}

	return path, nil
}
