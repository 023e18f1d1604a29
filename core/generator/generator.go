package generator

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"barrel/core/models"
)

// The header is emitted verbatim, whatever it contains. Each export line is
// newline-terminated; entry order is the caller's scan order.
const barrelTemplate = `{{.Header}}{{range .Entries}}export { default as {{.ComponentName}} } from '{{.ImportSpecifier}}'
{{end}}`

var tmpl = template.Must(template.New("barrel").Parse(barrelTemplate))

// Render produces the barrel file content. Deterministic: identical input
// yields identical bytes.
func Render(header string, entries []models.ComponentEntry) ([]byte, error) {
	data := struct {
		Header  string
		Entries []models.ComponentEntry
	}{
		Header:  header,
		Entries: entries,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render barrel: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the barrel and writes it to path.
func WriteFile(path string, header string, entries []models.ComponentEntry) error {
	content, err := Render(header, entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
