package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/xll-gen/cc-arrays/internal/templates"
)

// executeTemplate renders the named template into outputPath. Output goes
// to a uniquely named sibling file first and is renamed into place, so an
// existing artifact is replaced whole or left untouched.
func executeTemplate(tmplName string, outputPath string, data interface{}) error {
	t, err := templates.Parse(tmplName, nil)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmpPath := filepath.Join(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	if err := t.Execute(f, data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to render %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
