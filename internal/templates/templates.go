// Package templates embeds the text templates of the generated artifacts.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

const (
	// Definition renders the array body and its size constant.
	Definition = "definition.cc.tmpl"
	// Declaration renders the extern declarations.
	Declaration = "declaration.h.tmpl"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template and parses it with the given functions.
func Parse(name string, funcs template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcs == nil {
		funcs = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcs).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}
