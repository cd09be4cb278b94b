package generator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xll-gen/cc-arrays/internal/templates"
)

// Default artifact settings, matching the TFLite Micro build layout.
const (
	DefaultSourceExt  = ".cc"
	DefaultHeaderExt  = ".h"
	DefaultRootMarker = "genfiles/"
	DefaultAlignment  = 16
)

// Options controls how artifacts are named and rendered.
type Options struct {
	// SourceExt is the suffix of definition artifacts.
	SourceExt string
	// HeaderExt is the suffix of declaration artifacts.
	HeaderExt string
	// RootMarker is the path segment after which the include path starts.
	RootMarker string
	// Alignment is the alignas value of the array.
	Alignment int
	// PreserveDirs keeps the input's directory below the output directory.
	PreserveDirs bool
}

// DefaultOptions returns the settings used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		SourceExt:  DefaultSourceExt,
		HeaderExt:  DefaultHeaderExt,
		RootMarker: DefaultRootMarker,
		Alignment:  DefaultAlignment,
	}
}

func (o Options) withDefaults() Options {
	if o.SourceExt == "" {
		o.SourceExt = DefaultSourceExt
	}
	if o.HeaderExt == "" {
		o.HeaderExt = DefaultHeaderExt
	}
	if o.Alignment == 0 {
		o.Alignment = DefaultAlignment
	}
	return o
}

// isArtifact reports whether path names a single definition or declaration file.
func (o Options) isArtifact(path string) bool {
	return strings.HasSuffix(path, o.SourceExt) || strings.HasSuffix(path, o.HeaderExt)
}

// IncludePath returns the header path a definition at sourcePath includes:
// the part after the last root marker, with the source suffix swapped for
// the header suffix.
func (o Options) IncludePath(sourcePath string) string {
	rel := sourcePath
	if o.RootMarker != "" {
		if i := strings.LastIndex(rel, o.RootMarker); i >= 0 {
			rel = rel[i+len(o.RootMarker):]
		}
	}
	return strings.TrimSuffix(rel, o.SourceExt) + o.HeaderExt
}

// WriteArtifact writes a definition or declaration file for an array,
// chosen by the suffix of path. Parent directories are created and any
// existing file is replaced.
func WriteArtifact(path string, spec ArraySpec, content ArrayContent, opts Options) error {
	opts = opts.withDefaults()

	switch {
	case strings.HasSuffix(path, opts.SourceExt):
		data := struct {
			Header      string
			Alignment   int
			ElementType string
			Name        string
			Blob        string
			Count       int
		}{
			Header:      opts.IncludePath(path),
			Alignment:   opts.Alignment,
			ElementType: spec.ElementType,
			Name:        spec.Name,
			Blob:        content.Blob,
			Count:       content.Count,
		}
		if err := executeTemplate(templates.Definition, path, data); err != nil {
			return err
		}
	case strings.HasSuffix(path, opts.HeaderExt):
		data := struct {
			ElementType string
			Name        string
		}{
			ElementType: spec.ElementType,
			Name:        spec.Name,
		}
		if err := executeTemplate(templates.Declaration, path, data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s (want %s or %s)", ErrInvalidOutputExtension, path, opts.SourceExt, opts.HeaderExt)
	}

	slog.Info("Generated artifact", "path", path, "array", spec.Name, "size", content.Count)
	return nil
}
