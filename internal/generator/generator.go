package generator

import (
	"fmt"
	"io"
	"log/slog"
)

// Generate converts inputs into array artifacts under output.
//
// When output ends in the source or header suffix exactly one input is
// accepted and only that artifact is written. Otherwise output is a
// directory: inputs are deduplicated in first-seen order and each one
// produces a definition and a declaration file. The path of every
// definition file is printed to w, one per line, before the pair is
// written.
//
// Every input is classified, and checked for output name collisions in
// directory mode, before anything is read or written.
//
// Returns:
//   - []string: The definition files generated in directory mode.
//   - error: The first failure; generation stops there.
func Generate(output string, inputs []string, w io.Writer, opts Options) ([]string, error) {
	opts = opts.withDefaults()

	if opts.isArtifact(output) {
		if len(inputs) != 1 {
			return nil, fmt.Errorf("%w: got %d inputs for %s", ErrInputCountMismatch, len(inputs), output)
		}
		in, err := classify(inputs[0])
		if err != nil {
			return nil, err
		}
		return nil, generateFile(output, in, opts)
	}

	files, err := classifyAll(dedupe(inputs))
	if err != nil {
		return nil, err
	}
	bases, err := outputBases(output, files, opts.PreserveDirs)
	if err != nil {
		return nil, err
	}

	var generated []string
	for i, in := range files {
		base := bases[i]
		sourcePath := base + opts.SourceExt
		headerPath := base + opts.HeaderExt

		if _, err := fmt.Fprintln(w, sourcePath); err != nil {
			return generated, err
		}

		spec := deriveKind(in.Path, in.Kind)
		content, err := ReadInput(in)
		if err != nil {
			return generated, err
		}
		slog.Debug("Read input", "path", in.Path, "kind", in.Kind, "array", spec.Name, "size", content.Count)

		if err := WriteArtifact(sourcePath, spec, content, opts); err != nil {
			return generated, err
		}
		if err := WriteArtifact(headerPath, spec, content, opts); err != nil {
			return generated, err
		}
		generated = append(generated, sourcePath)
	}
	return generated, nil
}

// generateFile writes the single requested artifact for one input.
func generateFile(output string, in InputFile, opts Options) error {
	spec := deriveKind(in.Path, in.Kind)
	content, err := ReadInput(in)
	if err != nil {
		return err
	}
	slog.Debug("Read input", "path", in.Path, "kind", in.Kind, "array", spec.Name, "size", content.Count)
	return WriteArtifact(output, spec, content, opts)
}

// Report describes what would be generated for one input.
type Report struct {
	Input InputFile
	Spec  ArraySpec
	Count int
}

// Inspect reads every unique input and reports its identifier, element
// type and value count without writing any artifact.
func Inspect(inputs []string) ([]Report, error) {
	files, err := classifyAll(dedupe(inputs))
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(files))
	for _, in := range files {
		content, err := ReadInput(in)
		if err != nil {
			return reports, err
		}
		reports = append(reports, Report{
			Input: in,
			Spec:  deriveKind(in.Path, in.Kind),
			Count: content.Count,
		})
	}
	return reports, nil
}

// outputBases resolves the artifact base of every input and fails when two
// distinct inputs share one, since the later pair would replace the earlier.
func outputBases(outDir string, files []InputFile, preserveDirs bool) ([]string, error) {
	bases := make([]string, len(files))
	owner := make(map[string]string, len(files))
	for i, in := range files {
		base := outputBase(outDir, in, preserveDirs)
		if prev, ok := owner[base]; ok {
			hint := ""
			if !preserveDirs {
				hint = " (use --preserve-dirs to keep input directories)"
			}
			return nil, fmt.Errorf("%w: %s and %s both map to %s%s", ErrOutputCollision, prev, in.Path, base, hint)
		}
		owner[base] = in.Path
		bases[i] = base
	}
	return bases, nil
}

func classify(path string) (InputFile, error) {
	kind, err := Classify(path)
	if err != nil {
		return InputFile{}, err
	}
	return InputFile{Path: path, Kind: kind}, nil
}

func classifyAll(paths []string) ([]InputFile, error) {
	files := make([]InputFile, 0, len(paths))
	for _, p := range paths {
		in, err := classify(p)
		if err != nil {
			return nil, err
		}
		files = append(files, in)
	}
	return files, nil
}

// dedupe drops repeated paths, keeping the first occurrence of each.
func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
