package generator

import (
	"path"
	"path/filepath"
	"strings"
)

// BaseName returns the final path segment of p with everything from its
// first dot removed. "data/person.v2.tflite" yields "person".
func BaseName(p string) string {
	base := path.Base(filepath.ToSlash(p))
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

// Derive computes the array identifier and element type for an input path.
func Derive(p string) (ArraySpec, error) {
	kind, err := Classify(p)
	if err != nil {
		return ArraySpec{}, err
	}
	return deriveKind(p, kind), nil
}

func deriveKind(p string, kind Kind) ArraySpec {
	return ArraySpec{
		Name:        "g_" + BaseName(p) + kind.Suffix(),
		ElementType: kind.ElementType(),
	}
}

// outputBase returns the extension-less artifact path for an input in
// directory mode. With preserveDirs the input's relative directory is
// kept below outDir; absolute inputs always collapse to their base name.
func outputBase(outDir string, in InputFile, preserveDirs bool) string {
	stem := BaseName(in.Path)
	if preserveDirs && !filepath.IsAbs(in.Path) {
		if dir := filepath.Dir(in.Path); dir != "." {
			stem = filepath.Join(dir, stem)
		}
	}
	return filepath.Join(outDir, stem) + in.Kind.Suffix()
}
