package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/xll-gen/cc-arrays/internal/generator"
)

// resetFlags restores every flag to its default so state from a previous
// Execute does not leak into the next one.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd.PersistentFlags())
	resetFlags(inspectCmd.Flags())
	cfg = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_DirectoryMode(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "model.tflite"), []byte{0x01, 0x02}, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "out", "model.tflite", "model.tflite")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := filepath.Join("out", "model_model_data.cc") + "\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out", "model_model_data.cc"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "g_model_model_data[] = {0x01,0x02,};") {
		t.Errorf("unexpected definition:\n%s", data)
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "model.tflite"), []byte{0x7f}, 0644); err != nil {
		t.Fatal(err)
	}
	settings := "output:\n  alignment: 32\n  root_marker: \"gen/\"\nlogging:\n  level: error\n"
	if err := os.WriteFile(filepath.Join(dir, "cc_arrays.yaml"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "gen/arrays", "model.tflite"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "gen", "arrays", "model_model_data.cc"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "#include \"arrays/model_model_data.h\"") {
		t.Errorf("include line wrong: %q", got)
	}
	if !strings.Contains(got, "alignas(32)") {
		t.Errorf("alignment not applied: %q", got)
	}
}

func TestRoot_FlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "m.tflite"), []byte{0}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("output:\n  root_marker: \"nomatch/\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "--config", "settings.yaml", "--root-marker", "out/", "out/m.cc", "m.tflite"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "m.cc"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "#include \"m.h\"") {
		t.Errorf("root marker flag not applied: %q", data)
	}
}

func TestRoot_Errors(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	for _, name := range []string{"a.tflite", "b.tflite"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{1}, 0644); err != nil {
			t.Fatal(err)
		}
	}

	_, err := execute(t, "foo.cc", "a.tflite", "b.tflite")
	if !errors.Is(err, generator.ErrInputCountMismatch) {
		t.Errorf("two inputs for foo.cc: error = %v, want ErrInputCountMismatch", err)
	}

	_, err = execute(t, "out", "image.png")
	if !errors.Is(err, generator.ErrUnsupportedFormat) {
		t.Errorf("image.png: error = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := execute(t, "out"); err == nil {
		t.Error("missing inputs should fail argument validation")
	}

	if _, err := execute(t, "--config", "missing.yaml", "out", "a.tflite"); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "net.tflite"), []byte{1, 2, 3, 4}, 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "inspect", "--no-color", "net.tflite", "net.tflite")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	for _, want := range []string{"model", "net.tflite", "unsigned char g_net_model_data[4]", "duplicate", "net.tflite (generated once)"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}

	if n := strings.Count(out, "g_net_model_data"); n != 1 {
		t.Errorf("net.tflite reported %d times, want 1:\n%s", n, out)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("inspect wrote files: %d entries", len(entries))
	}
}
