package generator

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path    string
		want    Kind
		wantErr bool
	}{
		{"model.tflite", KindModel, false},
		{"data/person_detect.tflite", KindModel, false},
		{"images/cat.bmp", KindImage, false},
		{"yes_1000ms.wav", KindAudio, false},
		{"image.png", 0, true},
		{"model.TFLITE", 0, true},
		{"noext", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Classify(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Classify(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Classify(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantType string
	}{
		{"model.tflite", "g_model_model_data", "unsigned char"},
		{"tensorflow/lite/micro/models/person_detect.tflite", "g_person_detect_model_data", "unsigned char"},
		{"testdata/person.bmp", "g_person_image_data", "unsigned char"},
		{"sound.wav", "g_sound_audio_data", "short"},
		{"audio/no_1000ms.sample.wav", "g_no_1000ms_audio_data", "short"},
		{"./model.tflite", "g_model_model_data", "unsigned char"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			spec, err := Derive(tt.path)
			if err != nil {
				t.Fatalf("Derive(%q) error: %v", tt.path, err)
			}
			if spec.Name != tt.wantName || spec.ElementType != tt.wantType {
				t.Errorf("Derive(%q) = %+v, want {%s %s}", tt.path, spec, tt.wantName, tt.wantType)
			}

			again, _ := Derive(tt.path)
			if again != spec {
				t.Errorf("Derive(%q) not stable: %+v then %+v", tt.path, spec, again)
			}
		})
	}

	if _, err := Derive("image.png"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Derive(image.png) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestOutputBase(t *testing.T) {
	in := InputFile{Path: filepath.Join("models", "kws.tflite"), Kind: KindModel}

	if got, want := outputBase("out", in, false), filepath.Join("out", "kws_model_data"); got != want {
		t.Errorf("outputBase() = %q, want %q", got, want)
	}
	if got, want := outputBase("out", in, true), filepath.Join("out", "models", "kws_model_data"); got != want {
		t.Errorf("outputBase(preserve) = %q, want %q", got, want)
	}

	abs := InputFile{Path: filepath.Join(t.TempDir(), "tone.wav"), Kind: KindAudio}
	if got, want := outputBase("out", abs, true), filepath.Join("out", "tone_audio_data"); got != want {
		t.Errorf("outputBase(abs) = %q, want %q", got, want)
	}
}

func TestIncludePath(t *testing.T) {
	opts := DefaultOptions()
	tests := map[string]string{
		"gen/genfiles/kws_model_data.cc":                        "kws_model_data.h",
		"a/genfiles/b/genfiles/tensorflow/lite/x_image_data.cc": "tensorflow/lite/x_image_data.h",
		"out/sound_audio_data.cc":                               "out/sound_audio_data.h",
	}
	for in, want := range tests {
		if got := opts.IncludePath(in); got != want {
			t.Errorf("IncludePath(%q) = %q, want %q", in, got, want)
		}
	}
}
