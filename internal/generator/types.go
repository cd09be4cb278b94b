package generator

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported input formats.
type Kind int

const (
	// KindModel is a raw binary blob such as a .tflite flatbuffer.
	KindModel Kind = iota + 1
	// KindImage is a bitmap image whose decoded pixels are embedded.
	KindImage
	// KindAudio is a PCM waveform whose frames are embedded as samples.
	KindAudio
)

// kindInfo holds everything that varies by input kind.
type kindInfo struct {
	ext         string
	suffix      string
	elementType string
	name        string
}

var kinds = map[Kind]kindInfo{
	KindModel: {ext: ".tflite", suffix: "_model_data", elementType: "unsigned char", name: "model"},
	KindImage: {ext: ".bmp", suffix: "_image_data", elementType: "unsigned char", name: "image"},
	KindAudio: {ext: ".wav", suffix: "_audio_data", elementType: "short", name: "audio"},
}

// String returns a short human readable name of the kind.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Ext returns the file extension that selects this kind.
func (k Kind) Ext() string { return kinds[k].ext }

// Suffix returns the identifier and file name suffix for this kind.
func (k Kind) Suffix() string { return kinds[k].suffix }

// ElementType returns the C++ element type of the generated array.
func (k Kind) ElementType() string { return kinds[k].elementType }

// Classify resolves the kind of an input path from its extension.
// Matching is case sensitive, so "model.TFLITE" is rejected.
func Classify(path string) (Kind, error) {
	for _, k := range []Kind{KindModel, KindImage, KindAudio} {
		if strings.HasSuffix(path, k.Ext()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s (input file must be .tflite, .bmp or .wav)", ErrUnsupportedFormat, path)
}

// InputFile is an input path paired with its resolved kind.
type InputFile struct {
	Path string
	Kind Kind
}

// ArrayContent is the rendered value list of an input.
// Blob holds every value followed by a comma, e.g. "0x01,0x02,".
type ArrayContent struct {
	Count int
	Blob  string
}

// ArraySpec is the identifier and element type derived from an input path.
type ArraySpec struct {
	Name        string
	ElementType string
}
