package generator

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read classifies the input path and renders its content.
func Read(path string) (ArrayContent, error) {
	kind, err := Classify(path)
	if err != nil {
		return ArrayContent{}, err
	}
	return ReadInput(InputFile{Path: path, Kind: kind})
}

// ReadInput renders the values of an already classified input.
func ReadInput(in InputFile) (ArrayContent, error) {
	switch in.Kind {
	case KindModel:
		return readModel(in.Path)
	case KindImage:
		return readImage(in.Path)
	case KindAudio:
		return readAudio(in.Path)
	default:
		return ArrayContent{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, in.Path)
	}
}

// readModel emits every byte of the file as a zero padded hex literal.
func readModel(path string) (ArrayContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArrayContent{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	count := 0
	r := bufio.NewReader(f)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ArrayContent{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		sb.WriteString("0x")
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
		sb.WriteByte(',')
		count++
	}
	return ArrayContent{Count: count, Blob: sb.String()}, nil
}

const hexDigits = "0123456789abcdef"

// hexBlob renders bytes as unpadded hex literals ("0x0,0xff,").
func hexBlob(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 5)
	for _, b := range data {
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(b), 16))
		sb.WriteByte(',')
	}
	return sb.String()
}
