package generator

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/riff"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE

	// Offset of the SubFormat GUID inside a WAVE_FORMAT_EXTENSIBLE fmt chunk.
	subFormatOffset = 24
)

// readAudio walks the PCM data of a wave file one frame at a time and
// emits each frame as a little-endian signed decimal.
func readAudio(path string) (ArrayContent, error) {
	f, err := os.Open(path)
	if err != nil {
		return ArrayContent{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := checkSubFormat(f); err != nil {
		return ArrayContent{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedWave, path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return ArrayContent{}, fmt.Errorf("failed to rewind %s: %w", path, err)
	}

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		if err := d.Err(); err != nil {
			return ArrayContent{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedWave, path, err)
		}
		return ArrayContent{}, fmt.Errorf("%w: %s", ErrUnsupportedWave, path)
	}
	if d.WavAudioFormat != wavFormatPCM && d.WavAudioFormat != wavFormatExtensible {
		return ArrayContent{}, fmt.Errorf("%w: %s: audio format %d is not PCM", ErrUnsupportedWave, path, d.WavAudioFormat)
	}
	if err := d.FwdToPCM(); err != nil {
		return ArrayContent{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedWave, path, err)
	}
	if d.PCMChunk == nil {
		return ArrayContent{}, fmt.Errorf("%w: %s: no data chunk", ErrUnsupportedWave, path)
	}

	frameWidth := int(d.NumChans) * ((int(d.BitDepth) + 7) / 8)
	if frameWidth == 0 {
		return ArrayContent{}, fmt.Errorf("%w: %s: zero frame width", ErrUnsupportedWave, path)
	}
	frames := d.PCMSize / frameWidth

	var sb strings.Builder
	frame := make([]byte, frameWidth)
	for i := 0; i < frames; i++ {
		if _, err := io.ReadFull(d.PCMChunk, frame); err != nil {
			return ArrayContent{}, fmt.Errorf("failed to read frame %d of %s: %w", i, path, err)
		}
		sb.WriteString(frameValue(frame))
		sb.WriteByte(',')
	}
	return ArrayContent{Count: frames, Blob: sb.String()}, nil
}

// checkSubFormat rejects WAVE_FORMAT_EXTENSIBLE files whose SubFormat is
// not integer PCM. Other format tags are left to the decoder.
func checkSubFormat(r io.Reader) error {
	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return fmt.Errorf("fmt chunk not found: %w", err)
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		body := make([]byte, ch.Size)
		if _, err := io.ReadFull(ch, body); err != nil {
			return fmt.Errorf("short fmt chunk: %w", err)
		}
		if len(body) < 2 || binary.LittleEndian.Uint16(body) != wavFormatExtensible {
			return nil
		}
		if len(body) < subFormatOffset+2 {
			return fmt.Errorf("extensible fmt chunk of %d bytes has no SubFormat", len(body))
		}
		if sub := binary.LittleEndian.Uint16(body[subFormatOffset:]); sub != wavFormatPCM {
			return fmt.Errorf("extensible SubFormat %d is not PCM", sub)
		}
		return nil
	}
}

// frameValue interprets b as a little-endian two's complement integer of
// len(b) bytes and formats it in decimal.
func frameValue(b []byte) string {
	if len(b) <= 8 {
		var u uint64
		for i := len(b) - 1; i >= 0; i-- {
			u = u<<8 | uint64(b[i])
		}
		shift := uint(64 - 8*len(b))
		return strconv.FormatInt(int64(u<<shift)>>shift, 10)
	}

	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	n := new(big.Int).SetBytes(be)
	if b[len(b)-1]&0x80 != 0 {
		n.Sub(n, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return n.String()
}
