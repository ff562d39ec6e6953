// Package media handles artifact encoding at the portal boundary: data URLs
// for transport, file loading for the studio, and WAV framing for speech.
package media

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxAssetSize = 15 * 1024 * 1024 // raw bytes; base64 adds ~33%

// imageExts maps file extensions to MIME types for supported asset formats.
var imageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Payload is a decoded binary artifact.
type Payload struct {
	Data []byte
	MIME string
}

// FormatDataURL encodes a payload as a data URL for display transport.
func FormatDataURL(p Payload) string {
	return fmt.Sprintf("data:%s;base64,%s", p.MIME, base64.StdEncoding.EncodeToString(p.Data))
}

// ParseDataURL decodes a data:<mime>;base64,<payload> URL.
func ParseDataURL(url string) (Payload, error) {
	rest, ok := strings.CutPrefix(url, "data:")
	if !ok {
		return Payload{}, fmt.Errorf("not a data URL")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return Payload{}, fmt.Errorf("malformed data URL: no payload separator")
	}
	mime, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return Payload{}, fmt.Errorf("unsupported data URL encoding: %q", meta)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, fmt.Errorf("decode data URL payload: %w", err)
	}
	return Payload{Data: data, MIME: mime}, nil
}

// LoadAsset reads an image file for the studio queue. Unsupported extensions
// and oversized files are rejected before any bytes are read.
func LoadAsset(path string) (Payload, error) {
	ext := strings.ToLower(filepath.Ext(path))
	mime, ok := imageExts[ext]
	if !ok {
		return Payload{}, fmt.Errorf("unsupported asset type %q", ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Payload{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return Payload{}, fmt.Errorf("empty asset: %s", path)
	}
	if info.Size() > maxAssetSize {
		return Payload{}, fmt.Errorf("asset too large: %s (%d bytes, max %d)", path, info.Size(), maxAssetSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Payload{Data: data, MIME: mime}, nil
}

// WrapPCM frames raw 16-bit mono PCM as a WAV container so speech output
// plays in anything.
func WrapPCM(pcm []byte, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buf := make([]byte, 0, 44+len(pcm))
	le := binary.LittleEndian

	u32 := func(v uint32) []byte {
		b := make([]byte, 4)
		le.PutUint32(b, v)
		return b
	}
	u16 := func(v uint16) []byte {
		b := make([]byte, 2)
		le.PutUint16(b, v)
		return b
	}

	buf = append(buf, "RIFF"...)
	buf = append(buf, u32(uint32(36+len(pcm)))...)
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = append(buf, u32(16)...)
	buf = append(buf, u16(1)...) // PCM format
	buf = append(buf, u16(channels)...)
	buf = append(buf, u32(uint32(sampleRate))...)
	buf = append(buf, u32(uint32(byteRate))...)
	buf = append(buf, u16(uint16(blockAlign))...)
	buf = append(buf, u16(bitsPerSample)...)
	buf = append(buf, "data"...)
	buf = append(buf, u32(uint32(len(pcm)))...)
	buf = append(buf, pcm...)
	return buf
}
