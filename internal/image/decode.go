// Package image decodes client-submitted problem images. Input arrives as a
// base64 string, optionally wrapped in a data URL, and leaves as raw bytes
// with a MIME type sniffed from the content. Client-declared MIME types are
// never trusted.
package image

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/ThisisBizness/Study-Buddy/internal/solver"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Decode turns a base64 payload into image bytes and the MIME type detected
// from those bytes. A data URL prefix ("data:image/png;base64,") is stripped
// when present. Undecodable input wraps solver.ErrInvalidImage; decodable
// input that is not a recognizable image wraps solver.ErrImageProcessing.
func Decode(encoded string) ([]byte, string, error) {
	payload := stripWhitespace(encoded)
	if payload == "" {
		return nil, "", fmt.Errorf("%w: empty image payload", solver.ErrInvalidImage)
	}

	// Keep everything after the last comma. Base64 alphabets contain no
	// commas, so this strips a data URL prefix and leaves bare payloads
	// untouched.
	if idx := strings.LastIndexByte(payload, ','); idx >= 0 {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.URLEncoding.DecodeString(payload)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", solver.ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty image payload", solver.ErrInvalidImage)
	}

	mimeType := sniffMIME(data)
	if mimeType == "" {
		return nil, "", fmt.Errorf("%w: decoded bytes are not a recognizable image", solver.ErrImageProcessing)
	}

	return data, mimeType, nil
}

// stripWhitespace removes all whitespace so base64 payloads wrapped across
// lines still decode.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// sniffMIME identifies the image format from magic bytes, falling back to
// net/http content detection. Returns "" when the bytes are not an image.
func sniffMIME(data []byte) string {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "image/jpeg"
	case len(data) >= len(pngSignature) && bytes.Equal(data[:len(pngSignature)], pngSignature):
		return "image/png"
	case bytes.HasPrefix(data, []byte("GIF87a")) || bytes.HasPrefix(data, []byte("GIF89a")):
		return "image/gif"
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	case bytes.HasPrefix(data, []byte("BM")):
		return "image/bmp"
	}

	if ct := http.DetectContentType(data); strings.HasPrefix(ct, "image/") {
		return ct
	}
	return ""
}
