package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"regexp"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Encoded images cross every component boundary as data URIs:
// data:<mime-type>;base64,<payload>
var dataURIRegex = regexp.MustCompile(`^data:([a-zA-Z0-9]+/[a-zA-Z0-9-.+]+);base64,(.+)$`)

// Blob - decoded image payload with its mime type
type Blob struct {
	MimeType string
	Data     []byte
}

// Decode - parse and validate an encoded image string
func Decode(encoded string) (*Blob, error) {
	match := dataURIRegex.FindStringSubmatch(encoded)
	if match == nil {
		return nil, fmt.Errorf("invalid encoded image: expected data:<mime>;base64,<payload>")
	}

	data, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return nil, fmt.Errorf("invalid encoded image payload: %w", err)
	}

	return &Blob{MimeType: match[1], Data: data}, nil
}

// Encode - build the encoded image string for raw bytes
func Encode(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// IsEncoded - quick validity check without decoding the payload
func IsEncoded(encoded string) bool {
	return dataURIRegex.MatchString(encoded)
}

// ConvertPNGToWebP - re-encode PNG bytes as lossy WebP
func ConvertPNGToWebP(pngData []byte, quality float32) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}

	return buf.Bytes(), nil
}
