package coach

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Image is a decoded image payload.
type Image struct {
	Data     []byte
	MIMEType string
}

// DecodeImage accepts a data URL ("data:image/png;base64,...") or bare
// base64. Bare payloads are assumed to be JPEG.
func DecodeImage(s string) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Image{}, errors.New("empty image")
	}

	mime := "image/jpeg"
	payload := s
	if header, rest, ok := strings.Cut(s, ","); ok {
		payload = rest
		if m, ok := strings.CutPrefix(header, "data:"); ok {
			m, _, _ = strings.Cut(m, ";")
			if m != "" {
				mime = m
			}
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("decoding image: %w", err)
	}
	if len(data) == 0 {
		return Image{}, errors.New("empty image")
	}
	return Image{Data: data, MIMEType: mime}, nil
}

// DataURL encodes the image as a data URL.
func (img Image) DataURL() string {
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
