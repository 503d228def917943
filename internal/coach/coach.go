// Package coach wraps the generative AI service behind two narrow features:
// short form tips for an exercise and a simulated body-progress photo.
package coach

import (
	"context"
	"errors"
)

// ErrMissingCredentials is returned when no AI API key is configured.
var ErrMissingCredentials = errors.New("coach: AI API key missing")

// Generator is the subset of the AI service this package needs.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	// EditImage returns ok=false when the service answered without an image.
	EditImage(ctx context.Context, model string, img Image, prompt string) (out Image, ok bool, err error)
}

// Default model names.
const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image"
)
