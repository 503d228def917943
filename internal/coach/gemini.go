package coach

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini implements Generator with the Google Gen AI SDK.
type Gemini struct {
	client *genai.Client
}

var _ Generator = (*Gemini)(nil)

// NewGemini creates a Gemini API client. It returns ErrMissingCredentials
// for an empty key so callers can run in degraded mode.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingCredentials
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// GenerateText sends a single text prompt and returns the concatenated text parts.
func (g *Gemini) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// EditImage sends the image and an instruction and returns the first inline
// image part of the first candidate.
func (g *Gemini) EditImage(ctx context.Context, model string, img Image, prompt string) (Image, bool, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return Image{}, false, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Image{}, false, nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return Image{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}, true, nil
		}
	}
	return Image{}, false, nil
}
