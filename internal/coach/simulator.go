package coach

import (
	"context"
	"fmt"
	"log/slog"
)

// Timeframe selects how far into the future the simulation projects.
type Timeframe string

// Supported timeframes.
const (
	ThreeMonths Timeframe = "3_MONTHS"
	OneYear     Timeframe = "1_YEAR"
)

// ParseTimeframe validates a timeframe string.
func ParseTimeframe(s string) (Timeframe, error) {
	switch tf := Timeframe(s); tf {
	case ThreeMonths, OneYear:
		return tf, nil
	}
	return "", fmt.Errorf("unknown timeframe %q (want %s or %s)", s, ThreeMonths, OneYear)
}

// Label is the short badge shown next to a simulated photo.
func (tf Timeframe) Label() string {
	if tf == OneYear {
		return "+1 ANO"
	}
	return "+3 MESES"
}

func (tf Timeframe) intensity() string {
	if tf == OneYear {
		return "significant muscle hypertrophy, impressive body composition, broad shoulders, and defined abs"
	}
	return "noticeable but realistic muscle definition, slight hypertrophy, and athletic toning"
}

// FailureMessage is the text shown when a simulation for tf does not produce
// an image. noResult distinguishes an empty answer from a failed call.
func FailureMessage(tf Timeframe, noResult bool) string {
	if noResult {
		return fmt.Sprintf("Não foi possível gerar a imagem de %s. Tente uma foto com iluminação melhor.", tf.Label())
	}
	return fmt.Sprintf("Erro ao gerar a simulação de %s. Verifique sua conexão ou tente outra foto.", tf.Label())
}

// Simulator edits a photo to show plausible training progress.
type Simulator struct {
	gen   Generator
	model string
	log   *slog.Logger
}

// NewSimulator creates a Simulator. A nil gen means no credentials are configured.
func NewSimulator(gen Generator, model string, log *slog.Logger) *Simulator {
	if model == "" {
		model = DefaultImageModel
	}
	return &Simulator{gen: gen, model: model, log: log}
}

// Simulate returns the edited photo. ok is false when the service returned
// no usable image. Errors, including ErrMissingCredentials, are returned
// to the caller.
func (s *Simulator) Simulate(ctx context.Context, photo Image, tf Timeframe) (Image, bool, error) {
	if s.gen == nil {
		return Image{}, false, ErrMissingCredentials
	}
	out, ok, err := s.gen.EditImage(ctx, s.model, photo, simulationPrompt(tf))
	if err != nil {
		s.log.Error("body simulation failed", "timeframe", tf, "error", err)
		return Image{}, false, fmt.Errorf("simulating %s: %w", tf, err)
	}
	if !ok || len(out.Data) == 0 {
		s.log.Warn("body simulation returned no image", "timeframe", tf)
		return Image{}, false, nil
	}
	return out, true, nil
}

func simulationPrompt(tf Timeframe) string {
	return fmt.Sprintf(`Edit this photo to simulate fitness progress for a gym tracking app.
The goal is to show the person with %s.
Keep the face, hair, lighting, clothing color, and background EXACTLY the same.
Only modify the body physique to look fitter, stronger, and more muscular suited for a natural bodybuilder.`, tf.intensity())
}
