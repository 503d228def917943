package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// User-facing fallbacks. Advice never fails; it degrades to one of these.
const (
	AdviceNoCredentials = "Configuração da IA não encontrada. Por favor verifique sua chave de API."
	AdviceEmpty         = "Não foi possível obter a dica agora. Tente novamente."
	AdviceUnavailable   = "Ocorreu um erro ao conectar com seu treinador virtual."
)

// Advisor produces coaching tips for exercises.
type Advisor struct {
	gen   Generator
	model string
	log   *slog.Logger
}

// NewAdvisor creates an Advisor. A nil gen means no credentials are configured.
func NewAdvisor(gen Generator, model string, log *slog.Logger) *Advisor {
	if model == "" {
		model = DefaultTextModel
	}
	return &Advisor{gen: gen, model: model, log: log}
}

// Advice returns a short tip for exerciseName, or a fixed fallback message.
func (a *Advisor) Advice(ctx context.Context, exerciseName string) string {
	if a.gen == nil {
		return AdviceNoCredentials
	}
	text, err := a.gen.GenerateText(ctx, a.model, advicePrompt(exerciseName))
	if err != nil {
		a.log.Error("coach advice failed", "exercise", exerciseName, "error", err)
		return AdviceUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return AdviceEmpty
	}
	return text
}

func advicePrompt(exerciseName string) string {
	return fmt.Sprintf(`Você é um personal trainer de elite, especialista em biomecânica.
O aluno está prestes a fazer o exercício: %q.

Por favor, forneça:
1. Uma explicação muito breve e direta de como executar corretamente (máximo 2 frases).
2. Uma "Dica de Ouro" para evitar lesões ou melhorar a ativação muscular.

Mantenha o tom motivador e curto. Não use markdown complexo, apenas texto simples e parágrafos.`, exerciseName)
}
