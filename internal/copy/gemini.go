package copy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiDrafter drafts messages with Google's Gemini API using the studio's
// Portuguese prompts.
type GeminiDrafter struct {
	client      *genai.Client
	modelID     string
	studioName  string
	braiderName string
}

// NewGeminiDrafter creates a Gemini-backed drafter.
func NewGeminiDrafter(ctx context.Context, apiKey, modelID, studioName, braiderName string) (*GeminiDrafter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("copy: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("copy: failed to create gemini client: %w", err)
	}

	return &GeminiDrafter{
		client:      client,
		modelID:     modelID,
		studioName:  studioName,
		braiderName: braiderName,
	}, nil
}

// DraftConfirmation asks Gemini for an enthusiastic booking confirmation.
func (d *GeminiDrafter) DraftConfirmation(ctx context.Context, req ConfirmationRequest) (string, error) {
	prompt := fmt.Sprintf(
		"Escreva uma mensagem de confirmação de agendamento de tranças para a cliente %s. "+
			"Data: %s às %s. "+
			"A profissional é %s do %s. "+
			"A mensagem deve ser entusiasmada, falar sobre 'coroar' a cliente e lembrar de vir com o cabelo lavado e seco.",
		req.ClientName, req.Date, req.Time, d.braiderName, d.studioName,
	)
	return d.generate(ctx, prompt)
}

// DraftRetention asks Gemini for a warm win-back message.
func (d *GeminiDrafter) DraftRetention(ctx context.Context, req RetentionRequest) (string, error) {
	since := req.LastSessionDate
	if since == "" {
		since = "algum tempo"
	}
	prompt := fmt.Sprintf(
		"Escreva uma mensagem curta, carinhosa e profissional para o WhatsApp de uma cliente chamada %s "+
			"que não faz tranças com a %s desde %s. O objetivo é lembrar da manutenção das tranças, "+
			"perguntar como está o cabelo e oferecer um novo horário para renovar o visual no %s. "+
			"Use emojis de coroa, brilhos e tons de empoderamento feminino.",
		req.ClientName, d.braiderName, since, d.studioName,
	)
	return d.generate(ctx, prompt)
}

func (d *GeminiDrafter) generate(ctx context.Context, prompt string) (string, error) {
	model := d.client.GenerativeModel(d.modelID)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("copy: gemini generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("copy: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("copy: gemini returned empty content")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	result := strings.TrimSpace(text.String())
	if result == "" {
		return "", errors.New("copy: gemini returned empty text")
	}
	return result, nil
}

// Close releases resources held by the Gemini client.
func (d *GeminiDrafter) Close() error {
	if d.client != nil {
		return d.client.Close()
	}
	return nil
}
