package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/rocketscienceinc/wordwheel-backend/internal/apperror"
	"github.com/rocketscienceinc/wordwheel-backend/internal/entity"
)

const (
	DefaultModel = "gemini-3-flash-preview"

	// MysteryHint stands in for an empty hint reply.
	MysteryHint = "A mystery word!"
)

var ErrEmptyResponse = errors.New("empty response")

const levelPrompt = `
Create a word puzzle level with the theme "%s".
Provide exactly 5 to 7 letters that form multiple valid English words.
Create a simple crossword-style layout with 4 to 6 intersecting words using ONLY these letters.

Output strictly JSON matching the schema.
Coordinate system: Grid starts at 0,0 (top-left). x increases right, y increases down.
Ensure words intersect at least once.
`

const hintPrompt = `Give a very short, fun hint definition for the word "%s" in less than 6 words. No quotes.`

type contentGenerator interface {
	GenerateContent(
		ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// Gemini generates levels and hints with the Gemini API.
type Gemini struct {
	logger *slog.Logger
	models contentGenerator
	model  string
}

// NewGemini - creates a Gemini API client for the given key.
func NewGemini(ctx context.Context, logger *slog.Logger, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGemini(logger, client.Models, model), nil
}

func newGemini(logger *slog.Logger, models contentGenerator, model string) *Gemini {
	if model == "" {
		model = DefaultModel
	}

	return &Gemini{
		logger: logger.With("component", "gemini"),
		models: models,
		model:  model,
	}
}

// GenerateLevel - asks the model for a level of the given theme and validates the reply.
func (that *Gemini) GenerateLevel(ctx context.Context, theme entity.Theme, id int) (*entity.Level, error) {
	log := that.logger.With("method", "GenerateLevel", "theme", theme, "id", id)

	resp, err := that.models.GenerateContent(ctx, that.model, genai.Text(fmt.Sprintf(levelPrompt, theme)),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   levelSchema(),
		})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate level: %w", apperror.ErrProviderFailure, err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("%w: %w", apperror.ErrProviderFailure, ErrEmptyResponse)
	}

	level, err := ParseLevel([]byte(text), theme, id)
	if err != nil {
		return nil, err
	}

	log.Debug("level generated", "name", level.Name, "words", len(level.Words))

	return level, nil
}

// Hint - asks the model for a short clue for word.
func (that *Gemini) Hint(ctx context.Context, word string) (string, error) {
	resp, err := that.models.GenerateContent(ctx, that.model, genai.Text(fmt.Sprintf(hintPrompt, word)), nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get hint: %w", apperror.ErrProviderFailure, err)
	}

	hint := strings.TrimSpace(responseText(resp))
	if hint == "" {
		return MysteryHint, nil
	}

	return hint, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	return resp.Text()
}

func levelSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {Type: genai.TypeString},
			"letters": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"words": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"word":   {Type: genai.TypeString},
						"startX": {Type: genai.TypeInteger},
						"startY": {Type: genai.TypeInteger},
						"direction": {
							Type: genai.TypeString,
							Enum: []string{string(entity.Horizontal), string(entity.Vertical)},
						},
					},
				},
			},
		},
		Required: []string{"name", "letters", "words"},
	}
}
