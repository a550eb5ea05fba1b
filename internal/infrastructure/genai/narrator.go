package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	googlegenai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/wedifit/wedifit-services/api/internal/survey/domain"
)

// narratorTimeout caps how long a result page may wait on the model. Past
// it the static persona text is served unchanged.
const narratorTimeout = 10 * time.Second

const modelName = "gemini-2.5-flash"

// Narrator rewrites the static persona description with a generative model.
// It is strictly best-effort: any error, malformed output or timeout leaves
// the input result untouched, so the survey result never blocks on it.
type Narrator struct {
	logger *log.Logger
	client *googlegenai.Client
	model  *googlegenai.GenerativeModel
}

// NewNarrator connects to the Gemini API. Returns an error when the client
// cannot be constructed; callers treat a nil Narrator as "feature off".
func NewNarrator(ctx context.Context, logger *log.Logger, apiKey string) (*Narrator, error) {
	client, err := googlegenai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	return &Narrator{logger: logger, client: client, model: model}, nil
}

func (n *Narrator) Close() {
	n.client.Close()
}

// narration is the JSON document the model is asked to produce.
type narration struct {
	TypeCode               string   `json:"typeCode"`
	TypeName               string   `json:"typeName"`
	Description            string   `json:"description"`
	Tags                   []string `json:"tags"`
	RecommendedVendorStyle string   `json:"recommendedVendorCategory"`
	RecommendedDressStyle  string   `json:"recommendedDressStyle"`
}

// Narrate produces a personalized rewrite of the resolved persona. The
// result's type code is authoritative: a response carrying a different code
// is discarded.
func (n *Narrator) Narrate(ctx context.Context, answers domain.Answers, result domain.PersonaResult) domain.PersonaResult {
	ctx, cancel := context.WithTimeout(ctx, narratorTimeout)
	defer cancel()

	type generated struct {
		text string
		err  error
	}
	ch := make(chan generated, 1)
	go func() {
		text, err := n.generate(ctx, answers, result)
		ch <- generated{text: text, err: err}
	}()

	var text string
	select {
	case g := <-ch:
		if g.err != nil {
			n.logger.Printf("persona narration failed, serving static result: %v", g.err)
			return result
		}
		text = g.text
	case <-ctx.Done():
		n.logger.Printf("persona narration timed out, serving static result")
		return result
	}

	var doc narration
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		n.logger.Printf("persona narration returned malformed JSON, serving static result: %v", err)
		return result
	}
	if doc.TypeCode != result.TypeCode || doc.TypeName == "" || doc.Description == "" {
		n.logger.Printf("persona narration drifted from code %s, serving static result", result.TypeCode)
		return result
	}

	narrated := result
	narrated.TypeName = doc.TypeName
	narrated.Description = doc.Description
	if len(doc.Tags) > 0 {
		narrated.Tags = doc.Tags
	}
	if doc.RecommendedVendorStyle != "" {
		narrated.RecommendedVendorStyle = doc.RecommendedVendorStyle
	}
	if doc.RecommendedDressStyle != "" {
		narrated.RecommendedDressStyle = doc.RecommendedDressStyle
	}
	return narrated
}

func (n *Narrator) generate(ctx context.Context, answers domain.Answers, result domain.PersonaResult) (string, error) {
	budget := answers.Budget()
	prompt := fmt.Sprintf(`Analyze the user's wedding preferences based on these survey answers.

User's Derived Type Code: %s
(G=Emotional/S=Practical, B=Big/P=Private, C=Classic/M=Modern, L=Lead/F=Follow)

1. Preferred Moods (Image Keywords): %v
2. Budget: Total(%d man-won), Studio(%d), Dress(%d), Makeup(%d)

Based on the Type Code %q and the details above, create a creative persona name and description.

IMPORTANT:
- The "typeCode" in the JSON MUST be exactly %q.
- Return all text fields in KOREAN.

Return JSON format:
{
  "typeCode": "string",
  "typeName": "string (Creative Persona Name in Korean)",
  "description": "string (Korean, polite and engaging tone)",
  "tags": ["string (Korean hashtag)", "string", "string"],
  "recommendedVendorCategory": "string (Korean)",
  "recommendedDressStyle": "string (Korean)"
}`,
		result.TypeCode, answers.Moods, budget.Total(),
		budget.Studio, budget.Dress, budget.Makeup,
		result.TypeCode, result.TypeCode)

	resp, err := n.model.GenerateContent(ctx, googlegenai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
