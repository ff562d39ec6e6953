// Package gateway is the single seam between the portal and the Gemini API.
// Every feature goes through it: text synthesis, structured decks, asset
// edits, media generation, grounded advice, and embeddings.
package gateway

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"github.com/seleste/nanosphere/pkg/config"
	"github.com/seleste/nanosphere/pkg/logger"
	"github.com/seleste/nanosphere/pkg/prompt"
)

// Usage is the per-call token accounting surfaced to the metrics layer.
type Usage struct {
	Feature      prompt.Feature
	Model        string
	PromptTokens int32
	OutputTokens int32
}

// Client wraps the vendor SDK behind portal-shaped operations. Construct it
// once per process; it is safe for concurrent use.
type Client struct {
	genai  *genai.Client
	models config.ModelConfig
	voice  string

	pollInterval pollTiming
	maxPolls     int

	// OnUsage, when set, receives token accounting after each successful
	// call. Must not block.
	OnUsage func(Usage)
}

// New dials the Gemini API. The key is validated lazily by the first call,
// matching the vendor SDK's behavior.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, transport("new-client", err)
	}
	logger.InfoCF("gateway", "Gemini client ready", map[string]interface{}{
		"text_model": cfg.Models.Text,
	})
	return &Client{
		genai:        gc,
		models:       cfg.Models,
		voice:        cfg.Voice,
		pollInterval: realTiming{interval: cfg.PollInterval},
		maxPolls:     cfg.MaxPolls,
	}, nil
}

func (c *Client) usage(feature prompt.Feature, model string, meta *genai.GenerateContentResponseUsageMetadata) {
	if c.OnUsage == nil || meta == nil {
		return
	}
	c.OnUsage(Usage{
		Feature:      feature,
		Model:        model,
		PromptTokens: meta.PromptTokenCount,
		OutputTokens: meta.CandidatesTokenCount,
	})
}

func textConfig(system string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	return cfg
}

// GenerateText runs a single-shot synthesis and returns the scrubbed result.
// Thesis drafts use the pro model; everything else uses the flash model.
func (c *Client) GenerateText(ctx context.Context, req prompt.Request) (string, error) {
	model := c.models.Text
	if req.Feature == prompt.FeatureThesis {
		model = c.models.ProText
	}

	resp, err := c.genai.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(req.Directive, genai.RoleUser)},
		textConfig(req.System))
	if err != nil {
		return "", transport(string(req.Feature), err)
	}
	c.usage(req.Feature, model, resp.UsageMetadata)

	text := CleanResponse(resp.Text())
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

// StreamText runs a streaming synthesis, invoking emit once per chunk. The
// first chunk is scrubbed of preamble; later chunks pass through untouched so
// mid-document phrases survive. Returns after the stream is drained.
func (c *Client) StreamText(ctx context.Context, req prompt.Request, emit func(chunk string)) error {
	model := c.models.Text
	first := true
	var meta *genai.GenerateContentResponseUsageMetadata

	for resp, err := range c.genai.Models.GenerateContentStream(ctx, model,
		[]*genai.Content{genai.NewContentFromText(req.Directive, genai.RoleUser)},
		textConfig(req.System)) {
		if err != nil {
			return transport(string(req.Feature), err)
		}
		if resp.UsageMetadata != nil {
			meta = resp.UsageMetadata
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		if first {
			chunk = CleanResponse(chunk)
			first = false
		}
		if chunk != "" {
			emit(chunk)
		}
	}
	c.usage(req.Feature, model, meta)
	return nil
}

// Slide is one entry of a generated deck.
type Slide struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
	Footer string   `json:"footer"`
}

var slideSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":  {Type: genai.TypeString},
			"points": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"footer": {Type: genai.TypeString},
		},
		PropertyOrdering: []string{"title", "points", "footer"},
	},
}

// GenerateSlides produces a schema-constrained deck. A response that does not
// decode as the declared schema is a hard error carrying the raw payload.
func (c *Client) GenerateSlides(ctx context.Context, req prompt.Request) ([]Slide, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   slideSchema,
	}
	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Text,
		[]*genai.Content{genai.NewContentFromText(req.Directive, genai.RoleUser)}, cfg)
	if err != nil {
		return nil, transport("slides", err)
	}
	c.usage(prompt.FeatureSlides, c.models.Text, resp.UsageMetadata)

	return decodeSlides(resp.Text())
}

// decodeSlides parses the schema-constrained deck payload. Anything that is
// not a JSON array of slides is a ParseError carrying the raw text.
func decodeSlides(raw string) ([]Slide, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyResult
	}
	var slides []Slide
	if err := json.Unmarshal([]byte(raw), &slides); err != nil {
		return nil, &ParseError{Op: "slides", Raw: raw, Err: err}
	}
	return slides, nil
}

// EmbedText returns the embedding vector for a piece of text.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	content := genai.NewContentFromText(text, genai.RoleUser)
	resp, err := c.genai.Models.EmbedContent(ctx, c.models.Embedding,
		[]*genai.Content{content}, &genai.EmbedContentConfig{})
	if err != nil {
		return nil, transport("embed", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, ErrEmptyResult
	}
	return resp.Embeddings[0].Values, nil
}
