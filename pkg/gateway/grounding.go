package gateway

import (
	"context"

	"google.golang.org/genai"

	"github.com/seleste/nanosphere/pkg/prompt"
)

// SourceKind tags where a grounding citation came from.
type SourceKind string

const (
	SourceWeb       SourceKind = "web"
	SourceRetrieved SourceKind = "retrieved"
)

// Source is one citation attached to a grounded answer.
type Source struct {
	Kind  SourceKind
	Title string
	URI   string
}

// GroundedAnswer pairs the advisor's text with its citations. Sources may be
// empty when the model answered from parametric knowledge alone.
type GroundedAnswer struct {
	Text    string
	Sources []Source
}

// AskAdvisor answers a question with Google Search grounding enabled and
// returns the citations the model actually used.
func (c *Client) AskAdvisor(ctx context.Context, question string) (GroundedAnswer, error) {
	cfg := textConfig(prompt.AdvisorSystem())
	cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}

	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Text,
		[]*genai.Content{genai.NewContentFromText(question, genai.RoleUser)}, cfg)
	if err != nil {
		return GroundedAnswer{}, transport("ask-advisor", err)
	}
	c.usage(prompt.FeatureAdvisor, c.models.Text, resp.UsageMetadata)

	text := CleanResponse(resp.Text())
	if text == "" {
		return GroundedAnswer{}, ErrEmptyResult
	}

	answer := GroundedAnswer{Text: text}
	for _, cand := range resp.Candidates {
		if cand.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			switch {
			case chunk.Web != nil:
				answer.Sources = append(answer.Sources, Source{
					Kind:  SourceWeb,
					Title: chunk.Web.Title,
					URI:   chunk.Web.URI,
				})
			case chunk.RetrievedContext != nil:
				answer.Sources = append(answer.Sources, Source{
					Kind:  SourceRetrieved,
					Title: chunk.RetrievedContext.Title,
					URI:   chunk.RetrievedContext.URI,
				})
			}
		}
	}
	return answer, nil
}
