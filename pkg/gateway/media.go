package gateway

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/seleste/nanosphere/pkg/logger"
	"github.com/seleste/nanosphere/pkg/prompt"
)

// Binary is a returned media artifact plus its MIME type.
type Binary struct {
	Data []byte
	MIME string
}

// EditAsset sends an image with a transformation directive to the image-edit
// model and returns the first image part of the answer. Text parts in the
// response are ignored; a response with no image part is ErrEmptyResult.
func (c *Client) EditAsset(ctx context.Context, image []byte, mime, directive string) (Binary, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(image, mime),
		genai.NewPartFromText(prompt.ImageEdit(directive)),
	}, genai.RoleUser)

	resp, err := c.genai.Models.GenerateContent(ctx, c.models.ImageEdit,
		[]*genai.Content{content}, nil)
	if err != nil {
		return Binary{}, transport("edit-asset", err)
	}
	c.usage(prompt.FeatureImageEdit, c.models.ImageEdit, resp.UsageMetadata)

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return Binary{Data: part.InlineData.Data, MIME: part.InlineData.MIMEType}, nil
			}
		}
	}
	return Binary{}, ErrEmptyResult
}

// GenerateImage produces a fresh image from a directive. The resolution hint
// rides inside the prompt because the image API has no resolution knob.
func (c *Client) GenerateImage(ctx context.Context, req prompt.Request) (Binary, error) {
	directive := req.Directive
	if req.Resolution != "" {
		directive = fmt.Sprintf("%s (render at %s fidelity)", directive, req.Resolution)
	}
	cfg := &genai.GenerateImagesConfig{NumberOfImages: 1}
	if req.AspectRatio != "" {
		cfg.AspectRatio = req.AspectRatio
	}

	resp, err := c.genai.Models.GenerateImages(ctx, c.models.ImageGen, directive, cfg)
	if err != nil {
		return Binary{}, transport("generate-image", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return Binary{}, ErrEmptyResult
	}
	img := resp.GeneratedImages[0].Image
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return Binary{Data: img.ImageBytes, MIME: mime}, nil
}

// VideoResult carries whichever form the video API returned. URI is set when
// the service kept the artifact remote instead of inlining bytes.
type VideoResult struct {
	Data []byte
	MIME string
	URI  string
}

// pollTiming lets tests replace the ten-second production cadence.
type pollTiming interface {
	wait(ctx context.Context) error
}

type realTiming struct{ interval time.Duration }

func (t realTiming) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(t.interval):
		return nil
	}
}

// videoReference wraps an optional source image for image-to-video synthesis.
// Empty input means text-to-video.
func videoReference(refImage []byte, refMime string) *genai.Image {
	if len(refImage) == 0 {
		return nil
	}
	if refMime == "" {
		refMime = "image/png"
	}
	return &genai.Image{ImageBytes: refImage, MIMEType: refMime}
}

// GenerateVideo starts a video synthesis and polls the long-running operation
// until it completes, the context is cancelled, or the poll budget runs out.
// A non-empty refImage anchors the synthesis to that frame.
func (c *Client) GenerateVideo(ctx context.Context, req prompt.Request, refImage []byte, refMime string) (VideoResult, error) {
	cfg := &genai.GenerateVideosConfig{}
	if req.AspectRatio != "" {
		cfg.AspectRatio = req.AspectRatio
	}
	op, err := c.genai.Models.GenerateVideos(ctx, c.models.Video, req.Directive, videoReference(refImage, refMime), cfg)
	if err != nil {
		return VideoResult{}, transport("generate-video", err)
	}

	polls := 0
	for !op.Done {
		if polls >= c.maxPolls {
			return VideoResult{}, transport("generate-video",
				fmt.Errorf("operation still running after %d polls", polls))
		}
		if err := c.pollInterval.wait(ctx); err != nil {
			return VideoResult{}, transport("generate-video", err)
		}
		polls++
		op, err = c.genai.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return VideoResult{}, transport("generate-video", err)
		}
		logger.DebugCF("gateway", "video poll", map[string]interface{}{
			"poll": polls,
			"done": op.Done,
		})
	}

	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 || op.Response.GeneratedVideos[0].Video == nil {
		return VideoResult{}, ErrEmptyResult
	}
	v := op.Response.GeneratedVideos[0].Video
	mime := v.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	return VideoResult{Data: v.VideoBytes, MIME: mime, URI: v.URI}, nil
}

// GenerateSpeech narrates text with the configured prebuilt voice and returns
// raw PCM as produced by the TTS model.
func (c *Client) GenerateSpeech(ctx context.Context, text string) (Binary, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.voice},
			},
		},
	}
	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Speech,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, cfg)
	if err != nil {
		return Binary{}, transport("speech", err)
	}
	c.usage(prompt.FeatureSpeech, c.models.Speech, resp.UsageMetadata)

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return Binary{Data: part.InlineData.Data, MIME: part.InlineData.MIMEType}, nil
			}
		}
	}
	return Binary{}, ErrEmptyResult
}

// AnalyzeMedia asks the flash model about an uploaded artifact (image, audio,
// video, or PDF) and returns the scrubbed answer.
func (c *Client) AnalyzeMedia(ctx context.Context, data []byte, mime, directive string) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(data, mime),
		genai.NewPartFromText(prompt.Analysis(directive)),
	}, genai.RoleUser)

	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Text,
		[]*genai.Content{content}, nil)
	if err != nil {
		return "", transport("analyze", err)
	}
	c.usage(prompt.FeatureAnalysis, c.models.Text, resp.UsageMetadata)

	text := CleanResponse(resp.Text())
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}

// Transcribe converts recorded audio to a verbatim transcript.
func (c *Client) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	return c.AnalyzeMedia(ctx, audio, mime,
		"Transcribe this audio verbatim. Output only the transcript text.")
}
