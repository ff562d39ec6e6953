// Command nanosphere is the terminal front end of the Seleste academic
// portal: advisor chat, lecture synthesis, document drafting, the schematic
// studio, media generation, and the live voice lounge.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/seleste/nanosphere/pkg/config"
	"github.com/seleste/nanosphere/pkg/gateway"
	"github.com/seleste/nanosphere/pkg/logger"
	"github.com/seleste/nanosphere/pkg/metrics"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: nanosphere <command> [flags]

Commands:
  chat      interactive advisor session (/clear, /recall <query>)
  courses   list the seeded course catalog
  lecture   stream a full lecture for a lesson
  slides    generate a slide deck for a lesson
  thesis    draft a research proposal
  report    synthesize a laboratory report
  studio    batch-edit schematic images
  media     generate, edit, analyze or transcribe media artifacts
  lounge    live voice session
`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw, err := gateway.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gateway: %v\n", err)
		os.Exit(1)
	}

	workspace := cfg.WorkspacePath()
	tracker := metrics.NewTracker(workspace)
	gw.OnUsage = func(u gateway.Usage) {
		tracker.Record(metrics.SynthesisEvent{
			Feature:      string(u.Feature),
			Model:        u.Model,
			InputTokens:  int(u.PromptTokens),
			OutputTokens: int(u.OutputTokens),
		})
	}

	var cmdErr error
	switch os.Args[1] {
	case "chat":
		cmdErr = runChat(ctx, cfg, gw, workspace)
	case "courses":
		cmdErr = runCourses(os.Args[2:])
	case "lecture":
		cmdErr = runLecture(ctx, cfg, gw, os.Args[2:])
	case "slides":
		cmdErr = runSlides(ctx, gw, os.Args[2:])
	case "thesis":
		cmdErr = runThesis(ctx, gw, os.Args[2:])
	case "report":
		cmdErr = runReport(ctx, gw, os.Args[2:])
	case "studio":
		cmdErr = runStudio(ctx, gw, os.Args[2:])
	case "media":
		cmdErr = runMedia(ctx, gw, os.Args[2:])
	case "lounge":
		cmdErr = runLounge(ctx, cfg)
	default:
		usage()
	}
	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", cmdErr)
		os.Exit(1)
	}
}

// gatewayEditor adapts the gateway to the studio queue's editor port.
type gatewayEditor struct{ gw *gateway.Client }

func (e gatewayEditor) EditAsset(ctx context.Context, image []byte, mime, directive string) ([]byte, string, error) {
	out, err := e.gw.EditAsset(ctx, image, mime, directive)
	if err != nil {
		return nil, "", err
	}
	return out.Data, out.MIME, nil
}
