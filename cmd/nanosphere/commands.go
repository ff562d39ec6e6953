package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seleste/nanosphere/pkg/catalog"
	"github.com/seleste/nanosphere/pkg/config"
	"github.com/seleste/nanosphere/pkg/gateway"
	"github.com/seleste/nanosphere/pkg/media"
	"github.com/seleste/nanosphere/pkg/prompt"
	"github.com/seleste/nanosphere/pkg/stream"
	"github.com/seleste/nanosphere/pkg/studio"
)

func runCourses(args []string) error {
	fs := flag.NewFlagSet("courses", flag.ExitOnError)
	faculty := fs.String("faculty", "", "filter by faculty name")
	fs.Parse(args)

	courses := catalog.Courses
	if *faculty != "" {
		courses = catalog.ByFaculty(catalog.Faculty(*faculty))
	}
	for _, c := range courses {
		fmt.Printf("%s  %s (%s, %s)\n", c.ID, c.Name, c.Level, c.Faculty)
		for _, l := range c.Lessons {
			fmt.Printf("    %s  %s - %s\n", l.ID, l.Code, l.Title)
		}
	}
	return nil
}

func lookupLesson(id string) (catalog.Lesson, catalog.Course, error) {
	lesson, course, ok := catalog.LessonByID(id)
	if !ok {
		return catalog.Lesson{}, catalog.Course{}, fmt.Errorf("unknown lesson id %q (try the courses command)", id)
	}
	return lesson, course, nil
}

const lectureFailText = "CRITICAL ERROR: Synthesis uplink failed. Academic data lost."

func runLecture(ctx context.Context, cfg *config.Config, gw *gateway.Client, args []string) error {
	fs := flag.NewFlagSet("lecture", flag.ExitOnError)
	lessonID := fs.String("lesson", "", "lesson id from the catalog")
	fs.Parse(args)
	if *lessonID == "" {
		return fmt.Errorf("lecture: -lesson is required")
	}

	lesson, course, err := lookupLesson(*lessonID)
	if err != nil {
		return err
	}

	printed := 0
	acc := stream.New(stream.ModeAppend, stream.ReplaceIfEmpty, lectureFailText,
		cfg.StreamInterval, func(snapshot string) {
			if len(snapshot) > printed {
				fmt.Print(snapshot[printed:])
				printed = len(snapshot)
			}
		})

	acc.Begin()
	err = gw.StreamText(ctx, prompt.Lecture(lesson, course), acc.Push)
	if err != nil {
		acc.Fail(err)
		fmt.Println()
		return err
	}
	acc.Complete()
	fmt.Println()
	return nil
}

func runSlides(ctx context.Context, gw *gateway.Client, args []string) error {
	fs := flag.NewFlagSet("slides", flag.ExitOnError)
	lessonID := fs.String("lesson", "", "lesson id from the catalog")
	fs.Parse(args)
	if *lessonID == "" {
		return fmt.Errorf("slides: -lesson is required")
	}

	lesson, course, err := lookupLesson(*lessonID)
	if err != nil {
		return err
	}
	slides, err := gw.GenerateSlides(ctx, prompt.SlideDeck(lesson, course))
	if err != nil {
		return err
	}
	for i, s := range slides {
		fmt.Printf("--- Slide %d: %s ---\n", i+1, s.Title)
		for _, p := range s.Points {
			fmt.Printf("  * %s\n", p)
		}
		if s.Footer != "" {
			fmt.Printf("  [%s]\n", s.Footer)
		}
	}
	return nil
}

func runThesis(ctx context.Context, gw *gateway.Client, args []string) error {
	fs := flag.NewFlagSet("thesis", flag.ExitOnError)
	title := fs.String("title", "", "research topic")
	faculty := fs.String("faculty", string(catalog.FacultyScienceTech), "faculty name")
	keywords := fs.String("keywords", "", "comma-separated keywords")
	fs.Parse(args)
	if *title == "" {
		return fmt.Errorf("thesis: -title is required")
	}

	draft, err := gw.GenerateText(ctx, prompt.Thesis(*title, catalog.Faculty(*faculty), *keywords))
	if err != nil {
		return err
	}
	fmt.Println(draft)
	return nil
}

func runReport(ctx context.Context, gw *gateway.Client, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	exp := fs.String("exp", "", "experiment code")
	name := fs.String("name", "", "student name")
	reg := fs.String("reg", "", "registration number")
	fs.Parse(args)
	if *exp == "" || *name == "" || *reg == "" {
		return fmt.Errorf("report: -exp, -name and -reg are required")
	}

	report, err := gw.GenerateText(ctx, prompt.LabReport(*exp, *name, *reg))
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

func runStudio(ctx context.Context, gw *gateway.Client, args []string) error {
	fs := flag.NewFlagSet("studio", flag.ExitOnError)
	dir := fs.String("dir", ".", "directory of images to edit")
	directive := fs.String("directive", "", "shared transformation directive")
	out := fs.String("out", "", "output directory (default alongside originals)")
	fs.Parse(args)
	if *directive == "" {
		return fmt.Errorf("studio: -directive is required")
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		return fmt.Errorf("read asset dir: %w", err)
	}

	queue := studio.NewQueue(gatewayEditor{gw})
	names := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		payload, err := media.LoadAsset(path)
		if err != nil {
			fmt.Printf("skip %s: %v\n", e.Name(), err)
			continue
		}
		id := queue.Enqueue(payload.Data, payload.MIME)
		names[id] = e.Name()
	}
	if len(queue.Assets()) == 0 {
		return fmt.Errorf("studio: no usable assets in %s", *dir)
	}

	err = queue.RunBatch(ctx, *directive, func(a studio.Asset) {
		switch a.Status {
		case studio.StatusProcessing:
			fmt.Printf("[....] %s\n", names[a.ID])
		case studio.StatusDone:
			fmt.Printf("[done] %s\n", names[a.ID])
		case studio.StatusError:
			fmt.Printf("[fail] %s: %s\n", names[a.ID], a.Err)
		}
	})
	if err != nil {
		return err
	}

	outDir := *out
	if outDir == "" {
		outDir = *dir
	}
	for _, a := range queue.Assets() {
		if a.Status != studio.StatusDone {
			continue
		}
		base := strings.TrimSuffix(names[a.ID], filepath.Ext(names[a.ID]))
		path := filepath.Join(outDir, base+".edited"+extForMIME(a.EditMIME))
		if err := os.WriteFile(path, a.Edited, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func extForMIME(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

func runMedia(ctx context.Context, gw *gateway.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("media: expected one of image|video|edit|speech|analyze|transcribe")
	}
	sub, rest := args[0], args[1:]
	fs := flag.NewFlagSet("media "+sub, flag.ExitOnError)

	switch sub {
	case "image":
		directive := fs.String("directive", "", "image description")
		aspect := fs.String("aspect", "1:1", "aspect ratio")
		resolution := fs.String("resolution", "1080p", "resolution hint")
		out := fs.String("out", "generated.png", "output file")
		fs.Parse(rest)
		if *directive == "" {
			return fmt.Errorf("media image: -directive is required")
		}
		img, err := gw.GenerateImage(ctx, prompt.Image(*directive, *aspect, *resolution))
		if err != nil {
			return err
		}
		return writeArtifact(*out, img.Data)

	case "video":
		directive := fs.String("directive", "", "video description")
		aspect := fs.String("aspect", "16:9", "aspect ratio")
		ref := fs.String("ref", "", "source image to animate (optional)")
		out := fs.String("out", "generated.mp4", "output file")
		fs.Parse(rest)
		if *directive == "" {
			return fmt.Errorf("media video: -directive is required")
		}
		var refData []byte
		var refMime string
		if *ref != "" {
			payload, err := media.LoadAsset(*ref)
			if err != nil {
				return err
			}
			refData, refMime = payload.Data, payload.MIME
		}
		fmt.Println("synthesizing video, this takes a few minutes...")
		v, err := gw.GenerateVideo(ctx, prompt.Video(*directive, *aspect), refData, refMime)
		if err != nil {
			return err
		}
		if len(v.Data) == 0 {
			fmt.Printf("video ready at %s\n", v.URI)
			return nil
		}
		return writeArtifact(*out, v.Data)

	case "edit":
		file := fs.String("file", "", "image file to edit")
		directive := fs.String("directive", "", "transformation directive")
		out := fs.String("out", "", "output file (default <file>.edited.png)")
		fs.Parse(rest)
		if *file == "" || *directive == "" {
			return fmt.Errorf("media edit: -file and -directive are required")
		}
		payload, err := media.LoadAsset(*file)
		if err != nil {
			return err
		}
		edited, err := gw.EditAsset(ctx, payload.Data, payload.MIME, *directive)
		if err != nil {
			return err
		}
		path := *out
		if path == "" {
			base := strings.TrimSuffix(*file, filepath.Ext(*file))
			path = base + ".edited" + extForMIME(edited.MIME)
		}
		return writeArtifact(path, edited.Data)

	case "speech":
		text := fs.String("text", "", "text to narrate")
		out := fs.String("out", "speech.wav", "output file")
		fs.Parse(rest)
		if *text == "" {
			return fmt.Errorf("media speech: -text is required")
		}
		audio, err := gw.GenerateSpeech(ctx, *text)
		if err != nil {
			return err
		}
		return writeArtifact(*out, media.WrapPCM(audio.Data, 24000))

	case "analyze":
		file := fs.String("file", "", "artifact to analyze")
		directive := fs.String("directive", "", "analysis directive")
		fs.Parse(rest)
		if *file == "" {
			return fmt.Errorf("media analyze: -file is required")
		}
		payload, err := media.LoadAsset(*file)
		if err != nil {
			return err
		}
		answer, err := gw.AnalyzeMedia(ctx, payload.Data, payload.MIME, *directive)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil

	case "transcribe":
		file := fs.String("file", "", "audio file to transcribe")
		mime := fs.String("mime", "audio/wav", "audio MIME type")
		fs.Parse(rest)
		if *file == "" {
			return fmt.Errorf("media transcribe: -file is required")
		}
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read %s: %w", *file, err)
		}
		transcript, err := gw.Transcribe(ctx, data, *mime)
		if err != nil {
			return err
		}
		fmt.Println(transcript)
		return nil

	default:
		return fmt.Errorf("media: unknown subcommand %q", sub)
	}
}

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
	return nil
}
