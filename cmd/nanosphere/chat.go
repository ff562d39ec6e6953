package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/seleste/nanosphere/pkg/advisor"
	"github.com/seleste/nanosphere/pkg/config"
	"github.com/seleste/nanosphere/pkg/gateway"
	"github.com/seleste/nanosphere/pkg/logger"
	"github.com/seleste/nanosphere/pkg/memory"
)

func runChat(ctx context.Context, cfg *config.Config, gw *gateway.Client, workspace string) error {
	store := advisor.NewFileHistory(workspace)
	adv := advisor.New(gw, store)

	recall, err := memory.NewRecallStore(workspace, memory.EmbeddingFunc(gw))
	if err != nil {
		logger.WarnCF("chat", "recall store unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "you> ",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("Seleste AI Academic Advisor. /clear resets, /recall <query> searches memory, /grounded <question> cites sources, Ctrl-D exits.")
	for _, m := range adv.Messages() {
		fmt.Printf("%s> %s\n", m.Role, m.Text)
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case line == "/clear":
			if err := adv.Clear(); err != nil {
				fmt.Printf("clear failed: %v\n", err)
			} else {
				fmt.Println("conversation cleared")
			}
			continue

		case strings.HasPrefix(line, "/recall"):
			if recall == nil {
				fmt.Println("recall is unavailable this session")
				continue
			}
			query := strings.TrimSpace(strings.TrimPrefix(line, "/recall"))
			if query == "" {
				fmt.Println("usage: /recall <query>")
				continue
			}
			snippets, err := recall.Search(ctx, query, 3)
			if err != nil {
				fmt.Printf("recall failed: %v\n", err)
				continue
			}
			if len(snippets) == 0 {
				fmt.Println("nothing remembered yet")
				continue
			}
			for _, s := range snippets {
				fmt.Printf("--- %.2f  %s\n%s\n", s.Score, s.Timestamp, s.Content)
			}
			continue

		case strings.HasPrefix(line, "/grounded"):
			question := strings.TrimSpace(strings.TrimPrefix(line, "/grounded"))
			if question == "" {
				fmt.Println("usage: /grounded <question>")
				continue
			}
			answer, err := gw.AskAdvisor(ctx, question)
			if err != nil {
				fmt.Println(advisor.ErrDisconnected)
				continue
			}
			fmt.Printf("advisor> %s\n", answer.Text)
			for _, src := range answer.Sources {
				fmt.Printf("  [%s] %s  %s\n", src.Kind, src.Title, src.URI)
			}
			adv.Record(question, advisor.Message{
				Role:      advisor.RoleModel,
				Text:      answer.Text,
				Grounding: answer.Sources,
			})
			continue
		}

		fmt.Print("advisor> ")
		printed := 0
		err = adv.Ask(ctx, line, func(snapshot string) {
			if len(snapshot) > printed {
				fmt.Print(snapshot[printed:])
				printed = len(snapshot)
			}
		})
		fmt.Println()
		if err != nil {
			logger.WarnCF("chat", "advisor stream failed", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}

		if recall != nil {
			msgs := adv.Messages()
			if len(msgs) >= 2 {
				recall.IndexExchange(ctx, "chat", line, msgs[len(msgs)-1].Text)
			}
		}
	}
}
