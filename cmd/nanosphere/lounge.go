package main

import (
	"context"
	"fmt"

	"github.com/seleste/nanosphere/pkg/config"
	"github.com/seleste/nanosphere/pkg/lounge"
)

// runLounge connects the live session and reports its events. Audio device
// plumbing is left to the host; model audio chunks are counted rather than
// played.
func runLounge(ctx context.Context, cfg *config.Config) error {
	session, err := lounge.Dial(ctx, cfg.APIKey, cfg.Models.Live, cfg.Voice)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Start(); err != nil {
		return err
	}
	fmt.Println("Uplink active. Ctrl-C disconnects.")

	go func() {
		<-ctx.Done()
		session.Close()
	}()

	var chunks int
	var bytes int
	for ev := range session.Events() {
		switch ev.Kind {
		case lounge.EventAudio:
			chunks++
			bytes += len(ev.Audio)
		case lounge.EventInterrupted:
			fmt.Println("[interrupted, playback flushed]")
			session.DrainScheduled()
		case lounge.EventTurnComplete:
			fmt.Printf("[turn complete: %d chunks, %d PCM bytes at %d Hz]\n",
				chunks, bytes, lounge.OutputSampleRate)
			chunks, bytes = 0, 0
		case lounge.EventClosed:
			if ev.Err != nil && ctx.Err() == nil {
				return fmt.Errorf("session closed: %w", ev.Err)
			}
		}
	}
	fmt.Println("Disconnected.")
	return nil
}
