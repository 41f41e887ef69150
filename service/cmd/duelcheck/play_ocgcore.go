//go:build ocgcore

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	engine "github.com/jason-s-yu/ygobridge/engine"
	"github.com/jason-s-yu/ygobridge/engine/agent"
	"github.com/jason-s-yu/ygobridge/service/internal/adapter"
	"github.com/jason-s-yu/ygobridge/service/internal/carddb"
	"github.com/jason-s-yu/ygobridge/service/internal/config"
)

// runPlay duels the configured decks against each other, always taking the
// first legal action, and prints every prompt and the field after it.
func runPlay(ctx context.Context, cfg config.Config, log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	steps := fs.Int("steps", 200, "maximum pump steps")
	fs.Parse(args)

	if len(cfg.Decks) != engine.NumPlayers {
		return fmt.Errorf("%w: YGO_DECKS needs %d decks", engine.ErrConfiguration, engine.NumPlayers)
	}
	store, err := carddb.Open(ctx, cfg.CardDB, log)
	if err != nil {
		return err
	}
	var decks [engine.NumPlayers]engine.Deck
	for i, p := range cfg.Decks {
		if decks[i], err = engine.LoadDeck(p); err != nil {
			return err
		}
		if err := store.CheckDeck(decks[i]); err != nil {
			return err
		}
	}

	duel, err := adapter.Open(adapter.NewOCGCore(), cfg.Seed, log)
	if err != nil {
		return err
	}
	defer duel.Close()

	for i := range decks {
		player := engine.PlayerID(i)
		if err := duel.SetPlayerInfo(player, cfg.LP, cfg.StartCount, cfg.DrawCount); err != nil {
			return err
		}
		if err := duel.AddDeck(player, decks[i]); err != nil {
			return err
		}
	}
	if err := duel.StartDuel(cfg.Options); err != nil {
		return err
	}

	buf := make([]byte, adapter.MessageBufferSize)
	for step := 0; step < *steps; step++ {
		st, err := duel.Pump()
		if err != nil {
			return err
		}
		n, err := duel.NextMessage(buf)
		if err != nil {
			return err
		}
		if st.Ended {
			fmt.Println("duel ended")
			return nil
		}
		events, msg, err := engine.SplitBatch(buf[:n])
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		for _, ev := range events {
			log.WithField("msg", agent.MsgToString(ev.ID)).Trace("event")
		}
		if !st.Waiting || msg == nil {
			continue
		}

		p, err := engine.DecodePrompt(msg)
		if err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		printPrompt(p, store)
		printField(duel, p.Player)

		if len(p.Actions) == 0 {
			return fmt.Errorf("step %d: prompt %s has no legal actions", step, agent.MsgToString(p.Msg))
		}
		if err := duel.Submit(p.Actions[0].Response); err != nil {
			return err
		}
	}
	return nil
}

func printField(duel *adapter.Adapter, viewer engine.PlayerID) {
	for i := 0; i < engine.NumPlayers; i++ {
		cards, err := duel.QueryField(engine.PlayerID(i))
		if err != nil {
			fmt.Printf("  field %d: %v\n", i, err)
			continue
		}
		for _, c := range cards {
			fmt.Printf("  %-5s %d %s %d/%d\n", c.Spec(viewer), c.Code,
				agent.PositionString(c.Position), c.Attack, c.Defense)
		}
	}
}
