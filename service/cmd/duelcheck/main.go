// Command duelcheck validates deck lists against a card database, decodes
// captured prompt messages into legal actions and, when built with the
// ocgcore tag, drives a duel against the linked engine.
//
// Usage:
//
//	duelcheck decks [-db cards.cdb] deck.ydk...
//	duelcheck decode [-db cards.cdb] <hex message batch>
//	duelcheck play [-steps n]
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	engine "github.com/jason-s-yu/ygobridge/engine"
	"github.com/jason-s-yu/ygobridge/engine/agent"
	"github.com/jason-s-yu/ygobridge/service/internal/carddb"
	"github.com/jason-s-yu/ygobridge/service/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]
	ctx := context.Background()
	log := logrus.New()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	log.SetLevel(cfg.LogLevel)

	switch cmd {
	case "decks":
		err = runDecks(ctx, cfg, log, args)
	case "decode":
		err = runDecode(ctx, log, args)
	case "play":
		err = runPlay(ctx, cfg, log, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, engine.ErrConfiguration) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// loadConfig reads the environment for the subcommands that use it. decode
// works on its arguments alone and gets a zero Config with info logging.
func loadConfig(cmd string) (config.Config, error) {
	if cmd == "decode" {
		return config.Config{LogLevel: logrus.InfoLevel}, nil
	}
	return config.Load()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: duelcheck decks|decode|play [flags] [args]")
}

func runDecks(ctx context.Context, cfg config.Config, log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("decks", flag.ExitOnError)
	fs.StringVar(&cfg.CardDB, "db", cfg.CardDB, "card database path")
	fs.Parse(args)

	paths := fs.Args()
	if len(paths) == 0 {
		paths = cfg.Decks
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: no deck files given", engine.ErrConfiguration)
	}

	store, err := carddb.Open(ctx, cfg.CardDB, log)
	if err != nil {
		return err
	}
	failed := 0
	for _, p := range paths {
		d, err := engine.LoadDeck(p)
		if err == nil {
			err = store.CheckDeck(d)
		}
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", p, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s: main %d, extra %d, side %d\n", p, len(d.Main), len(d.Extra), len(d.Side))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d decks invalid", engine.ErrConfiguration, failed, len(paths))
	}
	return nil
}

func runDecode(ctx context.Context, log *logrus.Logger, args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	dbPath := fs.String("db", "", "card database path for names and ids (optional)")
	fs.Parse(args)
	if fs.NArg() != 1 {
		return errors.New("decode takes exactly one hex message")
	}
	buf, err := hex.DecodeString(strings.TrimSpace(fs.Arg(0)))
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrMalformedProtocol, err)
	}

	var store *carddb.Store
	if *dbPath != "" {
		if store, err = carddb.Open(ctx, *dbPath, log); err != nil {
			return err
		}
	}
	events, msg, err := engine.SplitBatch(buf)
	if err != nil {
		return err
	}
	for _, ev := range events {
		fmt.Printf("%s %x\n", agent.MsgToString(ev.ID), ev.Body)
	}
	if msg == nil {
		return nil
	}
	p, err := engine.DecodePrompt(msg)
	if err != nil {
		return err
	}
	printPrompt(p, store)
	return nil
}

// printPrompt lists every legal action with its response and feature vector.
func printPrompt(p *engine.Prompt, store *carddb.Store) {
	fmt.Printf("%s player=%d actions=%d\n", agent.MsgToString(p.Msg), p.Player, len(p.Actions))
	for i, a := range p.Actions {
		var id engine.CardID
		name := ""
		if store != nil && a.Code != 0 {
			if d, ok := store.Definition(a.Code); ok {
				id, name = d.ID, d.Name
			}
		}
		var feat [agent.ActionFeatureDim]uint8
		featStr := "error"
		if err := agent.EncodeAction(a, id, &feat); err == nil {
			featStr = fmt.Sprint(feat)
		}
		resp := fmt.Sprint(a.Response.Int)
		if a.Response.IsBytes {
			resp = hex.EncodeToString(a.Response.Bytes)
		}
		fmt.Printf("  %2d %-40s %-24s resp=%s feat=%s\n", i, a.String(), name, resp, featStr)
	}
}
