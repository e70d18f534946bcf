package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"setgame/internal/config"
	"setgame/pkg/game"
)

var (
	games    = flag.Int("games", 1, "the number of games to play")
	seed     = flag.Int64("seed", 0, "the shuffle seed (overrides the config; 0 uses the config or a random shuffle)")
	jsonLogs = flag.Bool("json", false, "print each game log as JSON instead of the text report")
)

func main() {
	flag.Parse()
	setupLogger()

	opts := optionsFromConfig(config.Instance())
	if *seed != 0 {
		opts.Seed = *seed
	}

	if err := run(os.Stdout, logrus.StandardLogger(), opts, *games, *jsonLogs); err != nil {
		logrus.WithError(err).Fatal("could not play")
	}
}

func optionsFromConfig(cfg config.Config) game.Options {
	return game.Options{
		DeckSize:  cfg.Game.DeckSize,
		BoardSize: cfg.Game.BoardSize,
		DealSize:  cfg.Game.DealSize,
		Seed:      cfg.Game.Seed,
	}
}

// run plays n games. Seeded runs use consecutive seeds so every game differs but remains reproducible
func run(w io.Writer, logger logrus.FieldLogger, opts game.Options, n int, asJSON bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	for i := 0; i < n; i++ {
		gameOpts := opts
		if opts.Seed != 0 {
			gameOpts.Seed = opts.Seed + int64(i)
		}

		g, err := game.NewGame(logger, gameOpts)
		if err != nil {
			return err
		}

		g.Play()
		if asJSON {
			if err := enc.Encode(g.GameLog()); err != nil {
				return err
			}

			continue
		}

		if n > 1 {
			if _, err := fmt.Fprintf(w, "GAME %d\n", i+1); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, g.Report()); err != nil {
			return err
		}
	}

	return nil
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !term.IsTerminal(int(os.Stderr.Fd())),
	})
}
