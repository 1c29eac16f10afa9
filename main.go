package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"stillnight/pkg/engine/input"
	"stillnight/pkg/engine/logging"
	"stillnight/pkg/engine/terminal"
	"stillnight/pkg/game/data"
	"stillnight/pkg/game/devtools"
	"stillnight/pkg/game/dungeon"
	"stillnight/pkg/game/gameplay"
	"stillnight/pkg/game/renderer/tui"
	"stillnight/pkg/game/state"
)

type options struct {
	floor    int
	seed     int64
	dungeon  string
	dataDir  string
	dump     string
	html     bool
	schema   bool
	showcase bool
	moves    string
	play     bool
	logLevel string
	jsonLogs bool
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.floor, "floor", 0, "starting floor (0 is the hub)")
	flag.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.StringVar(&o.dungeon, "dungeon", dungeon.DefaultName, "dungeon definition to descend into")
	flag.StringVar(&o.dataDir, "data", "", "directory with YAML files overriding the built-in data")
	flag.StringVar(&o.dump, "dump", "", "write a map dump to this file and exit")
	flag.BoolVar(&o.html, "html", false, "save an HTML screenshot of the floor")
	flag.BoolVar(&o.schema, "schema", false, "print the dungeon JSON schema and exit")
	flag.BoolVar(&o.showcase, "showcase", false, "place one event of every kind near the player")
	flag.StringVar(&o.moves, "moves", "", "actions to apply before rendering, e.g. \"nnex\"")
	flag.BoolVar(&o.play, "play", false, "read actions from stdin, one line per turn")
	flag.StringVar(&o.logLevel, "log-level", logging.DefaultLevel, "diagnostic log level")
	flag.BoolVar(&o.jsonLogs, "json-logs", false, "write diagnostics as JSON")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()

	log, err := logging.New(os.Stderr, o.logLevel, o.jsonLogs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(o, log, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("stillnight")
		os.Exit(1)
	}
}

func run(o options, log zerolog.Logger, in io.Reader, out io.Writer) error {
	if o.schema {
		b, err := devtools.DungeonSchema()
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	}

	cat, err := data.Load(o.dataDir, logging.Component(log, "data"))
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	log.Debug().Int64("seed", o.seed).Str("dungeon", o.dungeon).Msg("starting run")

	g, err := gameplay.BuildGame(cat, state.Options{
		Seed:    o.seed,
		Dungeon: o.dungeon,
		Log:     logging.Component(log, "game"),
	}, o.floor)
	if err != nil {
		return err
	}

	if o.showcase {
		if _, err := devtools.SpawnShowcase(g); err != nil {
			return fmt.Errorf("showcase: %w", err)
		}
	}

	if o.moves != "" {
		acts, err := input.Parse(o.moves)
		if err != nil {
			return err
		}
		if _, err := gameplay.ProcessActions(g, acts); err != nil {
			return err
		}
	}

	if o.dump != "" {
		path, err := devtools.DumpMapToFile(g, o.dump)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		log.Info().Str("path", path).Msg("map dumped")
		return nil
	}

	r := tui.New()
	if !terminal.IsTerminal() {
		// Piped output gets the whole floor instead of a terminal-sized window
		r.Cols, r.Rows = g.Map.Width(), g.Map.Height()
	}

	if o.play {
		if err := playLoop(g, r, in, out); err != nil {
			return err
		}
	} else if err := r.RenderFrame(out, g); err != nil {
		return err
	}

	if o.html {
		path, err := devtools.SaveScreenshotHTML(g)
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		log.Info().Str("path", path).Msg("screenshot saved")
	}
	return nil
}

// playLoop renders a frame, reads a line of actions and applies it until
// quit or end of input
func playLoop(g *state.Game, r *tui.TUIRenderer, in io.Reader, out io.Writer) error {
	rd := input.NewReader(in)
	for {
		if err := r.RenderFrame(out, g); err != nil {
			return err
		}
		fmt.Fprint(out, "\n> ")

		acts, err := rd.Next()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, input.ErrUnknownCommand) {
			g.AddMessage(err.Error())
			continue
		}
		if err != nil {
			return err
		}

		quit, err := gameplay.ProcessActions(g, acts)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
