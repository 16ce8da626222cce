// Command rebrand turns a fresh clone of the Calurcap template into a new
// app. Run it from the project root.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/avarnic/rebrand/kit/colorlog"
	"github.com/avarnic/rebrand/kit/grace"
	"github.com/avarnic/rebrand/rebrand"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		colorlog.New("rebrand", colorlog.Options{Output: os.Stderr}).Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("rebrand", flag.ContinueOnError)
	fs.SetOutput(stdout)
	root := fs.String("root", ".", "project root")
	answers := fs.String("answers", "", "read answers from a dotenv `file` instead of prompting")
	watch := fs.Bool("watch", false, "re-run whenever the answers file changes")
	verbose := fs.Bool("verbose", false, "log skipped files")
	noColor := fs.Bool("no-color", false, "disable colored output")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logOpts := colorlog.Options{Output: stdout, Level: slog.LevelInfo}
	if *verbose {
		logOpts.Level = slog.LevelDebug
	}
	if *noColor {
		useColor := false
		logOpts.UseColor = &useColor
	}

	log := colorlog.New("rebrand", logOpts)
	opts := rebrand.Options{
		Root:        *root,
		AnswersFile: *answers,
		In:          stdin,
		Out:         stdout,
		Log:         log,
	}

	if !*watch {
		return rebrand.Run(opts)
	}
	if *answers == "" {
		return errors.New("-watch requires -answers")
	}
	ctx, stop := grace.NotifyContext(context.Background(), log)
	defer stop()
	return rebrand.Watch(ctx, opts)
}
