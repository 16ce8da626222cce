// Package rebrand turns the Calurcap template project into a new app:
// it collects the app name, id and optional backend credentials, rewrites
// them into the template's configuration files and moves the Android
// entry point to the package directory matching the new id.
package rebrand

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/avarnic/rebrand/kit/colorlog"
	"github.com/avarnic/rebrand/kit/prompt"
)

type Options struct {
	// Root is the project root. Defaults to the working directory.
	Root string
	// AnswersFile, when set, replaces the prompts with a dotenv file.
	AnswersFile string
	In          io.Reader
	Out         io.Writer
	Log         *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Root == "" {
		o.Root = "."
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Log == nil {
		o.Log = colorlog.New("rebrand", colorlog.Options{Output: o.Out})
	}
	return o
}

// Report collects the results of one run.
type Report struct {
	Files    []Result
	Activity Relocation
}

// Run collects answers, applies them and prints the completion notice.
func Run(o Options) error {
	o = o.withDefaults()

	var a Answers
	var err error
	if o.AnswersFile != "" {
		a, err = LoadAnswers(o.AnswersFile)
	} else {
		fmt.Fprintln(o.Out)
		fmt.Fprintln(o.Out, "🚀 Calurcap Setup Wizard")
		fmt.Fprintln(o.Out)
		fmt.Fprintln(o.Out, "This script will update your project configuration.")
		fmt.Fprintln(o.Out)
		a, err = Collect(prompt.New(o.In, o.Out))
		fmt.Fprintln(o.Out)
	}
	if err != nil {
		return err
	}

	if _, err := Apply(o.Root, a, o.Log); err != nil {
		return err
	}
	printComplete(o.Out)
	return nil
}

// Apply runs the substitution table and then the activity relocation.
// Relocation is not attempted when a substitution fails.
func Apply(root string, a Answers, log *slog.Logger) (Report, error) {
	var rep Report
	var err error
	rep.Files, err = NewEngine(root, log).Apply(a)
	if err != nil {
		return rep, err
	}
	rep.Activity, err = Relocate(root, a.AppID, log)
	return rep, err
}

func printComplete(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, `✨ Setup complete! You may need to run "npx cap sync" to apply changes to the Android project.`)
	fmt.Fprintln(w)
}
