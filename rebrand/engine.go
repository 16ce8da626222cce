package rebrand

import (
	"log/slog"
	"path/filepath"

	"github.com/avarnic/rebrand/kit/colorlog"
	"github.com/avarnic/rebrand/kit/errutil"
	"github.com/avarnic/rebrand/kit/fsutil"
)

// Engine applies a substitution table to the files of one project directory.
type Engine struct {
	root    string
	log     *slog.Logger
	targets []Target
}

// NewEngine returns an Engine for the template table rooted at root.
// A nil log falls back to a colorlog logger.
func NewEngine(root string, log *slog.Logger) *Engine {
	if log == nil {
		log = colorlog.New("rebrand")
	}
	return &Engine{root: root, log: log, targets: Table()}
}

// Apply processes every target in order and stops at the first failure,
// returning the results gathered so far together with its error.
func (e *Engine) Apply(a Answers) ([]Result, error) {
	results := make([]Result, 0, len(e.targets))
	for _, t := range e.targets {
		r := e.applyTarget(t, a)
		results = append(results, r)
		if r.Outcome == Failed {
			return results, r.Err
		}
	}
	return results, nil
}

func (e *Engine) applyTarget(t Target, a Answers) Result {
	res := Result{Target: t.Path}
	path := filepath.Join(e.root, filepath.FromSlash(t.Path))

	exists, err := fsutil.FileExists(path)
	if err != nil {
		return failed(res, err)
	}
	if !exists {
		e.log.Debug("Skipped "+t.Path, "reason", ReasonAbsent)
		res.Outcome, res.Reason = Skipped, ReasonAbsent
		return res
	}

	var rules []Rule
	for _, r := range t.Rules {
		if r.active(a) {
			rules = append(rules, r)
		}
	}
	if len(rules) == 0 {
		e.log.Debug("Skipped "+t.Path, "reason", ReasonNoAnswers)
		res.Outcome, res.Reason = Skipped, ReasonNoAnswers
		return res
	}

	content, perm, err := fsutil.ReadText(path)
	if err != nil {
		return failed(res, err)
	}

	out := content
	for _, r := range rules {
		out, err = r.Edit(out, a)
		if err != nil {
			return failed(res, errutil.Maybe("rebrand: "+t.Path+" ("+r.Anchor+")", err))
		}
	}

	res.Changed = out != content
	if res.Changed && t.Validate != nil {
		if err := t.Validate(out); err != nil && t.Validate(content) == nil {
			return failed(res, errutil.Maybe("rebrand: edit left "+t.Path+" invalid", err))
		}
	}
	if res.Changed {
		if err := fsutil.WriteText(path, out, perm); err != nil {
			return failed(res, err)
		}
	}

	res.Outcome = Applied
	e.log.Info("Updated "+t.Path, "changed", res.Changed)
	return res
}
