package rebrand

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/avarnic/rebrand/kit/colorlog"
	"github.com/avarnic/rebrand/kit/fsutil"
	"github.com/bmatcuk/doublestar/v4"
)

const (
	javaRoot     = "android/app/src/main/java"
	activityFile = "MainActivity.java"
)

var templatePackageDecl = regexp.MustCompile(`package\s+com\.avarnic\.calurcap\s*;`)

// Relocation reports what happened to the native entry-point file.
type Relocation struct {
	From    string // slash-separated, relative to the project root
	To      string
	Outcome Outcome
	Reason  string
	Err     error
}

// ActivityPath is where MainActivity.java lives for an application id.
func ActivityPath(appID string) string {
	parts := append([]string{javaRoot}, strings.Split(appID, ".")...)
	return path.Join(append(parts, activityFile)...)
}

// Relocate moves MainActivity.java from the template package directory to
// the one matching appID and rewrites its package declaration. A missing
// source file is a warning, not an error.
func Relocate(root, appID string, log *slog.Logger) (Relocation, error) {
	if log == nil {
		log = colorlog.New("rebrand")
	}
	rel := Relocation{From: ActivityPath(DefaultAppID), To: ActivityPath(appID)}
	abs := func(p string) string { return filepath.Join(root, filepath.FromSlash(p)) }
	fail := func(err error) (Relocation, error) {
		rel.Outcome, rel.Err = Failed, err
		return rel, err
	}

	exists, err := fsutil.FileExists(abs(rel.From))
	if err != nil {
		return fail(err)
	}
	if !exists {
		rel.Outcome, rel.Reason = Skipped, ReasonAbsent
		warnMissingActivity(log, root, rel.To)
		return rel, nil
	}
	if rel.From == rel.To {
		log.Debug(activityFile+" already in place", "path", rel.To)
		rel.Outcome, rel.Reason = Skipped, ReasonInPlace
		return rel, nil
	}

	content, perm, err := fsutil.ReadText(abs(rel.From))
	if err != nil {
		return fail(err)
	}
	if loc := templatePackageDecl.FindStringIndex(content); loc != nil {
		content = content[:loc[0]] + "package " + appID + ";" + content[loc[1]:]
	}

	dest := abs(rel.To)
	if err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return fail(err)
	}
	if stale, _ := fsutil.FileExists(dest); stale {
		log.Warn("Overwriting existing "+activityFile, "path", rel.To)
	}
	if err := fsutil.WriteText(dest, content, perm); err != nil {
		return fail(err)
	}
	if err := os.Remove(abs(rel.From)); err != nil {
		return fail(fmt.Errorf("rebrand.Relocate: failed to remove %s: %w", rel.From, err))
	}

	oldDir := filepath.Dir(abs(rel.From))
	if _, err := fsutil.RemoveIfEmpty(oldDir); err == nil {
		_, _ = fsutil.RemoveIfEmpty(filepath.Dir(oldDir))
	}

	rel.Outcome = Applied
	log.Info("Moved " + activityFile + " to " + rel.To)
	return rel, nil
}

func warnMissingActivity(log *slog.Logger, root, dest string) {
	const msg = "⚠️ Could not find " + activityFile + " at default location. Skipping package move."
	found, _ := doublestar.Glob(os.DirFS(root), javaRoot+"/**/"+activityFile, doublestar.WithFilesOnly())
	switch {
	case slices.Contains(found, dest):
		log.Warn(msg, "found", dest, "note", "already at destination")
	case len(found) > 0:
		log.Warn(msg, "found", strings.Join(found, ", "))
	default:
		log.Warn(msg)
	}
}
