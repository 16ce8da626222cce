package rebrand

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultAppName = "Calurcap"
	DefaultAppID   = "com.avarnic.calurcap"
)

// Prompt labels, in the order they are asked.
const (
	labelAppName        = "Enter App Name (e.g., My App): "
	labelAppID          = "Enter App ID (e.g., com.example.app): "
	labelSupabaseURL    = "Enter Supabase URL (optional): "
	labelSupabaseKey    = "Enter Supabase Anon Key (optional): "
	labelGoogleClientID = "Enter Google Web Client ID (optional): "
)

// Answers file keys.
const (
	EnvAppName         = "REBRAND_APP_NAME"
	EnvAppID           = "REBRAND_APP_ID"
	EnvSupabaseURL     = "REBRAND_SUPABASE_URL"
	EnvSupabaseAnonKey = "REBRAND_SUPABASE_ANON_KEY"
	EnvGoogleClientID  = "REBRAND_GOOGLE_CLIENT_ID"
)

// Answers holds the values a project is re-branded with. Blank backend
// fields mean "leave the existing value alone".
type Answers struct {
	AppName         string
	AppID           string
	SupabaseURL     string
	SupabaseAnonKey string
	GoogleClientID  string
}

func (a Answers) withDefaults() Answers {
	if a.AppName == "" {
		a.AppName = DefaultAppName
	}
	if a.AppID == "" {
		a.AppID = DefaultAppID
	}
	return a
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// PackageName is the manifest name derived from the app name:
// lower-cased, with each run of whitespace replaced by a hyphen.
func (a Answers) PackageName() string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(a.AppName), "-")
}

// Asker is satisfied by *prompt.Prompter.
type Asker interface {
	Ask(label string) (string, error)
	AskSecret(label string) (string, error)
}

// Collect asks the five setup questions in order and applies the defaults
// for a blank app name or app id.
func Collect(q Asker) (Answers, error) {
	var a Answers
	steps := []struct {
		label  string
		secret bool
		dest   *string
	}{
		{labelAppName, false, &a.AppName},
		{labelAppID, false, &a.AppID},
		{labelSupabaseURL, false, &a.SupabaseURL},
		{labelSupabaseKey, true, &a.SupabaseAnonKey},
		{labelGoogleClientID, false, &a.GoogleClientID},
	}
	for _, s := range steps {
		ask := q.Ask
		if s.secret {
			ask = q.AskSecret
		}
		v, err := ask(s.label)
		if err != nil {
			return Answers{}, fmt.Errorf("rebrand.Collect: %w", err)
		}
		*s.dest = v
	}
	return a.withDefaults(), nil
}

// LoadAnswers reads answers from a dotenv file. Missing keys count as
// blank answers.
func LoadAnswers(path string) (Answers, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return Answers{}, fmt.Errorf("rebrand.LoadAnswers: failed to read %s: %w", path, err)
	}
	a := Answers{
		AppName:         env[EnvAppName],
		AppID:           env[EnvAppID],
		SupabaseURL:     env[EnvSupabaseURL],
		SupabaseAnonKey: env[EnvSupabaseAnonKey],
		GoogleClientID:  env[EnvGoogleClientID],
	}
	return a.withDefaults(), nil
}
