package rebrand

import (
	"regexp"
	"strings"

	"github.com/avarnic/rebrand/kit/srcedit"
)

// Rule is one substitution inside a target file.
type Rule struct {
	Anchor string
	// When reports whether the rule applies to a set of answers.
	// A nil When always applies.
	When func(Answers) bool
	Edit func(content string, a Answers) (string, error)
}

func (r Rule) active(a Answers) bool {
	return r.When == nil || r.When(a)
}

// Target is a template file and the rules applied to it, in order.
type Target struct {
	Path  string // slash-separated, relative to the project root
	Rules []Rule
	// Validate, when set, checks the edited content. The target fails
	// only if the content was valid before the edit.
	Validate func(content string) error
}

const (
	PathPackageJSON     = "package.json"
	PathCapacitorConfig = "capacitor.config.ts"
	PathBuildGradle     = "android/app/build.gradle"
	PathSupabaseClient  = "src/lib/supabaseClient.ts"
	PathStringsXML      = "android/app/src/main/res/values/strings.xml"
	PathLandingPage     = "src/routes/+page.svelte"
)

// Table returns the fixed substitution table for the template project.
func Table() []Target {
	return []Target{
		{
			Path: PathPackageJSON,
			Rules: []Rule{{
				Anchor: "name",
				Edit: func(c string, a Answers) (string, error) {
					return srcedit.SetJSONString(c, "name", a.PackageName())
				},
			}},
		},
		{
			Path: PathCapacitorConfig,
			Rules: []Rule{
				tsProperty("appId", nil, func(a Answers) string { return a.AppID }),
				tsProperty("appName", nil, func(a Answers) string { return a.AppName }),
				tsProperty("serverClientId", hasGoogleClientID, func(a Answers) string { return a.GoogleClientID }),
			},
			Validate: srcedit.ValidateTS,
		},
		{
			Path: PathBuildGradle,
			Rules: []Rule{
				gradleString("namespace"),
				gradleString("applicationId"),
			},
		},
		{
			Path: PathSupabaseClient,
			Rules: []Rule{
				tsFallback("VITE_SUPABASE_URL", hasSupabaseURL, func(a Answers) string { return a.SupabaseURL }),
				tsFallback("VITE_SUPABASE_ANON_KEY", hasSupabaseKey, func(a Answers) string { return a.SupabaseAnonKey }),
			},
			Validate: srcedit.ValidateTS,
		},
		{
			Path: PathStringsXML,
			Rules: []Rule{
				androidString("app_name"),
				androidString("title_activity_main"),
			},
		},
		{
			Path: PathLandingPage,
			Rules: []Rule{{
				Anchor: brandToken,
				Edit: func(c string, a Answers) (string, error) {
					return replaceBrand(c, a.AppName), nil
				},
			}},
		},
	}
}

func hasGoogleClientID(a Answers) bool { return a.GoogleClientID != "" }
func hasSupabaseURL(a Answers) bool    { return a.SupabaseURL != "" }
func hasSupabaseKey(a Answers) bool    { return a.SupabaseAnonKey != "" }

func tsProperty(key string, when func(Answers) bool, value func(Answers) string) Rule {
	return Rule{
		Anchor: key,
		When:   when,
		Edit: func(c string, a Answers) (string, error) {
			out, _ := srcedit.SetPropertyString(c, key, value(a))
			return out, nil
		},
	}
}

func tsFallback(name string, when func(Answers) bool, value func(Answers) string) Rule {
	return Rule{
		Anchor: name,
		When:   when,
		Edit: func(c string, a Answers) (string, error) {
			out, _ := srcedit.SetFallbackString(c, name, value(a))
			return out, nil
		},
	}
}

func gradleString(key string) Rule {
	return Rule{
		Anchor: key,
		Edit: func(c string, a Answers) (string, error) {
			out, _ := srcedit.SetGradleString(c, key, a.AppID)
			return out, nil
		},
	}
}

func androidString(name string) Rule {
	return Rule{
		Anchor: name,
		Edit: func(c string, a Answers) (string, error) {
			out, _, err := srcedit.SetAndroidString(c, name, a.AppName)
			return out, err
		},
	}
}

const brandToken = "Calurcap"

var brandTagText = regexp.MustCompile(`^>\s*` + brandToken + `\s*<`)

// replaceBrand swaps the template brand in page markup: every "Calurcap."
// and every element text consisting only of "Calurcap". Text that already
// reads as the new name is copied as is so the edit is idempotent.
func replaceBrand(content, appName string) string {
	const dotted = brandToken + "."
	tagged := ">" + appName + "<"
	// Only a name containing the brand can be rewritten by a later pass.
	guard := strings.Contains(appName, brandToken)

	var b strings.Builder
	for i := 0; i < len(content); {
		rest := content[i:]
		switch {
		case strings.HasPrefix(rest, tagged):
			b.WriteString(tagged)
			i += len(tagged)
		case rest[0] == '>' && brandTagText.MatchString(rest):
			b.WriteString(tagged)
			i += len(brandTagText.FindString(rest))
		case guard && strings.HasPrefix(rest, appName):
			b.WriteString(appName)
			i += len(appName)
		case strings.HasPrefix(rest, dotted):
			b.WriteString(appName + ".")
			i += len(dotted)
		default:
			b.WriteByte(content[i])
			i++
		}
	}
	return b.String()
}
