package srcedit

import (
	"regexp"
	"strings"
)

// SetGradleString replaces the quoted value of the first `key "value"` or
// `key = "value"` statement that starts a line of a Gradle build script.
// Gradle's Groovy dialect has no tokenizer in our stack, so the statement is
// matched by a line-anchored pattern that understands backslash escapes.
func SetGradleString(src, key, value string) (string, bool) {
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) +
		`(?:[ \t]*=[ \t]*|[ \t]+)(?:"((?:[^"\\\r\n]|\\.)*)"|'((?:[^'\\\r\n]|\\.)*)')`)
	loc := re.FindStringSubmatchIndex(src)
	if loc == nil {
		return src, false
	}
	start, end, quote := loc[2], loc[3], byte('"')
	if start < 0 {
		start, end, quote = loc[4], loc[5], '\''
	}
	return splice(src, start, end, escapeGroovy(value, quote)), true
}

func escapeGroovy(s string, quote byte) string {
	r := strings.NewReplacer(`\`, `\\`, string(quote), `\`+string(quote), "\n", `\n`, "$", `\$`)
	if quote == '\'' {
		r = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	}
	return r.Replace(s)
}
