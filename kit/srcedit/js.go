package srcedit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

type jsToken struct {
	tt         js.TokenType
	data       []byte
	start, end int
}

// lexJS returns the significant tokens of JavaScript or TypeScript source with
// their byte offsets. Characters the JS lexer does not know (TS decorators,
// for instance) are dropped; the tokens around them keep correct offsets.
func lexJS(src string) []jsToken {
	in := parse.NewInputString(src)
	l := js.NewLexer(in)

	var toks []jsToken
	for {
		tt, data := l.Next()
		switch tt {
		case js.ErrorToken:
			if len(data) == 0 {
				return toks
			}
			continue
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}
		end := in.Offset()
		toks = append(toks, jsToken{tt: tt, data: data, start: end - len(data), end: end})
	}
}

// SetPropertyString replaces the string literal of the first `key: '...'`
// property in JavaScript or TypeScript source. Quoted keys match too.
// The literal keeps its quote style. Reports whether a property was found.
func SetPropertyString(src, key, value string) (string, bool) {
	return setStringAfter(src, key, value, js.ColonToken)
}

// SetFallbackString replaces the string literal of the first `name || '...'`
// or `name ?? '...'` expression, where name is the last segment of the
// left-hand side (`import.meta.env.NAME || '...'` matches NAME).
func SetFallbackString(src, name, value string) (string, bool) {
	return setStringAfter(src, name, value, js.OrToken, js.NullishToken)
}

func setStringAfter(src, name, value string, ops ...js.TokenType) (string, bool) {
	toks := lexJS(src)
	for i := 0; i+2 < len(toks); i++ {
		if !tokenNames(toks[i], name) {
			continue
		}
		if !slices.Contains(ops, toks[i+1].tt) || toks[i+2].tt != js.StringToken {
			continue
		}
		lit := toks[i+2]
		return splice(src, lit.start, lit.end, quoteJS(value, lit.data[0])), true
	}
	return src, false
}

func tokenNames(tok jsToken, name string) bool {
	if js.IsIdentifierName(tok.tt) {
		return string(tok.data) == name
	}
	if tok.tt == js.StringToken && len(tok.data) >= 2 {
		return string(tok.data[1:len(tok.data)-1]) == name
	}
	return false
}

func quoteJS(s string, quote byte) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		case rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// ValidateTS reports the first syntax error esbuild finds in TypeScript source.
func ValidateTS(src string) error {
	result := api.Transform(src, api.TransformOptions{
		Loader:   api.LoaderTS,
		LogLevel: api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}
	msg := result.Errors[0]
	if msg.Location != nil {
		return fmt.Errorf("srcedit.ValidateTS: %d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text)
	}
	return fmt.Errorf("srcedit.ValidateTS: %s", msg.Text)
}
