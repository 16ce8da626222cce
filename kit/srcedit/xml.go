package srcedit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"
)

// SetAndroidString replaces the content of the first <string name="..."> element
// of an Android resource file with value, escaped for aapt. Markup nested in the
// element is replaced along with its text. Reports whether the element was found.
func SetAndroidString(src, name, value string) (string, bool, error) {
	in := parse.NewInputString(src)
	l := xml.NewLexer(in)

	inStringTag := false
	nameMatched := false
	contentStart := -1
	nested := 0

	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return src, false, fmt.Errorf("srcedit.SetAndroidString: invalid XML: %w", err)
			}
			return src, false, nil
		case xml.StartTagToken:
			if contentStart >= 0 {
				nested++
				continue
			}
			inStringTag = string(l.Text()) == "string"
			nameMatched = false
		case xml.StartTagPIToken:
			inStringTag = false
		case xml.AttributeToken:
			if inStringTag && string(l.Text()) == "name" && unquoteAttr(l.AttrVal()) == name {
				nameMatched = true
			}
		case xml.StartTagCloseToken:
			if contentStart < 0 && inStringTag && nameMatched {
				contentStart = in.Offset()
			}
			inStringTag = false
		case xml.StartTagCloseVoidToken:
			if contentStart >= 0 && nested > 0 {
				nested--
			}
			inStringTag = false
		case xml.EndTagToken:
			if contentStart < 0 {
				continue
			}
			if nested > 0 {
				nested--
				continue
			}
			contentEnd := in.Offset() - len(data)
			return splice(src, contentStart, contentEnd, escapeAndroidText(value)), true, nil
		}
	}
}

func unquoteAttr(b []byte) string {
	s := string(b)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// escapeAndroidText escapes s for use as the text of a string resource.
// Besides XML escaping, aapt requires quotes and backslashes to be escaped
// and a leading @ or ? to be escaped so it is not read as a reference.
func escapeAndroidText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '@', '?':
			if i == 0 {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
