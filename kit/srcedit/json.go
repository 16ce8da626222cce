package srcedit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tjson "github.com/tdewolff/parse/v2/json"
)

// SetJSONString sets key in the top-level object of a JSON document to a
// string value. A key that is absent is inserted as the object's first member,
// indented like the member that follows it.
func SetJSONString(src, key, value string) (string, error) {
	quotedKey, err := encodeJSONString(key)
	if err != nil {
		return "", fmt.Errorf("srcedit.SetJSONString: %w", err)
	}
	encoded, err := encodeJSONString(value)
	if err != nil {
		return "", fmt.Errorf("srcedit.SetJSONString: %w", err)
	}

	in := parse.NewInputString(src)
	p := tjson.NewParser(in)

	depth := 0
	objStart := -1
	valStart, valEnd := -1, -1
	keyMatched := false

	for {
		gt, data := p.Next()
		if gt == tjson.ErrorGrammar {
			if err := p.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("srcedit.SetJSONString: invalid JSON: %w", err)
			}
			break
		}

		if keyMatched {
			keyMatched = false
			switch gt {
			case tjson.StringGrammar, tjson.NumberGrammar, tjson.LiteralGrammar:
				valEnd = in.Offset()
				valStart = valEnd - len(data)
			default:
				return "", fmt.Errorf("srcedit.SetJSONString: value of %s is not a scalar", quotedKey)
			}
			continue
		}

		switch gt {
		case tjson.StartObjectGrammar, tjson.StartArrayGrammar:
			depth++
			if depth == 1 && gt == tjson.StartObjectGrammar && objStart < 0 {
				objStart = in.Offset()
			}
		case tjson.EndObjectGrammar, tjson.EndArrayGrammar:
			depth--
		case tjson.StringGrammar:
			// After a key the parser expects the member's value.
			isKey := p.State() == tjson.ObjectValueState
			if isKey && depth == 1 && objStart >= 0 && valStart < 0 && string(data) == quotedKey {
				keyMatched = true
			}
		}
	}

	if depth != 0 {
		return "", fmt.Errorf("srcedit.SetJSONString: invalid JSON: unexpected end of input")
	}
	if objStart < 0 {
		return "", fmt.Errorf("srcedit.SetJSONString: document has no top-level object")
	}
	if valStart >= 0 {
		return splice(src, valStart, valEnd, encoded), nil
	}

	member := quotedKey + ": " + encoded
	rest := src[objStart:]
	trimmed := strings.TrimLeft(rest, " \t\r\n")
	if strings.HasPrefix(trimmed, "}") {
		return splice(src, objStart, objStart, member), nil
	}
	lead := rest[:len(rest)-len(trimmed)]
	return splice(src, objStart, objStart, lead+member+","), nil
}

func encodeJSONString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
