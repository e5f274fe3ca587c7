package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

const jsonIndent = "  "

// PrintJSON pretty-prints a JSON document with syntax coloring, keeping
// object keys in the order the server sent them.
func PrintJSON(data []byte) error {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, data); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := Output.Write(buf.Bytes())
	return err
}

// WriteJSON writes the colorized, indented form of data to w.
func WriteJSON(w io.Writer, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	p := &jsonPrinter{w: w, dec: dec}
	if err := p.value(0); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid JSON: trailing data after top-level value")
	}
	return p.err
}

type jsonPrinter struct {
	w   io.Writer
	dec *json.Decoder
	err error
}

func (p *jsonPrinter) print(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *jsonPrinter) newline(depth int) {
	p.print("\n" + strings.Repeat(jsonIndent, depth))
}

func (p *jsonPrinter) value(depth int) error {
	tok, err := p.dec.Token()
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.container(depth, '}', true)
		case '[':
			return p.container(depth, ']', false)
		default:
			return fmt.Errorf("invalid JSON: unexpected %q", rune(t))
		}
	default:
		p.print(formatScalar(t))
	}
	return nil
}

func (p *jsonPrinter) container(depth int, closer json.Delim, object bool) error {
	open, end := "[", "]"
	if object {
		open, end = "{", "}"
	}

	p.print(open)
	first := true
	for p.dec.More() {
		if !first {
			p.print(",")
		}
		first = false
		p.newline(depth + 1)

		if object {
			tok, err := p.dec.Token()
			if err != nil {
				return fmt.Errorf("invalid JSON: %w", err)
			}
			key, ok := tok.(string)
			if !ok {
				return fmt.Errorf("invalid JSON: object key is %T", tok)
			}
			p.print(Cyan(quote(key)) + ": ")
		}
		if err := p.value(depth + 1); err != nil {
			return err
		}
	}

	tok, err := p.dec.Token()
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if tok != closer {
		return fmt.Errorf("invalid JSON: expected %q", rune(closer))
	}
	if !first {
		p.newline(depth)
	}
	p.print(end)
	return nil
}

func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return Dim("null")
	case bool:
		if t {
			return Green("true")
		}
		return Red("false")
	case json.Number:
		return Cyan(t.String())
	case float64:
		return Cyan(fmt.Sprint(t))
	case int, int64:
		return Cyan(fmt.Sprint(t))
	case string:
		return Yellow(quote(t))
	default:
		return fmt.Sprint(t)
	}
}

// FormatValue renders a decoded JSON value on a single line with colors.
// Object keys are sorted.
func FormatValue(v any) string {
	switch t := v.(type) {
	case []any:
		items := make([]string, len(t))
		for i, item := range t {
			items[i] = FormatValue(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = Cyan(k) + ": " + FormatValue(t[k])
		}
		return "{" + strings.Join(items, ", ") + "}"
	default:
		return formatScalar(t)
	}
}

// quote returns the JSON encoding of s without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Sprintf("%q", s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
