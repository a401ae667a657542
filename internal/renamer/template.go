package renamer

import (
	"fmt"
	"strings"
)

// The pattern mode speaks a small closed template language. A template is
// parsed once into a list of literal and placeholder segments and then
// rendered per file, so a bad template fails before any file is touched.
//
// Placeholders:
//
//	{name}           file name without extension
//	{ext}            extension including the leading dot
//	{index}          0-based position in enumeration order
//	{counter}        1-based position in enumeration order
//	{counter:03d}    index/counter accept a zero-padding width specifier
type template struct {
	segments []segment
}

type segKind int

const (
	segLiteral segKind = iota
	segName
	segExt
	segIndex
	segCounter
)

type segment struct {
	kind   segKind
	text   string // literal text, only for segLiteral
	format string // fmt verb, only for segIndex/segCounter
}

func parseTemplate(s string) (*template, error) {
	var segs []segment
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			segs = append(segs, segment{kind: segLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("%w: unclosed '{' at position %d", ErrInvalidTemplate, i)
			}
			seg, err := parsePlaceholder(s[i+1 : i+1+end])
			if err != nil {
				return nil, err
			}
			flush()
			segs = append(segs, seg)
			i += end + 1
		case '}':
			return nil, fmt.Errorf("%w: unmatched '}' at position %d", ErrInvalidTemplate, i)
		default:
			literal.WriteByte(s[i])
		}
	}
	flush()

	return &template{segments: segs}, nil
}

func parsePlaceholder(token string) (segment, error) {
	name, spec, hasSpec := strings.Cut(token, ":")
	switch name {
	case "name", "ext":
		if hasSpec {
			return segment{}, fmt.Errorf("%w: {%s} does not take a format specifier", ErrInvalidTemplate, name)
		}
		if name == "name" {
			return segment{kind: segName}, nil
		}
		return segment{kind: segExt}, nil
	case "index", "counter":
		format := "%d"
		if hasSpec {
			parsed, err := parseWidthSpec(spec)
			if err != nil {
				return segment{}, fmt.Errorf("%w: bad specifier %q in {%s}", ErrInvalidTemplate, spec, token)
			}
			format = parsed
		}
		kind := segIndex
		if name == "counter" {
			kind = segCounter
		}
		return segment{kind: kind, format: format}, nil
	default:
		return segment{}, fmt.Errorf("%w: unknown placeholder {%s}", ErrInvalidTemplate, token)
	}
}

// parseWidthSpec accepts integer specifiers of the form "[0]Nd" (for example
// "03d" or "4d") and translates them to the equivalent fmt verb.
func parseWidthSpec(spec string) (string, error) {
	width, ok := strings.CutSuffix(spec, "d")
	if !ok {
		return "", fmt.Errorf("specifier must end in 'd'")
	}
	for _, r := range width {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("width must be numeric")
		}
	}
	return "%" + width + "d", nil
}

// render produces the new file name for the entry at the given 0-based
// enumeration position.
func (t *template) render(name string, index int) string {
	stem, ext := splitExt(name)
	var b strings.Builder
	for _, seg := range t.segments {
		switch seg.kind {
		case segLiteral:
			b.WriteString(seg.text)
		case segName:
			b.WriteString(stem)
		case segExt:
			b.WriteString(ext)
		case segIndex:
			fmt.Fprintf(&b, seg.format, index)
		case segCounter:
			fmt.Fprintf(&b, seg.format, index+1)
		}
	}
	return b.String()
}
