package style

import (
	"strings"
)

// The transform flip rewrites CSS function lists structurally: tokenize
// the list, negate the relevant arguments, re-serialize. Everything the
// flip does not target is carried through byte-for-byte.

type argSpan struct {
	start, end int
}

type cssFunction struct {
	name string
	raw  string
	args []argSpan
}

func (f cssFunction) arg(i int) string {
	span := f.args[i]
	return f.raw[span.start:span.end]
}

// parseFunctionList splits a CSS value like
// "translateX(10px) rotate(3deg)" into its function calls, keeping the
// original text of each call and the separators between them. ok is
// false when the value is not a well-formed function list.
func parseFunctionList(s string) (fns []cssFunction, seps []string, ok bool) {
	i := 0
	for i < len(s) {
		sepStart := i
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			seps = append(seps, s[sepStart:])
			break
		}
		seps = append(seps, s[sepStart:i])

		nameStart := i
		for i < len(s) && isIdentByte(s[i]) {
			i++
		}
		if i == nameStart || i >= len(s) || s[i] != '(' {
			return nil, nil, false
		}
		name := s[nameStart:i]

		openIdx := i
		depth := 0
		closeIdx := -1
		for j := openIdx; j < len(s); j++ {
			switch s[j] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					closeIdx = j
				}
			}
			if closeIdx >= 0 {
				break
			}
		}
		if closeIdx < 0 {
			return nil, nil, false
		}

		raw := s[nameStart : closeIdx+1]
		fn := cssFunction{
			name: name,
			raw:  raw,
			args: splitArgs(raw, openIdx-nameStart+1, closeIdx-nameStart),
		}
		fns = append(fns, fn)
		i = closeIdx + 1
	}

	if len(fns) == 0 {
		return nil, nil, false
	}
	// Serialization expects one trailing separator slot.
	if len(seps) == len(fns) {
		seps = append(seps, "")
	}
	return fns, seps, true
}

func isIdentByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-' || b == '_'
}

// splitArgs records the trimmed spans of the top-level comma-separated
// arguments between the open and close offsets of raw.
func splitArgs(raw string, open, close int) []argSpan {
	var spans []argSpan
	depth := 0
	start := open
	flush := func(end int) {
		for start < end && (raw[start] == ' ' || raw[start] == '\t') {
			start++
		}
		trimmed := end
		for trimmed > start && (raw[trimmed-1] == ' ' || raw[trimmed-1] == '\t') {
			trimmed--
		}
		if trimmed > start {
			spans = append(spans, argSpan{start: start, end: trimmed})
		}
	}
	for i := open; i < close; i++ {
		switch raw[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(close)
	return spans
}

func serializeFunctionList(fns []cssFunction, seps []string) string {
	var b strings.Builder
	for i, fn := range fns {
		b.WriteString(seps[i])
		b.WriteString(fn.raw)
	}
	b.WriteString(seps[len(fns)])
	return b.String()
}

// negateArgs flips the sign of the numeric prefix of the given argument
// indices. The whole function is left untouched when any targeted
// argument is missing or has no parseable numeric prefix.
func negateArgs(fn *cssFunction, idxs ...int) {
	type splice struct {
		span argSpan
		text string
	}
	splices := make([]splice, 0, len(idxs))
	for _, idx := range idxs {
		if idx >= len(fn.args) {
			return
		}
		negated, ok := negateNumericPrefix(fn.arg(idx))
		if !ok {
			return
		}
		splices = append(splices, splice{span: fn.args[idx], text: negated})
	}

	for i := len(splices) - 1; i >= 0; i-- {
		sp := splices[i]
		fn.raw = fn.raw[:sp.span.start] + sp.text + fn.raw[sp.span.end:]
	}
	fn.args = splitArgs(fn.raw, strings.IndexByte(fn.raw, '(')+1, len(fn.raw)-1)
}

// negateNumericPrefix flips the sign of the leading number in an
// argument like "10px", "-1.5em", or "+3deg", keeping the unit suffix.
func negateNumericPrefix(arg string) (string, bool) {
	rest := arg
	sign := ""
	if len(rest) > 0 && (rest[0] == '-' || rest[0] == '+') {
		sign = rest[:1]
		rest = rest[1:]
	}

	digits := 0
	for digits < len(rest) && (rest[digits] >= '0' && rest[digits] <= '9' || rest[digits] == '.') {
		digits++
	}
	numeric := rest[:digits]
	if numeric == "" || numeric == "." {
		return "", false
	}

	if sign == "-" {
		return numeric + rest[digits:], true
	}
	return "-" + numeric + rest[digits:], true
}

// flipTransform mirrors a transform value for right-to-left layout:
// the first argument of translate/translate3d/translateX changes sign,
// and both angles of skew (or the single angle of skewX/skewY) change
// sign. Unknown functions and malformed values pass through unchanged.
func flipTransform(value string) string {
	fns, seps, ok := parseFunctionList(value)
	if !ok {
		return value
	}

	for i := range fns {
		switch fns[i].name {
		case "translate", "translate3d", "translateX":
			negateArgs(&fns[i], 0)
		case "skew":
			if len(fns[i].args) > 1 {
				negateArgs(&fns[i], 0, 1)
			} else {
				negateArgs(&fns[i], 0)
			}
		case "skewX", "skewY":
			negateArgs(&fns[i], 0)
		}
	}

	return serializeFunctionList(fns, seps)
}

// flipTransformOrigin swaps the horizontal keyword of a
// transform-origin value. Values naming neither side pass through.
func flipTransformOrigin(value string) string {
	if strings.Contains(value, "right") {
		return strings.ReplaceAll(value, "right", "left")
	}
	if strings.Contains(value, "left") {
		return strings.ReplaceAll(value, "left", "right")
	}
	return value
}
