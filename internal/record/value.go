package record

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindText Kind = iota
	KindNumber
)

// Value is either a floating point number or a piece of text. The variant is
// fixed when the value is created.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a textual Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// ParseValue returns a Number if raw parses as a decimal float once
// surrounding whitespace is ignored, and raw itself as Text otherwise.
// Out-of-range magnitudes become infinities. Underscores are accepted only
// between digits, and hexadecimal forms stay Text.
func ParseValue(raw string) Value {
	s, ok := decimalLiteral(strings.TrimSpace(raw))
	if !ok {
		return Text(raw)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return Number(f)
	}
	return Text(raw)
}

// decimalLiteral rejects hexadecimal input and strips digit-separating
// underscores, which strconv only allows after a base prefix.
func decimalLiteral(s string) (string, bool) {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return "", false
	}
	if !strings.Contains(s, "_") {
		return s, true
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool { return v.kind == KindNumber }

// Float returns the numeric payload and whether v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Text returns the textual payload and whether v is text.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// String renders v the way it is written to a CSV cell.
func (v Value) String() string {
	if v.kind == KindText {
		return v.text
	}
	return formatFloat(v.num)
}

// formatFloat renders f using the shortest representation that round-trips,
// switching to exponent notation outside [1e-4, 1e16). Integral values keep
// a trailing ".0" so they remain recognisable as floats.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
