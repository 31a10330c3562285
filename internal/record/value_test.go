package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		isNumber bool
		num      float64
		text     string
	}{
		{name: "integer", raw: "42", isNumber: true, num: 42},
		{name: "decimal", raw: "1.25", isNumber: true, num: 1.25},
		{name: "exponent", raw: "3e-2", isNumber: true, num: 0.03},
		{name: "padded number", raw: " 7.5 ", isNumber: true, num: 7.5},
		{name: "word", raw: "hello", text: "hello"},
		{name: "padded word is kept verbatim", raw: " fpga ", text: " fpga "},
		{name: "empty", raw: "", text: ""},
		{name: "version-like", raw: "1.2.3", text: "1.2.3"},
		{name: "digit separators", raw: "1_000", isNumber: true, num: 1000},
		{name: "separated fraction", raw: "1_0.2_5", isNumber: true, num: 10.25},
		{name: "leading separator", raw: "_1000", text: "_1000"},
		{name: "doubled separator", raw: "1__000", text: "1__000"},
		{name: "hex float", raw: "0x1p3", text: "0x1p3"},
		{name: "signed hex", raw: "-0X10", text: "-0X10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := ParseValue(tc.raw)
			require.Equal(t, tc.isNumber, v.IsNumber())
			if tc.isNumber {
				f, ok := v.Float()
				require.True(t, ok)
				assert.InDelta(t, tc.num, f, 1e-12)
				return
			}
			s, ok := v.Text()
			require.True(t, ok)
			assert.Equal(t, tc.text, s)
		})
	}
}

func TestParseValue_Overflow(t *testing.T) {
	t.Parallel()

	pos, ok := ParseValue("1e400").Float()
	require.True(t, ok)
	assert.True(t, math.IsInf(pos, 1))

	neg, ok := ParseValue("-1e400").Float()
	require.True(t, ok)
	assert.True(t, math.IsInf(neg, -1))
	assert.Equal(t, "-inf", ParseValue("-1e400").String())
}

func TestValueString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   Value
		want string
	}{
		{Number(3), "3.0"},
		{Number(1.5), "1.5"},
		{Number(-0.25), "-0.25"},
		{Number(123456789), "123456789.0"},
		{Number(0.0001), "0.0001"},
		{Number(0.00001), "1e-05"},
		{Number(1e16), "1e+16"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{Number(math.NaN()), "nan"},
		{Text("a,b"), "a,b"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.in.String())
	}
}
