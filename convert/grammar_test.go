package convert

import "testing"

// The matchers are full-string: embedded matches must not count.
func TestGrammarAnchoring(t *testing.T) {
	tests := []struct {
		name string
		rx   interface{ MatchString(string) bool }
		yes  []string
		no   []string
	}{
		{
			"decimal", decimalText,
			[]string{"0", "42", "+42", "-42", "007"},
			[]string{"", "x42", "42x", "4 2", "4.2", "0x2a", "--1"},
		},
		{
			"octal", octalText,
			[]string{"0o7", "0o052"},
			[]string{"0o", "0o8", "-0o7", "+0o7", "o7", "0O7"},
		},
		{
			"hex", hexText,
			[]string{"0x0", "0x2a", "0xDEADbeef"},
			[]string{"0x", "0xg", "-0x2a", "+0x2a", "x2a", "0X2a"},
		},
		{
			"float", floatText,
			[]string{"1", "1.", "1.5", ".5", "-1.5e3", "+.5E-2", "2e10"},
			[]string{"", ".", "1..", "e3", ".e3", "1e", "1e+", "0x2a", "1.5 "},
		},
		{
			"inf", infText,
			[]string{".inf", ".Inf", ".INF", "-.inf", "+.INF"},
			[]string{"inf", ".iNf", "-inf", "..inf", ".inf "},
		},
		{
			"nan", nanText,
			[]string{".nan", ".NaN", ".NAN"},
			[]string{"nan", "-.nan", "+.nan", ".nAn"},
		},
		{
			"true", trueText,
			[]string{"true", "True", "TRUE"},
			[]string{"tRUE", "TRue", "true ", "truthy"},
		},
		{
			"false", falseText,
			[]string{"false", "False", "FALSE"},
			[]string{"fALSE", "FALSe", "falsey"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.yes {
				if !tt.rx.MatchString(s) {
					t.Errorf("%q did not match", s)
				}
			}
			for _, s := range tt.no {
				if tt.rx.MatchString(s) {
					t.Errorf("%q matched", s)
				}
			}
		})
	}
}
