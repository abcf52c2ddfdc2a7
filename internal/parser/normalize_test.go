package parser

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace_runs", in: "a  b\n\nc\td", want: "a b c d"},
		{name: "punctuation_stripped", in: "C, (Python) - SQL!", want: "C Python SQL"},
		{name: "punctuation_between_spaces", in: "a . b", want: "a b"},
		{name: "leading_trailing", in: "  hello world  ", want: "hello world"},
		{name: "accented_letters_kept", in: "José García - Café", want: "José García Café"},
		{name: "non_latin_kept", in: "München, Köln & Zürich", want: "München Köln Zürich"},
		{name: "underscore_kept", in: "snake_case_name", want: "snake_case_name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"John Smith\nSoftware Engineer",
		"a . b ,, c\t\td",
		"  mixed:   punctuation... and\nnewlines!  ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
