package mend

import "testing"

func TestCollapseBlankLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "single newline kept", in: "a\nb", want: "a\nb"},
		{name: "one blank line kept", in: "a\n\nb", want: "a\n\nb"},
		{name: "two blank lines kept", in: "a\n\n\nb", want: "a\n\n\nb"},
		{name: "three blank lines collapse", in: "a\n\n\n\nb", want: "a\n\n\nb"},
		{name: "five newlines collapse", in: "a\n\n\n\n\nb", want: "a\n\n\nb"},
		{name: "multiple runs", in: "a\n\n\n\n\nb\n\n\n\n\nc", want: "a\n\n\nb\n\n\nc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CollapseBlankLines(tc.in); got != tc.want {
				t.Fatalf("CollapseBlankLines(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
