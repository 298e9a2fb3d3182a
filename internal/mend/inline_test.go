package mend

import "testing"

func TestRepairInline_StrongEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "unterminated run gets closed", in: "**bold text", want: "**bold text**"},
		{name: "balanced run untouched", in: "**bold** and plain", want: "**bold** and plain"},
		{name: "triple both sides", in: "***text***", want: "**text**"},
		{name: "triple open with trailing colon", in: "***Important:**", want: "**Important:**"},
		{name: "triple close", in: "**text***", want: "**text**"},
		{name: "leading inner space", in: "** text**", want: "**text**"},
		{name: "trailing inner space", in: "**text **", want: "**text**"},
		{name: "missing space both sides", in: "text**Bold**more", want: "text **Bold** more"},
		{name: "missing space before only", in: "text**Bold** more", want: "text **Bold** more"},
		{name: "per line balancing", in: "**one\nplain\n**two", want: "**one**\nplain\n**two**"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RepairInline(tc.in); got != tc.want {
				t.Fatalf("RepairInline(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRepairInline_MathNotation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "text wrapper in inline math", in: `The result is $\text{success}$.`, want: "The result is success."},
		{name: "bare text wrapper", in: `\text{plain words}`, want: "plain words"},
		{name: "fraction", in: `ratio \frac{a}{b} here`, want: "ratio (a/b) here"},
		{name: "single argument passes through", in: `\sqrt{x}`, want: `\sqrt{x}`},
		{name: "display math delimiters dropped", in: "$$E = mc^2$$", want: "E = mc^2"},
		{name: "inline math delimiters dropped", in: "value $n+1$ items", want: "value n+1 items"},
		{name: "lone dollar kept", in: "costs $5", want: "costs $5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RepairInline(tc.in); got != tc.want {
				t.Fatalf("RepairInline(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRepairInline_ColonRepairs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "inline list split", in: "Notes:1.First", want: "Notes:\n1. First"},
		{name: "colon glued to uppercase", in: "Output:A result", want: "Output: A result"},
		{name: "colon with space untouched", in: "Output: A result", want: "Output: A result"},
		{name: "colon before lowercase untouched", in: "see:also", want: "see:also"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RepairInline(tc.in); got != tc.want {
				t.Fatalf("RepairInline(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRepairInline_SkipsCodeFences(t *testing.T) {
	in := "before **bold\n```\n**raw $x$ stays\n```\nafter **bold"
	want := "before **bold**\n```\n**raw $x$ stays\n```\nafter **bold**"
	if got := RepairInline(in); got != want {
		t.Fatalf("RepairInline fence handling = %q, want %q", got, want)
	}
}
