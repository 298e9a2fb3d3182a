package mend

import "testing"

func TestPromoteHeadings(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain numbered title", in: "1. Summary", want: "## 1. Summary"},
		{name: "title with trailing colon", in: "2. Key Findings:", want: "## 2. Key Findings"},
		{name: "bold wrapped title", in: "**3. Results**", want: "## 3. Results"},
		{name: "bold wrapped title with colon", in: "**4. Next Steps:**", want: "## 4. Next Steps"},
		{
			name: "sentence continuation rejected",
			in:   "1. This is just a long explanatory sentence. it continues.",
			want: "1. This is just a long explanatory sentence. it continues.",
		},
		{name: "lowercase start rejected", in: "1. first item in a list", want: "1. first item in a list"},
		{
			name: "overlong title rejected",
			in:   "1. " + "Aaaaaaaaaa Bbbbbbbbbb Cccccccccc Dddddddddd Eeeeeeeeee Ffffffffff Gggggggggg Hhhhhhhhhh",
			want: "1. " + "Aaaaaaaaaa Bbbbbbbbbb Cccccccccc Dddddddddd Eeeeeeeeee Ffffffffff Gggggggggg Hhhhhhhhhh",
		},
		{name: "existing heading untouched", in: "## 1. Summary", want: "## 1. Summary"},
		{name: "unnumbered line untouched", in: "Summary", want: "Summary"},
		// Known ambiguity: a short capitalized numbered sentence without a
		// mid-sentence period is indistinguishable from a title and gets
		// promoted. Accepted false positive.
		{name: "short capitalized sentence promoted", in: "1. Ship it today", want: "## 1. Ship it today"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PromoteHeadings(tc.in); got != tc.want {
				t.Fatalf("PromoteHeadings(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPromoteHeadings_SkipsCodeFences(t *testing.T) {
	in := "```\n1. Not A Heading\n```"
	if got := PromoteHeadings(in); got != in {
		t.Fatalf("PromoteHeadings rewrote fenced content: %q", got)
	}
}
