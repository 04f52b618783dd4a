package media

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "clean name untouched", input: "My Video.mp4", want: "My Video.mp4"},
		{name: "path separators", input: "a/b\\c.mp4", want: "a_b_c.mp4"},
		{name: "header breaking quotes", input: `say "hi".mp3`, want: "say _hi_.mp3"},
		{name: "windows illegal chars", input: "a:b*c?d<e>f|g.mp4", want: "a_b_c_d_e_f_g.mp4"},
		{name: "surrounding whitespace", input: "  trimmed.mp3  ", want: "trimmed.mp3"},
		{name: "empty falls back", input: "", want: "download"},
		{name: "only bad chars falls back to underscores", input: `"`, want: "_"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeFileName(tc.input); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
