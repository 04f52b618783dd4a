package ytdlp

import "testing"

func TestDeclaredPath(t *testing.T) {
	cases := []struct {
		name string
		res  *Result
		want string
	}{
		{
			name: "nil result",
			res:  nil,
			want: "",
		},
		{
			name: "requested downloads wins",
			res: &Result{
				Filename:           "/d/top.mp4",
				RequestedDownloads: []DownloadedFile{{Filepath: "/d/first.mp4"}, {Filepath: "/d/second.mp4"}},
			},
			want: "/d/first.mp4",
		},
		{
			name: "empty entries skipped",
			res: &Result{
				RequestedDownloads: []DownloadedFile{{}, {Filepath: "/d/real.mp4"}},
			},
			want: "/d/real.mp4",
		},
		{
			name: "top level filename fallback",
			res:  &Result{Filename: "/d/top.mp4"},
			want: "/d/top.mp4",
		},
		{
			name: "legacy underscore filename fallback",
			res:  &Result{LegacyFilename: "/d/legacy.mp4"},
			want: "/d/legacy.mp4",
		},
		{
			name: "nothing declared",
			res:  &Result{Title: "a title"},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.res.DeclaredPath(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
