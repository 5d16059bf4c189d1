package gist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	created := time.Date(2023, 9, 14, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		gist Gist
		want string
	}{
		{
			name: "no description",
			gist: Gist{ID: "abc", CreatedAt: created, Files: []string{"a.txt", "b.py"}},
			want: "ID: abc\n  Created: 2023-09-14 08:30:00\n  Files: a.txt, b.py\n  Description: No description",
		},
		{
			name: "with description",
			gist: Gist{ID: "def", CreatedAt: created, Files: []string{"main.go"}, Description: "scratch"},
			want: "ID: def\n  Created: 2023-09-14 08:30:00\n  Files: main.go\n  Description: scratch",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Format(tt.gist))
		})
	}
}

func TestFormatDoesNotMutate(t *testing.T) {
	g := Gist{ID: "abc", Files: []string{"a.txt"}}
	_ = Format(g)
	require.Equal(t, "", g.Description)
}
