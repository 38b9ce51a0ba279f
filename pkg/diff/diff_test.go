package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContentIsEmpty(t *testing.T) {
	t.Parallel()

	content := []byte("line one\nline two\n")
	require.Empty(t, Unified(content, content, "a", "b"))
}

func TestUnifiedMarksChangedLines(t *testing.T) {
	t.Parallel()

	current := []byte("radius: 8\ncolor: zinc\n")
	incoming := []byte("radius: 12\ncolor: zinc\n")

	out := Unified(current, incoming, "theme.ts", "new theme")
	require.Contains(t, out, "--- theme.ts")
	require.Contains(t, out, "+++ new theme")
	require.Contains(t, out, "-radius: 8")
	require.Contains(t, out, "+radius: 12")
	require.Contains(t, out, " color: zinc")
}

func TestUnifiedTruncatesLongDiffs(t *testing.T) {
	t.Parallel()

	var current, incoming strings.Builder
	for i := 0; i < 1000; i++ {
		current.WriteString("old line\n")
		incoming.WriteString("new line\n")
	}

	out := Unified([]byte(current.String()), []byte(incoming.String()), "a", "b")
	require.Contains(t, out, truncationNotice)
	require.LessOrEqual(t, len(strings.Split(out, "\n")), maxLines+3)
}
