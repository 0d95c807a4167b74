package logbook

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "viennasuites.log")
	book, err := New(path)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	book.Warn("careful")
	book.Error("broken")

	lines, total := book.Tail(3)
	require.Equal(t, 7, total)
	require.Len(t, lines, 3)
	require.True(t, strings.Contains(lines[0], "INFO  entry-4"), lines[0])
	require.True(t, strings.Contains(lines[1], "WARN  careful"), lines[1])
	require.True(t, strings.Contains(lines[2], "ERROR broken"), lines[2])
}

func TestNilLogbookIsSilent(t *testing.T) {
	t.Parallel()

	var book *Logbook
	book.Info("ignored")
	lines, total := book.Tail(10)
	require.Nil(t, lines)
	require.Zero(t, total)
	require.Empty(t, book.Path())
}
