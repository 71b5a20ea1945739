package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLog(refs ...string) *Log[string] {
	l := New[string]()
	for _, r := range refs {
		l.Append(r)
	}
	return l
}

func assertConsistent(t *testing.T, l *Log[string]) {
	t.Helper()
	assert.GreaterOrEqual(t, l.Cursor(), -1)
	assert.LessOrEqual(t, l.Cursor(), l.Len()-1)
	assert.Equal(t, l.Cursor() > 0, l.CanUndo())
	assert.Equal(t, l.Cursor() < l.Len()-1, l.CanRedo())
}

func TestLog_AppendTruncatesForwardHistory(t *testing.T) {
	l := newLog("A", "B", "C")
	require.Equal(t, 2, l.Cursor())

	ref, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, "B", ref)
	assert.Equal(t, 1, l.Cursor())

	l.Append("D")
	assert.Equal(t, []string{"A", "B", "D"}, l.Entries())
	assert.Equal(t, 2, l.Cursor())
	assert.False(t, l.CanRedo(), "C は復元できないのだ")
	assertConsistent(t, l)
}

func TestLog_Bounds(t *testing.T) {
	for n := 0; n <= 5; n++ {
		l := New[string]()
		for i := 0; i < n; i++ {
			l.Append(string(rune('A' + i)))
		}

		for i := 0; i < n+3; i++ {
			l.Undo()
			assertConsistent(t, l)
		}
		if n > 0 {
			assert.Equal(t, 0, l.Cursor())
		} else {
			assert.Equal(t, -1, l.Cursor())
		}

		for i := 0; i < n+3; i++ {
			l.Redo()
			assertConsistent(t, l)
		}
		assert.Equal(t, n-1, l.Cursor())
	}
}

func TestLog_NoOpsAtBounds(t *testing.T) {
	t.Run("先頭での Undo は何もしないのだ", func(t *testing.T) {
		l := newLog("A", "B")
		l.Undo()
		before := l.Entries()

		ref, ok := l.Undo()
		assert.False(t, ok)
		assert.Empty(t, ref)
		assert.Equal(t, 0, l.Cursor())
		assert.Equal(t, before, l.Entries())
	})

	t.Run("末尾での Redo は何もしないのだ", func(t *testing.T) {
		l := newLog("A", "B")
		ref, ok := l.Redo()
		assert.False(t, ok)
		assert.Empty(t, ref)
		assert.Equal(t, 1, l.Cursor())
		assert.Equal(t, []string{"A", "B"}, l.Entries())
	})
}

func TestLog_EmptyAndSingle(t *testing.T) {
	l := New[string]()
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
	_, ok := l.Current()
	assert.False(t, ok)

	l.Append("A")
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
	cur, ok := l.Current()
	assert.True(t, ok)
	assert.Equal(t, "A", cur)
}

func TestLog_Reset(t *testing.T) {
	l := newLog("A", "B", "C")
	l.Undo()
	l.Reset()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, -1, l.Cursor())
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())

	l.Append("X")
	assert.Equal(t, []string{"X"}, l.Entries())
}

func TestLog_Scenario(t *testing.T) {
	l := New[string]()
	l.Append("A")
	assert.Equal(t, []string{"A"}, l.Entries())
	assert.Equal(t, 0, l.Cursor())

	l.Append("B")
	assert.Equal(t, 1, l.Cursor())

	ref, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, "A", ref)
	assert.Equal(t, 0, l.Cursor())

	l.Append("C")
	assert.Equal(t, []string{"A", "C"}, l.Entries())
	assert.Equal(t, 1, l.Cursor())

	_, ok = l.Redo()
	assert.False(t, ok)
}

func TestLog_EntriesIsCopy(t *testing.T) {
	l := newLog("A")
	entries := l.Entries()
	entries[0] = "Z"
	cur, _ := l.Current()
	assert.Equal(t, "A", cur)
}
