// Package history は生成画像の線形な Undo/Redo 履歴を提供します。
package history

// Log は挿入順の参照列とカーソルを保持する履歴です。
// カーソルは常に [-1, Len()-1] の範囲にあり、空のときは -1 です。
// 同期は行わないため、所有者が単一のフローからのみ操作します。
type Log[T any] struct {
	entries []T
	cursor  int
}

// New は空の履歴を作成します。
func New[T any]() *Log[T] {
	return &Log[T]{cursor: -1}
}

// Append はカーソル以降の要素を破棄してから ref を追加し、カーソルを末尾へ移動します。
// Undo 後に追加すると Redo 側の分岐は復元できなくなります。
func (l *Log[T]) Append(ref T) {
	clear(l.entries[l.cursor+1:])
	l.entries = append(l.entries[:l.cursor+1], ref)
	l.cursor = len(l.entries) - 1
}

// Undo はカーソルを1つ戻し、その位置の参照を返します。
// 戻れない場合は何もせず ok=false を返します。
func (l *Log[T]) Undo() (T, bool) {
	if !l.CanUndo() {
		var zero T
		return zero, false
	}
	l.cursor--
	return l.entries[l.cursor], true
}

// Redo はカーソルを1つ進め、その位置の参照を返します。
// 進めない場合は何もせず ok=false を返します。
func (l *Log[T]) Redo() (T, bool) {
	if !l.CanRedo() {
		var zero T
		return zero, false
	}
	l.cursor++
	return l.entries[l.cursor], true
}

func (l *Log[T]) CanUndo() bool {
	return l.cursor > 0
}

func (l *Log[T]) CanRedo() bool {
	return l.cursor < len(l.entries)-1
}

// Reset は履歴を空にします。
func (l *Log[T]) Reset() {
	clear(l.entries)
	l.entries = l.entries[:0]
	l.cursor = -1
}

// Current はカーソル位置の参照を返します。空の場合は ok=false です。
func (l *Log[T]) Current() (T, bool) {
	if l.cursor < 0 {
		var zero T
		return zero, false
	}
	return l.entries[l.cursor], true
}

func (l *Log[T]) Cursor() int {
	return l.cursor
}

func (l *Log[T]) Len() int {
	return len(l.entries)
}

// Entries は履歴のコピーを返します。
func (l *Log[T]) Entries() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}
