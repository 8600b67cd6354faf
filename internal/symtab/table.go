// Package symtab holds the identifier and constant tables built by the lexer.
//
// A Table is an append-only, insertion-ordered set of strings. The index of a
// string is the position of its first occurrence and never changes.
package symtab

import (
	"slices"
)

type Table struct {
	byIdx []string       // индекс -> строка
	index map[string]int // строка -> индекс
}

func New() *Table {
	return &Table{
		byIdx: make([]string, 0, 16),
		index: make(map[string]int, 16),
	}
}

// Intern возвращает индекс строки, добавляя её в конец, если её ещё нет.
func (t *Table) Intern(s string) int {
	if idx, ok := t.index[s]; ok {
		return idx
	}
	// собственная копия, чтобы не держать исходный буфер
	cpy := string([]byte(s))
	idx := len(t.byIdx)
	t.byIdx = append(t.byIdx, cpy)
	t.index[cpy] = idx
	return idx
}

// Index returns the index of s without inserting it.
func (t *Table) Index(s string) (int, bool) {
	idx, ok := t.index[s]
	return idx, ok
}

// Lookup returns the entry at idx.
func (t *Table) Lookup(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.byIdx) {
		return "", false
	}
	return t.byIdx[idx], true
}

func (t *Table) Len() int {
	return len(t.byIdx)
}

// Entries returns a copy of all entries in insertion order.
func (t *Table) Entries() []string {
	return slices.Clone(t.byIdx)
}
