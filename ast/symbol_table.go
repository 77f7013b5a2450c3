package ast

import (
	"sync"
)

// SymbolTable interns names into symbols. Entries are never removed.
type SymbolTable struct {
	mu sync.Mutex
	n  map[string]*Symbol
}

var defaultSymbolTable = NewSymbolTable()

// NewSymbolTable creates an empty table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		n: make(map[string]*Symbol),
	}
}

// Intern returns the symbol registered under name, creating it if needed.
func (st *SymbolTable) Intern(name string) *Symbol {
	st.mu.Lock()
	defer st.mu.Unlock()

	if sym, ok := st.n[name]; ok {
		return sym
	}
	sym := &Symbol{name: name}
	st.n[name] = sym
	return sym
}

// Lookup returns the symbol registered under name without creating it.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sym, ok := st.n[name]
	return sym, ok
}

// Len returns the number of interned symbols
func (st *SymbolTable) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	return len(st.n)
}

// Intern interns name on the process-wide table
func Intern(name string) *Symbol {
	return defaultSymbolTable.Intern(name)
}
