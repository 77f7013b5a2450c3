package ast

import (
	"strconv"
)

// Value represents any runtime value
type Value interface {
	Type() ValueType
	String() string
}

// Fixnum is a fixed-width signed integer
type Fixnum int64

// Type implements Value
func (Fixnum) Type() ValueType {
	return ValueTypeFixnum
}

func (n Fixnum) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Boolean is either True or False, no other instances exist.
type Boolean struct {
	v bool
}

// Boolean singletons, False is the only falsy value.
var (
	True  = &Boolean{v: true}
	False = &Boolean{v: false}
)

// NewBoolean returns the singleton that matches b
func NewBoolean(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

// Type implements Value
func (*Boolean) Type() ValueType {
	return ValueTypeBoolean
}

// Bool returns the Go value of the boolean
func (b *Boolean) Bool() bool {
	return b.v
}

func (b *Boolean) String() string {
	if b.v {
		return "True"
	}
	return "False"
}

// Character represents a single character
type Character rune

// Type implements Value
func (Character) Type() ValueType {
	return ValueTypeCharacter
}

func (c Character) String() string {
	return `#\` + string(rune(c))
}

// String holds owned text
type String struct {
	s string
}

// NewString creates a string value
func NewString(s string) *String {
	return &String{s: s}
}

// Type implements Value
func (*String) Type() ValueType {
	return ValueTypeString
}

// Text returns the contents of the string
func (s *String) Text() string {
	return s.s
}

func (s *String) String() string {
	return s.s
}

// Symbol is an interned name, two symbols with the same name are always the
// same pointer. Use Intern to get one.
type Symbol struct {
	name string
}

// Type implements Value
func (*Symbol) Type() ValueType {
	return ValueTypeSymbol
}

// Name returns the name of the symbol
func (s *Symbol) Name() string {
	return s.name
}

func (s *Symbol) String() string {
	return s.name
}

// Pair is a cons cell. Pairs have no mutators.
type Pair struct {
	head Value
	tail Value
}

// Type implements Value
func (*Pair) Type() ValueType {
	return ValueTypePair
}

// Head returns the first slot of the pair
func (p *Pair) Head() Value {
	return p.head
}

// Tail returns the second slot of the pair
func (p *Pair) Tail() Value {
	return p.tail
}

func (p *Pair) String() string {
	return Encode(p)
}

type emptyList struct{}

func (*emptyList) Type() ValueType {
	return ValueTypeEmptyList
}

func (*emptyList) String() string {
	return "()"
}

type void struct{}

func (*void) Type() ValueType {
	return ValueTypeVoid
}

func (*void) String() string {
	return ""
}

var (
	// EmptyList terminates every proper list
	EmptyList Value = &emptyList{}

	// Void is returned where there is nothing to print: blank input lines,
	// define and set!.
	Void Value = &void{}
)

var (
	_ = Value(Fixnum(0))
	_ = Value(True)
	_ = Value(Character('a'))
	_ = Value(&String{})
	_ = Value(&Symbol{})
	_ = Value(&Pair{})
)
