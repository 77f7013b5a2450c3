package ast

// Cons creates a new pair
func Cons(head Value, tail Value) *Pair {
	return &Pair{head: head, tail: tail}
}

// List builds a proper list out of the given values
func List(values ...Value) Value {
	var list Value = EmptyList
	for i := len(values) - 1; i >= 0; i-- {
		list = Cons(values[i], list)
	}
	return list
}

// Reverse returns a new list with the elements of a proper list in reverse
// order. The tail of an improper list is dropped.
func Reverse(list Value) Value {
	var out Value = EmptyList
	for {
		p, ok := list.(*Pair)
		if !ok {
			return out
		}
		out = Cons(p.head, out)
		list = p.tail
	}
}

// Slice walks a chain of pairs and returns its elements along with whatever
// terminated the chain, EmptyList for proper lists.
func Slice(list Value) ([]Value, Value) {
	values := []Value{}
	for {
		p, ok := list.(*Pair)
		if !ok {
			return values, list
		}
		values = append(values, p.head)
		list = p.tail
	}
}

// IsList returns true if v is a proper list
func IsList(v Value) bool {
	_, tail := Slice(v)
	return tail == EmptyList
}

// Equal compares two values structurally. Symbols, booleans and singletons
// compare by identity.
func Equal(a Value, b Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case Fixnum:
		return x == b.(Fixnum)
	case Character:
		return x == b.(Character)
	case *String:
		return x.s == b.(*String).s
	case *Pair:
		y := b.(*Pair)
		return Equal(x.head, y.head) && Equal(x.tail, y.tail)
	}
	return false
}
