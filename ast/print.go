package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes the printed representation of a value
func Print(w io.Writer, v Value) error {
	_, err := io.WriteString(w, Encode(v))
	return err
}

// Encode transforms a value into its printed representation
func Encode(v Value) string {
	if v == nil {
		return ""
	}
	switch v.Type() {
	case ValueTypePair:
		values, tail := Slice(v)
		items := make([]string, 0, len(values))
		for i := range values {
			items = append(items, Encode(values[i]))
		}
		if tail != EmptyList {
			return fmt.Sprintf("(%s . %s)", strings.Join(items, " "), Encode(tail))
		}
		return fmt.Sprintf("(%s)", strings.Join(items, " "))
	}
	return v.String()
}

// Dump displays a human-readable tree of a value, one node per line.
func Dump(w io.Writer, v Value) {
	dumpLevel(w, v, 0)
}

func dumpLevel(w io.Writer, v Value, level int) {
	indent := strings.Repeat("    ", level)
	if v == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s)", indent, v.Type())
	switch v.Type() {
	case ValueTypePair:
		values, tail := Slice(v)
		fmt.Fprintf(w, "[%d]\n", len(values))
		for i := range values {
			dumpLevel(w, values[i], level+1)
		}
		if tail != EmptyList {
			fmt.Fprintf(w, "%s    .\n", indent)
			dumpLevel(w, tail, level+1)
		}
	case ValueTypeString:
		fmt.Fprintf(w, ": %q\n", v.String())
	case ValueTypeEmptyList, ValueTypeVoid:
		fmt.Fprintln(w)
	default:
		fmt.Fprintf(w, ": %s\n", v.String())
	}
}
