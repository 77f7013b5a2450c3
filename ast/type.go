package ast

// ValueType represents the variant of a runtime value
type ValueType uint8

// Value types
const (
	ValueTypeInvalid ValueType = iota
	ValueTypeFixnum
	ValueTypeBoolean
	ValueTypeCharacter
	ValueTypeString
	ValueTypeSymbol
	ValueTypePair
	ValueTypeEmptyList
	ValueTypeVoid
	ValueTypeProcedure
	ValueTypeSpecialForm
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return valueTypeName[ValueTypeInvalid]
}

var valueTypeName = map[ValueType]string{
	ValueTypeInvalid:     "invalid",
	ValueTypeFixnum:      "fixnum",
	ValueTypeBoolean:     "boolean",
	ValueTypeCharacter:   "character",
	ValueTypeString:      "string",
	ValueTypeSymbol:      "symbol",
	ValueTypePair:        "pair",
	ValueTypeEmptyList:   "empty-list",
	ValueTypeVoid:        "void",
	ValueTypeProcedure:   "procedure",
	ValueTypeSpecialForm: "special-form",
}
