package schema

// Type tags which attributes of a Node are meaningful.
type Type string

const (
	String  Type = "String"
	Number  Type = "Number"
	Boolean Type = "Boolean"
	Nested  Type = "Nested"
	Array   Type = "Array"
)

// Types lists the field types in display order.
var Types = []Type{String, Number, Boolean, Nested, Array}

// ArrayTypes lists the element types an Array field may declare.
var ArrayTypes = []Type{String, Number, Boolean, Nested}

func (t Type) Valid() bool {
	return indexOf(Types, t) >= 0
}

func (t Type) ValidArrayType() bool {
	return indexOf(ArrayTypes, t) >= 0
}

func (t Type) IsPrimitive() bool {
	return t == String || t == Number || t == Boolean
}

// Next cycles through Types, wrapping around. Unknown values restart at String.
func (t Type) Next() Type {
	return next(Types, t)
}

// NextArrayType cycles through ArrayTypes the same way Next does.
func (t Type) NextArrayType() Type {
	return next(ArrayTypes, t)
}

func next(types []Type, t Type) Type {
	i := indexOf(types, t)
	return types[(i+1)%len(types)]
}

func indexOf(types []Type, t Type) int {
	for i, candidate := range types {
		if candidate == t {
			return i
		}
	}
	return -1
}
