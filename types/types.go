// Package types is the small primitive-type system that storages read their
// widths from.
package types

import "fmt"

// DataType is the view of a type that storages need.
type DataType interface {
	// Width of the type in bits.
	BitSize() int
	// Width of the type in bytes, rounded up.
	Size() int
	fmt.Stringer
}

type Kind uint8

const (
	KindBool Kind = iota
	KindWord
	KindInt
	KindUInt
	KindReal
	KindPointer
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindWord:
		return "word"
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindReal:
		return "real"
	case KindPointer:
		return "ptr"
	}
	return "?"
}

// PrimitiveType is a scalar type identified by its kind and bit width.
type PrimitiveType struct {
	kind Kind
	bits int
}

var (
	Bool    = &PrimitiveType{KindBool, 1}
	Byte    = &PrimitiveType{KindWord, 8}
	SByte   = &PrimitiveType{KindInt, 8}
	Word16  = &PrimitiveType{KindWord, 16}
	Word32  = &PrimitiveType{KindWord, 32}
	Word64  = &PrimitiveType{KindWord, 64}
	Word128 = &PrimitiveType{KindWord, 128}
	Int16   = &PrimitiveType{KindInt, 16}
	Int32   = &PrimitiveType{KindInt, 32}
	Int64   = &PrimitiveType{KindInt, 64}
	UInt16  = &PrimitiveType{KindUInt, 16}
	UInt32  = &PrimitiveType{KindUInt, 32}
	UInt64  = &PrimitiveType{KindUInt, 64}
	Real32  = &PrimitiveType{KindReal, 32}
	Real64  = &PrimitiveType{KindReal, 64}
	Real80  = &PrimitiveType{KindReal, 80}
	Ptr32   = &PrimitiveType{KindPointer, 32}
	Ptr64   = &PrimitiveType{KindPointer, 64}
)

var words = map[int]*PrimitiveType{
	8:   Byte,
	16:  Word16,
	32:  Word32,
	64:  Word64,
	128: Word128,
}

// Create returns a primitive type of the given kind and width. No validation
// is done on the width; storages reject non-positive widths themselves.
func Create(kind Kind, bits int) *PrimitiveType {
	return &PrimitiveType{kind: kind, bits: bits}
}

// CreateWord returns the word type with the given width, reusing the
// predefined value when there is one.
func CreateWord(bits int) *PrimitiveType {
	if w, ok := words[bits]; ok {
		return w
	}
	return Create(KindWord, bits)
}

func (p *PrimitiveType) Kind() Kind   { return p.kind }
func (p *PrimitiveType) BitSize() int { return p.bits }
func (p *PrimitiveType) Size() int    { return (p.bits + 7) / 8 }

func (p *PrimitiveType) String() string {
	if p.kind == KindBool {
		return "bool"
	}
	if p.kind == KindWord && p.bits == 8 {
		return "byte"
	}
	return fmt.Sprintf("%s%d", p.kind, p.bits)
}
