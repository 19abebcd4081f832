// Package storage models where values live in a target machine: registers
// and slices of registers, groups of flag bits, stack frame slots, FPU stack
// slots and compiler temporaries. It answers whether two locations overlap,
// whether one covers another, and at which offset.
//
// All storages are immutable after construction and safe for concurrent use.
package storage

import (
	"errors"
	"fmt"

	"github.com/BarrensZeppelin/storage/types"
)

// ErrInvalidStorage is wrapped by every storage construction failure.
var ErrInvalidStorage = errors.New("invalid storage")

// NoOffset is returned by OffsetOf when the storage is not covered.
const NoOffset = -1

type Kind uint8

const (
	KindRegister Kind = iota
	KindFlagGroup
	KindStack
	KindFpuStack
	KindTemporary
)

func (k Kind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindFlagGroup:
		return "flags"
	case KindStack:
		return "stack"
	case KindFpuStack:
		return "fpu-stack"
	case KindTemporary:
		return "temporary"
	}
	return "<invalid storage kind>"
}

// Storage is a location. The set of implementations is closed: it is one of
// *RegisterStorage, *FlagGroupStorage, *StackStorage, *FpuStackStorage and
// *TemporaryStorage.
type Storage interface {
	// method used to tag storage variants
	storageTag()

	Kind() Kind
	Domain() Domain
	Name() string
	DataType() types.DataType
	BitSize() int
	ByteSize() int

	// OverlapsWith reports whether the two storages may refer to
	// intersecting bits. It is symmetric.
	OverlapsWith(other Storage) bool
	// Covers reports whether other is fully contained in the receiver.
	Covers(other Storage) bool
	// OffsetOf returns the offset of other inside the receiver, or NoOffset
	// if the receiver does not cover other.
	OffsetOf(other Storage) int

	fmt.Stringer
}

type stag struct{}

func (stag) storageTag() {}

// Must panics if err is not nil. It is meant for register tables that are
// fixed at compile time.
func Must[S Storage](s S, err error) S {
	if err != nil {
		panic(err)
	}
	return s
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidStorage, fmt.Sprintf(format, args...))
}

func checkType(dt types.DataType) error {
	if dt == nil {
		return errors.New("missing data type")
	}
	if dt.BitSize() <= 0 {
		return fmt.Errorf("data type %v has non-positive width %d", dt, dt.BitSize())
	}
	return nil
}
