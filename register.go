package storage

import (
	"math"

	"github.com/BarrensZeppelin/storage/types"
)

// RegisterStorage is a physical register, or a fixed slice of one. All
// registers with the same number share a domain; the slice occupies the bits
// [BitAddress, BitAddress+BitSize) of that domain.
type RegisterStorage struct {
	stag
	name       string
	number     int
	bitAddress int
	dt         types.DataType
}

// NewRegister creates the register slice of width dt.BitSize() starting at
// bitAddress within register number.
func NewRegister(name string, number, bitAddress int, dt types.DataType) (*RegisterStorage, error) {
	switch {
	case name == "":
		return nil, invalid("register without a name")
	case number < 0 || number >= MaxRegisterNumber:
		return nil, invalid("register %s: number %d out of range [0, %d)", name, number, MaxRegisterNumber)
	case bitAddress < 0:
		return nil, invalid("register %s: negative bit address %d", name, bitAddress)
	}
	if err := checkType(dt); err != nil {
		return nil, invalid("register %s: %v", name, err)
	}
	if bitAddress > math.MaxInt-dt.BitSize() {
		return nil, invalid("register %s: bits [%d, +%d) overflow", name, bitAddress, dt.BitSize())
	}

	return &RegisterStorage{
		name:       name,
		number:     number,
		bitAddress: bitAddress,
		dt:         dt,
	}, nil
}

// NewSubRegister creates a slice of bits width at bitAddress inside parent.
// The slice must lie within the parent's bit range.
func NewSubRegister(parent *RegisterStorage, name string, bitAddress, bits int) (*RegisterStorage, error) {
	if parent == nil {
		return nil, invalid("subregister %s without a parent", name)
	}
	if bits <= 0 || bitAddress < parent.bitAddress || bitAddress+bits > parent.end() {
		return nil, invalid("subregister %s: bits [%d, %d) not inside %s [%d, %d)",
			name, bitAddress, bitAddress+bits, parent.name, parent.bitAddress, parent.end())
	}
	return NewRegister(name, parent.number, bitAddress, types.CreateWord(bits))
}

// Reg8, Reg16, Reg32 and Reg64 create whole registers at bit address 0.
func Reg8(name string, number int) *RegisterStorage {
	return Must(NewRegister(name, number, 0, types.Byte))
}

func Reg16(name string, number int) *RegisterStorage {
	return Must(NewRegister(name, number, 0, types.Word16))
}

func Reg32(name string, number int) *RegisterStorage {
	return Must(NewRegister(name, number, 0, types.Word32))
}

func Reg64(name string, number int) *RegisterStorage {
	return Must(NewRegister(name, number, 0, types.Word64))
}

func (r *RegisterStorage) Kind() Kind               { return KindRegister }
func (r *RegisterStorage) Domain() Domain           { return DomainRegister + Domain(r.number) }
func (r *RegisterStorage) Name() string             { return r.name }
func (r *RegisterStorage) DataType() types.DataType { return r.dt }
func (r *RegisterStorage) BitSize() int             { return r.dt.BitSize() }
func (r *RegisterStorage) ByteSize() int            { return r.dt.Size() }
func (r *RegisterStorage) Number() int              { return r.number }
func (r *RegisterStorage) BitAddress() int          { return r.bitAddress }
func (r *RegisterStorage) String() string           { return r.name }

func (r *RegisterStorage) end() int { return r.bitAddress + r.dt.BitSize() }

// BitMask returns the bits of the canonical register occupied by r. Bits at
// or above position 64 are dropped.
func (r *RegisterStorage) BitMask() uint64 {
	if r.bitAddress >= 64 {
		return 0
	}
	var m uint64 = ^uint64(0)
	if w := r.BitSize(); w < 64 {
		m = (uint64(1) << w) - 1
	}
	return m << r.bitAddress
}

func (r *RegisterStorage) OverlapsWith(other Storage) bool { return overlaps(r, other) }
func (r *RegisterStorage) Covers(other Storage) bool       { return covers(r, other) }
func (r *RegisterStorage) OffsetOf(other Storage) int      { return offsetOf(r, other) }
