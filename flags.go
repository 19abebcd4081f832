package storage

import "github.com/BarrensZeppelin/storage/types"

// FlagGroupStorage is a set of flag bits, selected by a mask, of a flag
// register.
type FlagGroupStorage struct {
	stag
	reg  *RegisterStorage
	mask uint64
	name string
	dt   types.DataType
}

func NewFlagGroup(flagRegister *RegisterStorage, mask uint64, name string, dt types.DataType) (*FlagGroupStorage, error) {
	switch {
	case flagRegister == nil:
		return nil, invalid("flag group %s without a flag register", name)
	case mask == 0:
		return nil, invalid("flag group %s selects no bits", name)
	case name == "":
		return nil, invalid("flag group of %s without a name", flagRegister.name)
	}
	if err := checkType(dt); err != nil {
		return nil, invalid("flag group %s: %v", name, err)
	}

	return &FlagGroupStorage{
		reg:  flagRegister,
		mask: mask,
		name: name,
		dt:   dt,
	}, nil
}

func (f *FlagGroupStorage) Kind() Kind                      { return KindFlagGroup }
func (f *FlagGroupStorage) Domain() Domain                  { return f.reg.Domain() }
func (f *FlagGroupStorage) Name() string                    { return f.name }
func (f *FlagGroupStorage) DataType() types.DataType        { return f.dt }
func (f *FlagGroupStorage) BitSize() int                    { return f.dt.BitSize() }
func (f *FlagGroupStorage) ByteSize() int                   { return f.dt.Size() }
func (f *FlagGroupStorage) FlagRegister() *RegisterStorage  { return f.reg }
func (f *FlagGroupStorage) Mask() uint64                    { return f.mask }
func (f *FlagGroupStorage) String() string                  { return f.name }
func (f *FlagGroupStorage) OverlapsWith(other Storage) bool { return overlaps(f, other) }
func (f *FlagGroupStorage) Covers(other Storage) bool       { return covers(f, other) }
func (f *FlagGroupStorage) OffsetOf(other Storage) int      { return offsetOf(f, other) }
