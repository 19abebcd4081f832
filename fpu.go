package storage

import (
	"fmt"

	"github.com/BarrensZeppelin/storage/types"
)

// FpuStackStorage is a slot of an FPU register stack, addressed by its depth
// relative to the top of the stack (0 = top).
type FpuStackStorage struct {
	stag
	index int
	dt    types.DataType
}

func NewFpuStackStorage(index int, dt types.DataType) (*FpuStackStorage, error) {
	if err := checkType(dt); err != nil {
		return nil, invalid("FPU stack slot %d: %v", index, err)
	}
	return &FpuStackStorage{index: index, dt: dt}, nil
}

func (f *FpuStackStorage) Kind() Kind                      { return KindFpuStack }
func (f *FpuStackStorage) Domain() Domain                  { return DomainFpuStack }
func (f *FpuStackStorage) Name() string                    { return f.String() }
func (f *FpuStackStorage) DataType() types.DataType        { return f.dt }
func (f *FpuStackStorage) BitSize() int                    { return f.dt.BitSize() }
func (f *FpuStackStorage) ByteSize() int                   { return f.dt.Size() }
func (f *FpuStackStorage) FpuStackOffset() int             { return f.index }
func (f *FpuStackStorage) String() string                  { return fmt.Sprintf("ST(%d)", f.index) }
func (f *FpuStackStorage) OverlapsWith(other Storage) bool { return overlaps(f, other) }
func (f *FpuStackStorage) Covers(other Storage) bool       { return covers(f, other) }
func (f *FpuStackStorage) OffsetOf(other Storage) int      { return offsetOf(f, other) }
