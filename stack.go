package storage

import (
	"fmt"
	"math"

	"github.com/BarrensZeppelin/storage/types"
)

// StackStorage is the byte range [offset, offset+ByteSize) of the procedure
// frame, measured from the frame pointer.
type StackStorage struct {
	stag
	offset int
	dt     types.DataType
}

func NewStackStorage(offset int, dt types.DataType) (*StackStorage, error) {
	if err := checkType(dt); err != nil {
		return nil, invalid("stack slot %d: %v", offset, err)
	}
	if offset > math.MaxInt-dt.Size() {
		return nil, invalid("stack slot %d: bytes [%d, +%d) overflow", offset, offset, dt.Size())
	}
	return &StackStorage{offset: offset, dt: dt}, nil
}

func (s *StackStorage) Kind() Kind               { return KindStack }
func (s *StackStorage) Domain() Domain           { return DomainStack }
func (s *StackStorage) Name() string             { return s.String() }
func (s *StackStorage) DataType() types.DataType { return s.dt }
func (s *StackStorage) BitSize() int             { return s.dt.BitSize() }
func (s *StackStorage) ByteSize() int            { return s.dt.Size() }
func (s *StackStorage) StackOffset() int         { return s.offset }

func (s *StackStorage) end() int { return s.offset + s.dt.Size() }

func (s *StackStorage) String() string {
	if s.offset < 0 {
		return fmt.Sprintf("Stack-%04X", -s.offset)
	}
	return fmt.Sprintf("Stack+%04X", s.offset)
}

func (s *StackStorage) OverlapsWith(other Storage) bool { return overlaps(s, other) }
func (s *StackStorage) Covers(other Storage) bool       { return covers(s, other) }
func (s *StackStorage) OffsetOf(other Storage) int      { return offsetOf(s, other) }
