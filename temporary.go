package storage

import (
	"fmt"
	"math"

	"github.com/BarrensZeppelin/storage/types"
)

// TemporaryStorage is a compiler-internal location. Each temporary has a
// domain of its own, so it only ever overlaps itself.
type TemporaryStorage struct {
	stag
	name   string
	number int
	dt     types.DataType
}

func NewTemporary(name string, number int, dt types.DataType) (*TemporaryStorage, error) {
	if number < 0 || number > math.MaxInt-int(DomainTemporary) {
		return nil, invalid("temporary %s: number %d out of range", name, number)
	}
	if err := checkType(dt); err != nil {
		return nil, invalid("temporary %s: %v", name, err)
	}
	if name == "" {
		name = fmt.Sprintf("tmp%d", number)
	}
	return &TemporaryStorage{name: name, number: number, dt: dt}, nil
}

func (t *TemporaryStorage) Kind() Kind                      { return KindTemporary }
func (t *TemporaryStorage) Domain() Domain                  { return DomainTemporary + Domain(t.number) }
func (t *TemporaryStorage) Name() string                    { return t.name }
func (t *TemporaryStorage) Number() int                     { return t.number }
func (t *TemporaryStorage) DataType() types.DataType        { return t.dt }
func (t *TemporaryStorage) BitSize() int                    { return t.dt.BitSize() }
func (t *TemporaryStorage) ByteSize() int                   { return t.dt.Size() }
func (t *TemporaryStorage) String() string                  { return t.name }
func (t *TemporaryStorage) OverlapsWith(other Storage) bool { return overlaps(t, other) }
func (t *TemporaryStorage) Covers(other Storage) bool       { return covers(t, other) }
func (t *TemporaryStorage) OffsetOf(other Storage) int      { return offsetOf(t, other) }
