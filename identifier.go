package storage

import (
	"errors"
	"fmt"

	"github.com/BarrensZeppelin/storage/types"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

// Identifier is a named, typed value backed by exactly one storage.
type Identifier struct {
	name    string
	dt      types.DataType
	storage Storage
}

func NewIdentifier(name string, dt types.DataType, stg Storage) (*Identifier, error) {
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: missing name", ErrInvalidIdentifier)
	case absent(stg):
		return nil, fmt.Errorf("%w: %s has no storage", ErrInvalidIdentifier, name)
	case dt == nil:
		return nil, fmt.Errorf("%w: %s has no data type", ErrInvalidIdentifier, name)
	}
	return &Identifier{name: name, dt: dt, storage: stg}, nil
}

// IdentifierFor returns an identifier named and typed after stg. It panics
// if stg is nil.
func IdentifierFor(stg Storage) *Identifier {
	if absent(stg) {
		panic(fmt.Errorf("%w: nil storage", ErrInvalidIdentifier))
	}
	return &Identifier{name: stg.Name(), dt: stg.DataType(), storage: stg}
}

func (id *Identifier) Name() string             { return id.name }
func (id *Identifier) DataType() types.DataType { return id.dt }
func (id *Identifier) Storage() Storage         { return id.storage }
func (id *Identifier) String() string           { return id.name }

// absent reports whether id is nil or lacks a storage, as the zero Identifier
// does.
func (id *Identifier) absent() bool {
	return id == nil || absent(id.storage)
}

// OverlapsWith is false if either identifier is absent.
func (id *Identifier) OverlapsWith(other *Identifier) bool {
	if id.absent() || other.absent() {
		return false
	}
	return id.storage.OverlapsWith(other.storage)
}

// Covers is false if either identifier is absent.
func (id *Identifier) Covers(other *Identifier) bool {
	if id.absent() || other.absent() {
		return false
	}
	return id.storage.Covers(other.storage)
}
