// Package regfile builds the storages of an architecture from a declarative
// register-file description.
//
// A description is a YAML document:
//
//	name: x86-32
//	registers:
//	  - name: eax
//	    number: 0
//	    bits: 32
//	    subregisters:
//	      - {name: ax, offset: 0, bits: 16}
//	      - {name: ah, offset: 8, bits: 8}
//	flags:
//	  - register: eflags
//	    groups:
//	      - {name: SZC, mask: 0x7}
//	order: [eax, edx]
//
// The order list is the canonical register order used to collate
// identifiers, e.g. the return registers of the calling convention.
package regfile

import (
	"errors"
	"fmt"
	"io"
	"math/bits"
	"os"
	"sort"

	"github.com/BarrensZeppelin/storage"
	"github.com/BarrensZeppelin/storage/internal/logging"
	"github.com/BarrensZeppelin/storage/internal/maps"
	"github.com/BarrensZeppelin/storage/types"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateName  = errors.New("duplicate name")
	ErrDuplicateReg   = errors.New("duplicate register number")
	ErrUnknownStorage = errors.New("unknown storage")
)

var logger = logging.GetLogger("regfile")

type Description struct {
	Name      string                `yaml:"name"`
	Registers []RegisterDescription `yaml:"registers"`
	Flags     []FlagsDescription    `yaml:"flags"`
	Order     []string              `yaml:"order"`
}

type RegisterDescription struct {
	Name         string                   `yaml:"name"`
	Number       int                      `yaml:"number"`
	Bits         int                      `yaml:"bits"`
	Subregisters []SubregisterDescription `yaml:"subregisters"`
}

type SubregisterDescription struct {
	Name   string `yaml:"name"`
	Offset int    `yaml:"offset"`
	Bits   int    `yaml:"bits"`
}

type FlagsDescription struct {
	Register string                 `yaml:"register"`
	Groups   []FlagGroupDescription `yaml:"groups"`
}

type FlagGroupDescription struct {
	Name string `yaml:"name"`
	Mask uint64 `yaml:"mask"`
}

// RegisterFile holds the storages of one architecture. It is immutable once
// built.
type RegisterFile struct {
	name      string
	registers []*storage.RegisterStorage
	byName    map[string]storage.Storage
	ids       map[string]*storage.Identifier
	collator  *storage.StorageCollator
}

func LoadFile(path string) (*RegisterFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rf, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rf, nil
}

func Load(r io.Reader) (*RegisterFile, error) {
	var desc Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decoding register file: %w", err)
	}
	return Build(&desc)
}

// Build validates desc and constructs its storages. All problems found are
// reported together.
func Build(desc *Description) (*RegisterFile, error) {
	rf := &RegisterFile{
		name:   desc.Name,
		byName: make(map[string]storage.Storage),
		ids:    make(map[string]*storage.Identifier),
	}

	var result *multierror.Error
	define := func(stg storage.Storage) {
		if _, found := rf.byName[stg.Name()]; found {
			result = multierror.Append(result, fmt.Errorf("%w: %s", ErrDuplicateName, stg.Name()))
			return
		}
		rf.byName[stg.Name()] = stg
		rf.ids[stg.Name()] = storage.IdentifierFor(stg)
	}

	numbers := map[int]string{}
	for _, rd := range desc.Registers {
		reg, err := storage.NewRegister(rd.Name, rd.Number, 0, types.CreateWord(rd.Bits))
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if prev, found := numbers[rd.Number]; found {
			result = multierror.Append(result,
				fmt.Errorf("%w: %s and %s are both %d", ErrDuplicateReg, prev, rd.Name, rd.Number))
			continue
		}
		numbers[rd.Number] = rd.Name
		rf.registers = append(rf.registers, reg)
		define(reg)

		for _, sd := range rd.Subregisters {
			sub, err := storage.NewSubRegister(reg, sd.Name, sd.Offset, sd.Bits)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			define(sub)
		}
	}

	for _, fd := range desc.Flags {
		freg, ok := rf.byName[fd.Register].(*storage.RegisterStorage)
		if !ok {
			result = multierror.Append(result,
				fmt.Errorf("%w: flag register %q", ErrUnknownStorage, fd.Register))
			continue
		}
		for _, gd := range fd.Groups {
			var dt types.DataType = types.Byte
			if bits.OnesCount64(gd.Mask) == 1 {
				dt = types.Bool
			}
			grp, err := storage.NewFlagGroup(freg, gd.Mask, gd.Name, dt)
			if err != nil {
				result = multierror.Append(result, err)
				continue
			}
			define(grp)
		}
	}

	order := make([]storage.Storage, 0, len(desc.Order))
	for _, name := range desc.Order {
		stg, ok := rf.byName[name]
		if !ok {
			result = multierror.Append(result,
				fmt.Errorf("%w: %q in collation order", ErrUnknownStorage, name))
			continue
		}
		order = append(order, stg)
	}
	rf.collator = storage.NewStorageCollator(order...)

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	logger.Debug("register file built",
		"name", rf.name,
		"registers", len(rf.registers),
		"storages", len(rf.byName),
	)
	return rf, nil
}

func (rf *RegisterFile) Name() string { return rf.name }

// Registers returns the canonical registers in declaration order.
func (rf *RegisterFile) Registers() []*storage.RegisterStorage {
	return append([]*storage.RegisterStorage(nil), rf.registers...)
}

// Names returns the names of all storages in the file, sorted.
func (rf *RegisterFile) Names() []string {
	names := maps.Keys(rf.byName)
	sort.Strings(names)
	return names
}

func (rf *RegisterFile) Lookup(name string) (storage.Storage, bool) {
	stg, ok := rf.byName[name]
	return stg, ok
}

// Identifier returns the identifier of the named storage. Identifiers are
// created once per register file and shared.
func (rf *RegisterFile) Identifier(name string) (*storage.Identifier, bool) {
	id, ok := rf.ids[name]
	return id, ok
}

func (rf *RegisterFile) Collator() *storage.StorageCollator { return rf.collator }
