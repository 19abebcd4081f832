package storage

import "fmt"

// Domain partitions storages into families. Storages in different domains
// never overlap.
type Domain int

const (
	DomainNone Domain = -1
	// Registers occupy [DomainRegister, DomainMemory); the domain of a
	// register is its number.
	DomainRegister Domain = 0
	DomainMemory   Domain = 4096
	DomainStack    Domain = 8192
	DomainFpuStack Domain = 8193
	// Temporaries occupy DomainTemporary and up, one domain per temporary.
	DomainTemporary Domain = 12288
)

// MaxRegisterNumber is one past the largest register number.
const MaxRegisterNumber = int(DomainMemory - DomainRegister)

func (d Domain) IsRegister() bool {
	return DomainRegister <= d && d < DomainMemory
}

func (d Domain) IsTemporary() bool {
	return d >= DomainTemporary
}

func (d Domain) String() string {
	switch {
	case d == DomainNone:
		return "None"
	case d.IsRegister():
		return fmt.Sprintf("r%d", int(d-DomainRegister))
	case d == DomainMemory:
		return "Memory"
	case d == DomainStack:
		return "Stack"
	case d == DomainFpuStack:
		return "FpuStack"
	case d.IsTemporary():
		return fmt.Sprintf("tmp%d", int(d-DomainTemporary))
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}
