package storage

import "math/bits"

// absent reports whether s is nil, including typed nil pointers.
func absent(s Storage) bool {
	switch s := s.(type) {
	case nil:
		return true
	case *RegisterStorage:
		return s == nil
	case *FlagGroupStorage:
		return s == nil
	case *StackStorage:
		return s == nil
	case *FpuStackStorage:
		return s == nil
	case *TemporaryStorage:
		return s == nil
	}
	return false
}

// Equal reports whether a and b denote the same location. Names and data
// types other than their widths are not compared.
func Equal(a, b Storage) bool {
	if absent(a) || absent(b) {
		return absent(a) && absent(b)
	}
	if a.Domain() != b.Domain() {
		return false
	}

	switch x := a.(type) {
	case *RegisterStorage:
		y, ok := b.(*RegisterStorage)
		return ok && x.bitAddress == y.bitAddress && x.BitSize() == y.BitSize()
	case *FlagGroupStorage:
		y, ok := b.(*FlagGroupStorage)
		return ok && x.mask == y.mask
	case *StackStorage:
		y, ok := b.(*StackStorage)
		return ok && x.offset == y.offset && x.ByteSize() == y.ByteSize()
	case *FpuStackStorage:
		y, ok := b.(*FpuStackStorage)
		return ok && x.index == y.index
	case *TemporaryStorage:
		_, ok := b.(*TemporaryStorage)
		return ok
	}
	return false
}

func overlaps(a, b Storage) bool {
	if absent(a) || absent(b) || a.Domain() != b.Domain() {
		return false
	}

	switch x := a.(type) {
	case *RegisterStorage:
		if y, ok := b.(*RegisterStorage); ok {
			return x.bitAddress < y.end() && y.bitAddress < x.end()
		}
	case *FlagGroupStorage:
		if y, ok := b.(*FlagGroupStorage); ok {
			return x.mask&y.mask != 0
		}
	case *StackStorage:
		if y, ok := b.(*StackStorage); ok {
			return x.offset < y.end() && y.offset < x.end()
		}
	case *FpuStackStorage:
		if y, ok := b.(*FpuStackStorage); ok {
			return x.index == y.index
		}
	case *TemporaryStorage:
		// Same domain means same temporary.
		_, ok := b.(*TemporaryStorage)
		return ok
	}
	return false
}

func covers(a, b Storage) bool {
	if absent(a) || absent(b) {
		return false
	}
	if Equal(a, b) {
		return true
	}
	if a.Domain() != b.Domain() {
		return false
	}

	switch x := a.(type) {
	case *RegisterStorage:
		if y, ok := b.(*RegisterStorage); ok {
			return x.bitAddress <= y.bitAddress && y.end() <= x.end()
		}
	case *FlagGroupStorage:
		if y, ok := b.(*FlagGroupStorage); ok {
			return x.mask&y.mask == y.mask
		}
	case *StackStorage:
		if y, ok := b.(*StackStorage); ok {
			return x.offset <= y.offset && y.end() <= x.end()
		}
	}
	// FPU stack slots and temporaries only cover themselves.
	return false
}

// offsetOf is in bits for registers and flag groups, in bytes for stack
// slots.
func offsetOf(a, b Storage) int {
	if !covers(a, b) {
		return NoOffset
	}

	switch x := a.(type) {
	case *RegisterStorage:
		return b.(*RegisterStorage).bitAddress - x.bitAddress
	case *FlagGroupStorage:
		y := b.(*FlagGroupStorage)
		return bits.TrailingZeros64(y.mask) - bits.TrailingZeros64(x.mask)
	case *StackStorage:
		return b.(*StackStorage).offset - x.offset
	}
	return 0
}
