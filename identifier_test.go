package storage

import (
	"testing"

	"github.com/BarrensZeppelin/storage/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier(t *testing.T) {
	f := newFixture()

	t.Run("New", func(t *testing.T) {
		id, err := NewIdentifier("retval", types.Int32, f.eax)
		require.NoError(t, err)
		assert.Equal(t, "retval", id.Name())
		assert.Equal(t, types.Int32, id.DataType())
		assert.Same(t, f.eax, id.Storage())
	})

	t.Run("Invalid", func(t *testing.T) {
		var nilReg *RegisterStorage
		_, err := NewIdentifier("x", types.Word32, nilReg)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		_, err = NewIdentifier("", types.Word32, f.eax)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		_, err = NewIdentifier("x", nil, f.eax)
		assert.ErrorIs(t, err, ErrInvalidIdentifier)
		assert.Panics(t, func() { IdentifierFor(nil) })
	})

	t.Run("Algebra", func(t *testing.T) {
		eax, ah, al := IdentifierFor(f.eax), IdentifierFor(f.ah), IdentifierFor(f.al)
		assert.Equal(t, "ah", ah.Name())
		assert.Equal(t, types.Byte, ah.DataType())

		assert.True(t, eax.OverlapsWith(ah))
		assert.True(t, eax.Covers(al))
		assert.False(t, al.OverlapsWith(ah))
		assert.False(t, eax.OverlapsWith(nil))

		var none *Identifier
		assert.False(t, none.Covers(eax))

		zero := &Identifier{}
		assert.False(t, zero.OverlapsWith(eax))
		assert.False(t, eax.OverlapsWith(zero))
		assert.False(t, eax.Covers(zero))
	})
}
