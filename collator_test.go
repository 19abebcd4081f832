package storage_test

import (
	"testing"

	"github.com/BarrensZeppelin/storage"
	"github.com/BarrensZeppelin/storage/internal/slices"
	"github.com/BarrensZeppelin/storage/types"
	"github.com/stretchr/testify/assert"
)

func TestStorageCollator(t *testing.T) {
	r0 := storage.Reg32("r0", 0)
	r1 := storage.Reg32("r1", 1)
	r2 := storage.Reg32("r2", 2)
	r3 := storage.Reg32("r3", 3)
	collator := storage.NewStorageCollator(r0, r1, r2)

	id0, id1, id2, id3 := storage.IdentifierFor(r0), storage.IdentifierFor(r1),
		storage.IdentifierFor(r2), storage.IdentifierFor(r3)

	t.Run("Listed", func(t *testing.T) {
		assert.Negative(t, collator.Compare(id1, id2))
		assert.Positive(t, collator.Compare(id2, id1))
		assert.Negative(t, collator.Compare(id0, id1))
		assert.Zero(t, collator.Compare(id1, id1))
	})

	t.Run("SubRegisterSharesRank", func(t *testing.T) {
		r1l := storage.Must(storage.NewSubRegister(r1, "r1l", 0, 16))
		assert.Zero(t, collator.Compare(storage.IdentifierFor(r1l), id1))
	})

	t.Run("Unlisted", func(t *testing.T) {
		for _, id := range []*storage.Identifier{id0, id1, id2} {
			assert.Negative(t, collator.Compare(id, id3))
			assert.Positive(t, collator.Compare(id3, id))
		}

		tmp := storage.IdentifierFor(storage.Must(storage.NewTemporary("t", 0, types.Word32)))
		assert.Zero(t, collator.Compare(id3, tmp), "unlisted domains share the last rank")
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Negative(t, collator.Compare(nil, id0))
		assert.Negative(t, collator.Compare(nil, id3))
		assert.Positive(t, collator.Compare(id3, nil))
		assert.Zero(t, collator.Compare(nil, nil))

		zero := &storage.Identifier{}
		assert.Negative(t, collator.Compare(zero, id0))
		assert.Positive(t, collator.Compare(id3, zero))
		assert.Zero(t, collator.Compare(zero, nil))
	})

	t.Run("Rank", func(t *testing.T) {
		rank, ok := collator.Rank(r2.Domain())
		assert.True(t, ok)
		assert.Equal(t, 2, rank)
		_, ok = collator.Rank(r3.Domain())
		assert.False(t, ok)
	})

	t.Run("Duplicates", func(t *testing.T) {
		c := storage.NewStorageCollator(r1, r0, storage.Reg16("r1w", 1))
		rank, _ := c.Rank(r1.Domain())
		assert.Equal(t, 0, rank, "first occurrence wins")
	})

	t.Run("Sort", func(t *testing.T) {
		tmp := storage.IdentifierFor(storage.Must(storage.NewTemporary("t", 0, types.Word32)))
		ids := []*storage.Identifier{id3, tmp, id2, nil, id0, id1}
		collator.Sort(ids)

		names := slices.Map(ids, func(id *storage.Identifier) string {
			if id == nil {
				return "<nil>"
			}
			return id.Name()
		})
		assert.Equal(t, []string{"<nil>", "r0", "r1", "r2", "r3", "t"}, names)
	})
}
