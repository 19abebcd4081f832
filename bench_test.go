package storage_test

import (
	"fmt"
	"testing"

	"github.com/BarrensZeppelin/storage"
	"github.com/BarrensZeppelin/storage/types"
)

var blackHole any

// Benchmark interference queries against a frame with many live storages.
func BenchmarkSetInterference(b *testing.B) {
	for _, n := range [...]int{16, 256} {
		live := storage.NewSet()
		other := storage.NewSet()
		for i := 0; i < n; i++ {
			live.Add(storage.Reg32(fmt.Sprintf("r%d", i), i))
			live.Add(storage.Must(storage.NewStackStorage(-4*(i+1), types.Word32)))
			other.Add(storage.Must(storage.NewTemporary("", i, types.Word32)))
		}
		other.Add(storage.Must(storage.NewStackStorage(2, types.Word16)))

		b.Run(fmt.Sprintf("Live=%d", live.Len()), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				blackHole = live.Interferes(other)
			}
		})
	}
}
