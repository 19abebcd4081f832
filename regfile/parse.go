package regfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BarrensZeppelin/storage"
	"github.com/BarrensZeppelin/storage/types"
)

var ErrSyntax = errors.New("invalid storage reference")

// ParseStorage resolves a storage reference. A reference is either the name
// of a storage of the register file or one of
//
//	stack:<offset>:<bytes>
//	fpu:<index>
//	tmp:<number>:<bits>
//
// Numbers may be given in any base accepted by strconv.ParseInt.
func (rf *RegisterFile) ParseStorage(text string) (storage.Storage, error) {
	if stg, ok := rf.byName[text]; ok {
		return stg, nil
	}

	kind, rest, found := strings.Cut(text, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, text)
	}
	args := strings.Split(rest, ":")

	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, text, err)
		}
		nums[i] = int(n)
	}

	arity := func(n int) error {
		if len(nums) != n {
			return fmt.Errorf("%w: %q: %s takes %d arguments", ErrSyntax, text, kind, n)
		}
		return nil
	}

	var (
		stg storage.Storage
		err error
	)
	switch kind {
	case "stack":
		if err = arity(2); err == nil {
			stg, err = storage.NewStackStorage(nums[0], types.CreateWord(nums[1]*8))
		}
	case "fpu":
		if err = arity(1); err == nil {
			stg, err = storage.NewFpuStackStorage(nums[0], types.Real80)
		}
	case "tmp":
		if err = arity(2); err == nil {
			stg, err = storage.NewTemporary("", nums[0], types.CreateWord(nums[1]))
		}
	default:
		err = fmt.Errorf("%w: %q: unknown kind %q", ErrSyntax, text, kind)
	}
	if err != nil {
		return nil, err
	}
	return stg, nil
}
