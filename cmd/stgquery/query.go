package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/BarrensZeppelin/storage"
	"github.com/BarrensZeppelin/storage/internal/slices"
)

func (a *app) parseAll(refs []string) ([]storage.Storage, error) {
	stgs := make([]storage.Storage, len(refs))
	for i, ref := range refs {
		stg, err := a.rf.ParseStorage(ref)
		if err != nil {
			return nil, err
		}
		stgs[i] = stg
	}
	return stgs, nil
}

func newOverlapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <storage> <storage>",
		Short: "outputs overlap, containment and offset of two storages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stgs, err := a.parseAll(args)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Storage", "Other", "Overlaps", "Covers", "Offset"})
			for _, p := range [][2]storage.Storage{{stgs[0], stgs[1]}, {stgs[1], stgs[0]}} {
				x, y := p[0], p[1]
				table.Append([]string{
					x.String(),
					y.String(),
					strconv.FormatBool(x.OverlapsWith(y)),
					strconv.FormatBool(x.Covers(y)),
					strconv.Itoa(x.OffsetOf(y)),
				})
			}
			table.Render()
			return nil
		},
	}
}

// matrixCell summarizes how row relates to col: "=" equal, "C" covers, "O"
// overlaps, "." unrelated.
func matrixCell(row, col storage.Storage) string {
	switch {
	case storage.Equal(row, col):
		return "="
	case row.Covers(col):
		return "C"
	case row.OverlapsWith(col):
		return "O"
	}
	return "."
}

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix [storage...]",
		Short: "outputs the relation of every pair of storages (all of the register file by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = a.rf.Names()
			}
			stgs, err := a.parseAll(args)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader(append([]string{""}, slices.Map(stgs, storage.Storage.String)...))
			for _, row := range stgs {
				cells := []string{row.String()}
				for _, col := range stgs {
					cells = append(cells, matrixCell(row, col))
				}
				table.Append(cells)
			}
			table.Render()
			return nil
		},
	}
}

func newOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order <storage>...",
		Short: "outputs storages in the register file's collation order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stgs, err := a.parseAll(args)
			if err != nil {
				return err
			}

			ids := slices.Map(stgs, storage.IdentifierFor)
			collator := a.rf.Collator()
			collator.Sort(ids)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Identifier", "Domain", "Rank"})
			for _, id := range ids {
				rank := "-"
				if r, ok := collator.Rank(id.Storage().Domain()); ok {
					rank = strconv.Itoa(r)
				}
				table.Append([]string{id.Name(), id.Storage().Domain().String(), rank})
			}
			table.Render()
			return nil
		},
	}
}
