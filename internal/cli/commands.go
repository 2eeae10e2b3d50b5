package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/seqkit/dedup"
	"github.com/katalvlaran/seqkit/growth"
	"github.com/katalvlaran/seqkit/mode"
	"github.com/katalvlaran/seqkit/pairsum"
	"github.com/katalvlaran/seqkit/prefixsum"
)

//----------------------------------------------------------------------------//
// mode
//----------------------------------------------------------------------------//

type topEntry struct {
	Value int `json:"value" yaml:"value"`
	Count int `json:"count" yaml:"count"`
}

type modeReport struct {
	Input []int      `json:"input" yaml:"input"`
	Mode  *int       `json:"mode" yaml:"mode"`
	Count int        `json:"count" yaml:"count"`
	Top   []topEntry `json:"top,omitempty" yaml:"top,omitempty"`
}

func (r modeReport) Text() string {
	if len(r.Top) > 0 {
		lines := make([]string, len(r.Top))
		for i, e := range r.Top {
			lines[i] = fmt.Sprintf("%d\t%d", e.Value, e.Count)
		}
		return strings.Join(lines, "\n")
	}
	if r.Mode == nil {
		return "none"
	}
	return fmt.Sprint(*r.Mode)
}

func (a *app) modeCmd() *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "mode [values...]",
		Short: "Print the most frequent value (earliest to reach the peak wins ties)",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input(args, false)
			if err != nil {
				return err
			}

			r := modeReport{Input: in}
			if v, c, ok := mode.ModeCount(in); ok {
				r.Mode, r.Count = &v, c
			}
			if cmd.Flags().Changed("top") {
				counted, err := mode.MostCommon(in, top)
				if err != nil {
					return err
				}
				r.Top = make([]topEntry, len(counted))
				for i, c := range counted {
					r.Top[i] = topEntry{Value: c.Value, Count: c.Count}
				}
			}
			a.logger.Debug("mode computed", zap.Int("len", len(in)), zap.Int("count", r.Count))

			return render(cmd.OutOrStdout(), a.format, r)
		},
	}
	cmd.Flags().IntVar(&top, "top", 1, "list the k most frequent values with their counts")

	return cmd
}

//----------------------------------------------------------------------------//
// dedup
//----------------------------------------------------------------------------//

type dedupReport struct {
	Input      []int `json:"input" yaml:"input"`
	Unique     []int `json:"unique" yaml:"unique"`
	Duplicates []int `json:"duplicates" yaml:"duplicates"`
}

func (r dedupReport) Text() string { return fmt.Sprint(r.Unique) }

func (a *app) dedupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedup [values...]",
		Short: "Remove repeated values, keeping first-occurrence order",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input(args, false)
			if err != nil {
				return err
			}
			r := dedupReport{Input: in, Unique: dedup.Unique(in), Duplicates: dedup.Duplicates(in)}

			return render(cmd.OutOrStdout(), a.format, r)
		},
	}
}

//----------------------------------------------------------------------------//
// pairs
//----------------------------------------------------------------------------//

type pairsReport struct {
	Input  []int    `json:"input" yaml:"input"`
	Target int      `json:"target" yaml:"target"`
	Pairs  [][2]int `json:"pairs" yaml:"pairs"`

	pairs []pairsum.Pair[int]
}

func (r pairsReport) Text() string { return fmt.Sprint(r.pairs) }

func (a *app) pairsCmd() *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "pairs --target T [distinct values...]",
		Short: "Print every unordered pair summing to the target",
		Long: `Print every unordered pair of distinct elements summing to --target.

The values must not repeat; with --random, distinct values are generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input(args, true)
			if err != nil {
				return err
			}
			if dups := dedup.Duplicates(in); len(dups) > 0 {
				a.logger.Warn("input has repeated values, pairs are unspecified", zap.Ints("repeated", dups))
			}

			pairs := pairsum.FindPairs(in, target)
			pairsum.SortPairs(pairs)
			r := pairsReport{Input: in, Target: target, Pairs: make([][2]int, len(pairs)), pairs: pairs}
			for i, p := range pairs {
				r.Pairs[i] = [2]int{p.Lo, p.Hi}
			}

			return render(cmd.OutOrStdout(), a.format, r)
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "target sum")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

//----------------------------------------------------------------------------//
// grow
//----------------------------------------------------------------------------//

type resizeEntry struct {
	Size        int `json:"size" yaml:"size"`
	OldCapacity int `json:"old_capacity" yaml:"old_capacity"`
	NewCapacity int `json:"new_capacity" yaml:"new_capacity"`
	CopyCost    int `json:"copy_cost" yaml:"copy_cost"`
}

type growReport struct {
	Count           int           `json:"count" yaml:"count"`
	InitialCapacity int           `json:"initial_capacity" yaml:"initial_capacity"`
	GrowthFactor    int           `json:"growth_factor" yaml:"growth_factor"`
	Items           []int         `json:"items" yaml:"items"`
	Capacity        int           `json:"capacity" yaml:"capacity"`
	CopyCost        int           `json:"copy_cost" yaml:"copy_cost"`
	Resizes         []resizeEntry `json:"resizes" yaml:"resizes"`
}

func (r growReport) Text() string {
	return fmt.Sprintf("items=%v size=%d capacity=%d resizes=%d copies=%d",
		r.Items, len(r.Items), r.Capacity, len(r.Resizes), r.CopyCost)
}

// simulate runs growth.Simulate with resize and append events routed to
// the logger.
func (a *app) simulate(n, capacity, factor int) (*growth.Result, error) {
	a.logger.Info("simulating growth",
		zap.Int("count", n), zap.Int("initial_capacity", capacity), zap.Int("growth_factor", factor))

	return growth.Simulate(n,
		growth.WithInitialCapacity(capacity),
		growth.WithGrowthFactor(factor),
		growth.WithOnResize(func(ev growth.ResizeEvent) {
			a.logger.Info(ev.String(),
				zap.Int("size", ev.Size),
				zap.Int("old_capacity", ev.OldCapacity),
				zap.Int("new_capacity", ev.NewCapacity),
				zap.Int("copy_cost", ev.CopyCost))
		}),
		growth.WithOnAppend(func(v, size, capacity int) {
			a.logger.Debug("append", zap.Int("value", v), zap.Int("size", size), zap.Int("capacity", capacity))
		}),
	)
}

func (a *app) growCmd() *cobra.Command {
	var n, capacity, factor int
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Simulate appends to a geometrically growing array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.simulate(n, capacity, factor)
			if err != nil {
				return err
			}

			r := growReport{
				Count:           n,
				InitialCapacity: capacity,
				GrowthFactor:    factor,
				Items:           res.Items,
				Capacity:        res.Capacity,
				CopyCost:        res.CopyCost,
				Resizes:         make([]resizeEntry, len(res.Resizes)),
			}
			for i, ev := range res.Resizes {
				r.Resizes[i] = resizeEntry(ev)
			}

			return render(cmd.OutOrStdout(), a.format, r)
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 6, "number of items to append")
	cmd.Flags().IntVar(&capacity, "capacity", growth.DefaultInitialCapacity, "initial capacity")
	cmd.Flags().IntVar(&factor, "factor", growth.DefaultGrowthFactor, "capacity multiplier per resize")

	return cmd
}

//----------------------------------------------------------------------------//
// prefix
//----------------------------------------------------------------------------//

type prefixReport struct {
	Input        []int `json:"input" yaml:"input"`
	RunningTotal []int `json:"running_total" yaml:"running_total"`
}

func (r prefixReport) Text() string { return fmt.Sprint(r.RunningTotal) }

func (a *app) prefixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefix [values...]",
		Short: "Print running totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.input(args, false)
			if err != nil {
				return err
			}
			r := prefixReport{Input: in, RunningTotal: prefixsum.RunningTotal(in)}

			return render(cmd.OutOrStdout(), a.format, r)
		},
	}
}

//----------------------------------------------------------------------------//
// demo
//----------------------------------------------------------------------------//

type demoReport struct {
	MostFrequent int      `json:"most_frequent" yaml:"most_frequent"`
	Unique       []int    `json:"unique" yaml:"unique"`
	Pairs        [][2]int `json:"pairs" yaml:"pairs"`
	Grown        []int    `json:"grown" yaml:"grown"`
	RunningTotal []int    `json:"running_total" yaml:"running_total"`

	pairs []pairsum.Pair[int]
}

func (r demoReport) Text() string {
	return strings.Join([]string{
		fmt.Sprintf("P1 Output: %d", r.MostFrequent),
		fmt.Sprintf("P2 Output: %v", r.Unique),
		fmt.Sprintf("P3 Output: %v", r.pairs),
		fmt.Sprintf("P4 Output: %v", r.Grown),
		fmt.Sprintf("P5 Output: %v", r.RunningTotal),
	}, "\n")
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm on its canonical example",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := demoReport{}
			r.MostFrequent, _ = mode.Mode([]int{1, 3, 2, 3, 4, 1, 3})
			r.Unique = dedup.Unique([]int{4, 5, 4, 6, 5, 7})

			r.pairs = pairsum.FindPairs([]int{1, 2, 3, 4}, 5)
			pairsum.SortPairs(r.pairs)
			r.Pairs = make([][2]int, len(r.pairs))
			for i, p := range r.pairs {
				r.Pairs[i] = [2]int{p.Lo, p.Hi}
			}

			res, err := a.simulate(6, growth.DefaultInitialCapacity, growth.DefaultGrowthFactor)
			if err != nil {
				return err
			}
			r.Grown = res.Items
			r.RunningTotal = prefixsum.RunningTotal([]int{1, 2, 3, 4})

			return render(cmd.OutOrStdout(), a.format, r)
		},
	}
}
