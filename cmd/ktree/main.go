// ktree drives synthetic workloads against the collection flavors and
// reports the shape and health of the backing B+ tree.
//
// Usage:
//
//	ktree fill --flavor bag --order 64 --count 100000 --pattern random
//	ktree check --count 20000
//	ktree dump --config workload.toml
//
// fill builds one collection and logs its shape; check sweeps a range
// of orders with mixed insert/delete traffic and verifies every
// structural invariant; dump loads entries from a TOML file into a
// sorted map and prints them in key order.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	kaos "github.com/alex4998/KaosCollections"
	"github.com/alex4998/KaosCollections/btree"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:           "ktree",
		Short:         "workload driver for the KaosCollections B+ tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFillCommand(logger))
	root.AddCommand(newCheckCommand(logger))
	root.AddCommand(newDumpCommand())

	if err := root.Execute(); err != nil {
		logger.Error("ktree failed", zap.Error(err))
		os.Exit(1)
	}
}

func newFillCommand(logger *zap.Logger) *cobra.Command {
	var (
		flavor  string
		order   int
		count   int
		pattern string
		seed    int64
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "build one collection and report its shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := makeKeys(pattern, count, seed)
			if err != nil {
				return err
			}
			start := time.Now()
			var stats btree.Stats
			switch flavor {
			case "set":
				s := kaos.NewSet[int](kaos.WithOrder(order))
				s.AddAll(keys...)
				stats = s.Stats()
			case "bag":
				b := kaos.NewBag[int](kaos.WithOrder(order))
				b.AddAll(keys...)
				stats = b.Stats()
			default:
				return errors.Errorf("unknown flavor %q", flavor)
			}
			logger.Info("filled",
				zap.String("flavor", flavor),
				zap.String("pattern", pattern),
				zap.Int("order", order),
				zap.Int("count", stats.Count),
				zap.Int("height", stats.Height),
				zap.Int("leaves", stats.Leaves),
				zap.Int("branches", stats.Branches),
				zap.Float64("leaf_fill", stats.LeafFill),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&flavor, "flavor", "set", "set or bag")
	cmd.Flags().IntVar(&order, "order", btree.DefaultOrder, "branching factor")
	cmd.Flags().IntVar(&count, "count", 100000, "number of keys")
	cmd.Flags().StringVar(&pattern, "pattern", "random", "ascending, descending or random")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random pattern seed")
	return cmd
}

func newCheckCommand(logger *zap.Logger) *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "sweep orders with mixed traffic and verify invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			for _, order := range []int{btree.MinOrder, 5, 6, 32, btree.DefaultOrder, btree.MaxOrder} {
				bag := kaos.NewBagFunc(kaos.Ordered[int](), kaos.WithOrder(order))
				if err := churn(bag, rng, count); err != nil {
					return errors.Wrapf(err, "order %d", order)
				}
				logger.Info("order verified",
					zap.Int("order", order),
					zap.Int("residual", bag.Len()),
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 20000, "operations per order")
	cmd.Flags().Int64Var(&seed, "seed", 1, "traffic seed")
	return cmd
}

// churn applies mixed insert/delete traffic and re-verifies the tree
// at intervals.
func churn(bag *kaos.Bag[int], rng *rand.Rand, count int) error {
	for i := 0; i < count; i++ {
		key := rng.Intn(count / 4)
		if rng.Intn(3) == 0 {
			bag.Remove(key)
		} else {
			bag.Add(key)
		}
		if i%1000 == 999 {
			if err := bag.Check(); err != nil {
				return errors.Wrapf(err, "after %d operations", i+1)
			}
		}
	}
	return bag.Check()
}

type workload struct {
	Order   int     `toml:"order"`
	Entries []entry `toml:"entry"`
}

type entry struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

func newDumpCommand() *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "load a TOML workload into a sorted map and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var w workload
			if _, err := toml.DecodeFile(config, &w); err != nil {
				return errors.Wrap(err, "decode workload")
			}
			if w.Order == 0 {
				w.Order = btree.DefaultOrder
			}
			m := kaos.NewMap[string, string](kaos.WithOrder(w.Order))
			for _, e := range w.Entries {
				m.Set(e.Key, e.Value)
			}
			for key, val := range m.All() {
				fmt.Printf("%s: %s\n", key, val)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&config, "config", "workload.toml", "TOML workload file")
	return cmd
}

func makeKeys(pattern string, count int, seed int64) ([]int, error) {
	keys := make([]int, count)
	switch pattern {
	case "ascending":
		for i := range keys {
			keys[i] = i
		}
	case "descending":
		for i := range keys {
			keys[i] = count - i
		}
	case "random":
		rng := rand.New(rand.NewSource(seed))
		for i := range keys {
			keys[i] = rng.Intn(count)
		}
	default:
		return nil, errors.Errorf("unknown pattern %q", pattern)
	}
	return keys, nil
}
