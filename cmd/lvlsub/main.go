// Command lvlsub runs the active-subspace pipeline end to end on one of
// the built-in benchmark functions and writes the diagnostic plots plus a
// JSON snapshot of the sample set.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsub/cluster"
	"github.com/katalvlaran/lvlsub/plot"
	"github.com/katalvlaran/lvlsub/sampling"
	"github.com/katalvlaran/lvlsub/subspace"
)

var (
	cfgPath string
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "lvlsub",
		Short:         "Active-subspace estimation toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(estimateCmd(), clusterCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvlsub:", err)
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the active subspace and render diagnostics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger()
			cfg, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return err
			}

			fn, err := cfg.BuildFunctional()
			if err != nil {
				return err
			}
			set, err := sampling.New(cfg.Samples, cfg.Dim, sampling.WithSeed(cfg.Seed))
			if err != nil {
				return err
			}
			if err := set.Generate(false); err != nil {
				return err
			}
			log.Info().Int("samples", cfg.Samples).Int("dim", cfg.Dim).
				Str("function", cfg.Function).Msg("sample set generated")

			eng, err := subspace.New(cfg.Eigen, fn, set,
				subspace.WithSeed(cfg.Seed), subspace.WithLogger(log))
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			_, vals, err := eng.Estimate(ctx)
			if err != nil {
				return err
			}
			log.Info().Floats64("eigenvalues", vals[:cfg.Eigen]).Msg("subspace estimated")

			if _, _, err = eng.Partition(cfg.Active); err != nil {
				return err
			}

			boot, err := eng.Bootstrap(ctx, cfg.Replicates)
			if err != nil {
				return err
			}
			log.Info().Int("replicates", boot.Replicates).
				Floats64("distance_mean", boot.DistMean).Msg("bootstrap complete")

			vecs, err := eng.Eigenvectors()
			if err != nil {
				return err
			}
			if err := plot.Eigenvalues(filepath.Join(cfg.OutDir, "eigenvalues.png"), vals,
				plot.WithEnvelope(boot.EigMin, boot.EigMax)); err != nil {
				return err
			}
			if err := plot.SubspaceDistance(filepath.Join(cfg.OutDir, "distance.png"), boot); err != nil {
				return err
			}
			if err := plot.Eigenvectors(filepath.Join(cfg.OutDir, "eigenvectors.png"), vecs, cfg.Eigen); err != nil {
				return err
			}

			if err := set.AssignValues(func(x []float64) float64 {
				v, ferr := fn.Evaluate(x)
				if ferr != nil {
					log.Warn().Err(ferr).Msg("evaluation failed, storing 0")

					return 0
				}

				return v
			}); err != nil {
				return err
			}
			if cfg.Active <= 2 {
				y, perr := eng.ActiveCoordinates()
				if perr != nil {
					return perr
				}
				values, verr := set.Values()
				if verr != nil {
					return verr
				}
				if err := plot.SufficientSummary(filepath.Join(cfg.OutDir, "summary.png"), y, values); err != nil {
					return err
				}
			}

			out := filepath.Join(cfg.OutDir, "samples.json.zst")
			if err := set.Save(out); err != nil {
				return err
			}
			log.Info().Str("path", out).Msg("sample set saved")

			return nil
		},
	}
}

func clusterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cluster",
		Short: "Group the samples with k-means and save the result",
		RunE: func(_ *cobra.Command, _ []string) error {
			log := newLogger()
			cfg, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
				return err
			}

			set, err := sampling.New(cfg.Samples, cfg.Dim, sampling.WithSeed(cfg.Seed))
			if err != nil {
				return err
			}
			if err := set.Generate(false); err != nil {
				return err
			}

			c, err := cluster.New(set, cfg.Clusters,
				cluster.WithSeed(cfg.Seed), cluster.WithLogger(log))
			if err != nil {
				return err
			}
			if err := c.Detect(); err != nil {
				return err
			}

			groups, err := c.Clusters()
			if err != nil {
				return err
			}
			for g, members := range groups {
				log.Info().Int("cluster", g).Int("size", len(members)).Msg("cluster detected")
			}

			rec, err := c.Snapshot()
			if err != nil {
				return err
			}
			out := filepath.Join(cfg.OutDir, "clusters.json.zst")
			if err := sampling.WriteRecord(out, rec); err != nil {
				return err
			}
			log.Info().Str("path", out).Msg("clustering saved")

			return nil
		},
	}
}
