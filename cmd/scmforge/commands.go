// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scmforge/config"
	"github.com/katalvlaran/scmforge/distribution"
	"github.com/katalvlaran/scmforge/export"
	"github.com/katalvlaran/scmforge/scm"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scmforge",
		Short: "scmforge - synthetic datasets from structural causal models",
		Long: `scmforge builds a causal DAG of variables, each with its own noise
mixture and a formula mechanism, and generates a dataset consistent with it.

Environment:
  SCMFORGE_SAMPLE_SIZE  rows per variable (default 1000)
  SCMFORGE_SEED         sampling seed, 0 = random (default 0)
  SCMFORGE_LOG_LEVEL    debug|info|warn|error (default info)
  SCMFORGE_LOG_FORMAT   text|json (default text)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scmforge v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "families",
		Short: "List noise distribution families and their parameters",
		RunE:  runFamilies,
	})

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a model file and compile every mechanism",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringP("model", "m", "", "Model file (.yaml, .yml or .toml)")
	_ = validateCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(validateCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dataset from a model file",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringP("model", "m", "", "Model file (.yaml, .yml or .toml)")
	generateCmd.Flags().StringP("output", "o", "-", "Output path; - writes CSV to stdout")
	generateCmd.Flags().String("format", "csv", "Output format: csv or sqlite")
	generateCmd.Flags().String("table", export.DefaultTable, "SQLite table name")
	addSamplingFlags(generateCmd)
	_ = generateCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(generateCmd)

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate a dataset and print per-variable statistics",
		RunE:  runDescribe,
	}
	describeCmd.Flags().StringP("model", "m", "", "Model file (.yaml, .yml or .toml)")
	describeCmd.Flags().Bool("correlation", false, "Also print the correlation matrix")
	addSamplingFlags(describeCmd)
	_ = describeCmd.MarkFlagRequired("model")
	rootCmd.AddCommand(describeCmd)

	return rootCmd
}

func addSamplingFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Sampling seed (overrides file and SCMFORGE_SEED)")
	cmd.Flags().Int("samples", 0, "Rows per variable (overrides file and SCMFORGE_SAMPLE_SIZE)")
}

func runFamilies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tPARAMETER\tKIND\tMIN\tMAX\tDEFAULT")
	for _, name := range distribution.Names() {
		fam, err := distribution.Lookup(name)
		if err != nil {
			return err
		}
		for _, p := range fam.Params {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\t%g\n", name, p.Name, p.Kind, p.Min, p.Max, p.Default)
		}
	}

	return w.Flush()
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, _, err := loadModel(cmd)
	if err != nil {
		return err
	}
	if err := m.Check(); err != nil {
		return err
	}
	order, err := m.TopologicalOrder()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ok: %d variables, %d edges\n", len(m.Variables()), len(m.Edges()))
	fmt.Fprintf(out, "order: %s\n", strings.Join(order, " → "))

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, log, err := loadModel(cmd)
	if err != nil {
		return err
	}
	if err := m.Lock(); err != nil {
		return err
	}
	tbl, err := m.Dataset()
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "csv":
		if output == "-" {
			return export.WriteCSV(cmd.OutOrStdout(), tbl)
		}
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := export.WriteCSV(f, tbl); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	case "sqlite":
		if output == "-" {
			return errors.New("sqlite output needs a file path (-o)")
		}
		table, _ := cmd.Flags().GetString("table")
		if err := export.WriteSQLite(cmd.Context(), output, tbl, table); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want csv or sqlite)", format)
	}
	log.Info("dataset written", "path", output, "format", format, "rows", tbl.Rows(), "seed", m.Seed())

	return nil
}

func runDescribe(cmd *cobra.Command, args []string) error {
	m, _, err := loadModel(cmd)
	if err != nil {
		return err
	}
	if err := m.Lock(); err != nil {
		return err
	}
	tbl, err := m.Dataset()
	if err != nil {
		return err
	}
	summaries, err := tbl.Summaries()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rows: %d  seed: %d\n\n", tbl.Rows(), m.Seed())
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tMEAN\tSTD\tMIN\tQ1\tMEDIAN\tQ3\tMAX")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\n",
			s.ID, s.Name, s.Kind, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if withCorr, _ := cmd.Flags().GetBool("correlation"); withCorr {
		corr, err := tbl.Correlation()
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "\t"+strings.Join(tbl.IDs(), "\t"))
		for i, id := range tbl.IDs() {
			cells := make([]string, len(corr[i]))
			for j, r := range corr[i] {
				cells[j] = fmt.Sprintf("%+.3f", r)
			}
			fmt.Fprintln(w, id+"\t"+strings.Join(cells, "\t"))
		}
		return w.Flush()
	}

	return nil
}

// loadModel reads env and the model file and builds the model. Precedence
// for seed and sample size: flag, then model file, then environment.
func loadModel(cmd *cobra.Command) (*scm.Model, *slog.Logger, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, nil, err
	}
	log, err := env.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	path, _ := cmd.Flags().GetString("model")
	mf, err := config.LoadModelFile(path)
	if err != nil {
		return nil, nil, err
	}

	opts := []scm.Option{scm.WithLogger(log)}
	if mf.SampleSize == 0 {
		opts = append(opts, scm.WithSampleSize(env.SampleSize))
	}
	if mf.Seed == 0 && env.Seed != 0 {
		opts = append(opts, scm.WithSeed(env.Seed))
	}
	if f := cmd.Flags().Lookup("samples"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("samples")
		if n < 1 {
			return nil, nil, fmt.Errorf("--samples must be >= 1, got %d", n)
		}
		opts = append(opts, scm.WithSampleSize(n))
	}
	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		seed, _ := cmd.Flags().GetUint64("seed")
		opts = append(opts, scm.WithSeed(seed))
	}

	m, err := config.Build(mf, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("model loaded", "path", path, "variables", len(m.Variables()))

	return m, log, nil
}
