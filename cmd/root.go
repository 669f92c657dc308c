// Package cmd implements the Cobra-based CLI for rgsweep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kjourdan1/rgsweep/internal/azcli"
	"github.com/kjourdan1/rgsweep/internal/classify"
	"github.com/kjourdan1/rgsweep/internal/config"
	"github.com/kjourdan1/rgsweep/internal/confirm"
	"github.com/kjourdan1/rgsweep/internal/deleter"
	"github.com/kjourdan1/rgsweep/internal/exitcode"
	"github.com/kjourdan1/rgsweep/internal/inventory"
	"github.com/kjourdan1/rgsweep/internal/output"
	"github.com/kjourdan1/rgsweep/internal/report"
)

var (
	cfgFile         string
	verbosity       int
	quiet           bool
	jsonOutput      bool // --json flag for machine-readable output
	dryRun          bool
	excludePatterns []string
	workers         int
)

// rootCmd is the top-level command for rgsweep.
var rootCmd = &cobra.Command{
	Use:   "rgsweep",
	Short: "Bulk-delete Azure resource groups across all subscriptions",
	Long: `rgsweep enumerates every subscription visible to the active az session,
lists their resource groups, and deletes everything that does not match an
exclusion pattern.

Patterns are matched against the resource group name, case-insensitively,
first as an exact string and then as a regular expression. Matching groups
are kept; everything else is deleted after an interactive confirmation.

Deletion requests are issued through "az group delete --no-wait", so az
acknowledges acceptance rather than completion. Deletion is IRREVERSIBLE.

Requires the Azure CLI, installed and authenticated (az login).

Examples:
  rgsweep --exclude rg-prod --exclude rg-important
  rgsweep --exclude '^rg-keep-' --workers 10
  rgsweep --dry-run`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSweep,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: rgsweep.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v, -vv)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")

	rootCmd.Flags().StringArrayVar(&excludePatterns, "exclude", nil, "resource group name pattern to keep (exact or regex, repeatable)")
	rootCmd.Flags().IntVar(&workers, "workers", deleter.DefaultWorkers, "number of parallel delete workers")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress informational logs (warnings and errors still print)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "simulate deletion without calling az group delete")

	_ = viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	_ = viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))
	_ = viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rgsweep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("RGSWEEP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbosity > 0 {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runSweep(cmd *cobra.Command, _ []string) error {
	output.Init(verbosity > 0, viper.GetBool("quiet"), jsonOutput)

	// Fail fast on a malformed config file before touching Azure.
	if path := viper.ConfigFileUsed(); path != "" {
		if _, err := config.Load(path); err != nil {
			return exitcode.Wrap(exitcode.Generic, output.WrapErrorWithFix(err,
				"invalid configuration",
				"Check "+path+" against `rgsweep schema` expectations"))
		}
		output.Debug("using config file", "path", path)
	}

	patterns := viper.GetStringSlice("exclude")
	poolWidth := viper.GetInt("workers")
	simulate := viper.GetBool("dry_run")

	ctx := context.Background()
	cli := azcli.NewClient(nil)

	groups, err := inventory.NewCollector(cli).Collect(ctx)
	if err != nil {
		return exitcode.Wrap(exitcode.Generic, err)
	}

	partition := classify.Split(groups, patterns)

	gate := confirm.NewGate(nil, simulate, os.Stdout)
	decision, err := gate.Decide(partition)
	if err != nil {
		if errors.Is(err, confirm.ErrCancelled) {
			output.Info("operation cancelled")
			return nil
		}
		return err
	}
	if decision == confirm.Rejected {
		return nil
	}

	outcome := deleter.New(cli, poolWidth, simulate).Run(ctx, partition.ToDelete)

	report.Summary(os.Stdout, partition, outcome)

	if n := len(outcome.Failed); n > 0 {
		return exitcode.Wrap(exitcode.Generic, fmt.Errorf("%d resource group deletion(s) failed", n))
	}
	return nil
}
