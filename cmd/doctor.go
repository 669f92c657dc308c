package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/kjourdan1/rgsweep/internal/azcli"
	"github.com/kjourdan1/rgsweep/internal/doctor"
	"github.com/kjourdan1/rgsweep/internal/output"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check prerequisites and environment readiness",
	Long: `Verify that the Azure CLI is installed, an authenticated session exists,
and subscriptions are visible.

Each check reports ✅ (pass), ❌ (fail), or ⚠️ (warning) with an
actionable fix suggestion.

Exit code 0 if all critical checks pass, 1 otherwise.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	output.Init(verbosity > 0, false, jsonOutput)

	ctx := context.Background()
	summary := doctor.RunAll(ctx, azcli.NewRunner())

	doctor.PrintResults(summary)

	if summary.HasFailure {
		os.Exit(1)
	}
	return nil
}
