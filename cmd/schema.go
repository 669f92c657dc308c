package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kjourdan1/rgsweep/internal/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for rgsweep.yaml",
	Long: `Prints the embedded JSON Schema used to validate the optional
rgsweep.yaml configuration file. Useful for editor integration.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data := config.GetSchema()
		if len(data) == 0 {
			return fmt.Errorf("no schema embedded in this build")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
