package cmd

import (
	"fmt"

	"github.com/mweagle/keygen/generator"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported key distributions",
	RunE: func(cmd *cobra.Command, args []string) error {
		tableData := pterm.TableData{
			{"Distribution", "Description"},
		}
		for _, eachDist := range generator.Distributions() {
			tableData = append(tableData, []string{eachDist.String(), eachDist.Description()})
		}
		rendered, renderErr := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
		if renderErr != nil {
			return renderErr
		}
		_, writeErr := fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return writeErr
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
