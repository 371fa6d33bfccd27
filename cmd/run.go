package cmd

import (
	"github.com/mweagle/keygen/config"
	"github.com/spf13/cobra"
)

var planFile string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate every key sequence in a YAML plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, loadErr := config.Load(planFile)
		if loadErr != nil {
			return loadErr
		}
		logger.Info("Loaded plan",
			"path", planFile,
			"runs", len(plan.Runs),
			"keyType", plan.KeyType,
			"workers", plan.Workers)
		return runPlan(cmd, plan)
	},
}

func init() {
	runCmd.Flags().StringVar(&planFile, "plan", "", "Full filepath to the YAML plan.")
	_ = runCmd.MarkFlagRequired("plan")
	rootCmd.AddCommand(runCmd)
}
