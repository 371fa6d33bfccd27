package cmd

import (
	"github.com/mweagle/keygen/app"
	"github.com/mweagle/keygen/config"
	"github.com/mweagle/keygen/generator"
	"github.com/spf13/cobra"
)

type generateArgs struct {
	distribution  string
	count         int
	multiplicity  int
	seed          uint64
	keyType       string
	matchingRate  float64
	keyFile       string
	format        string
	histogramFile string
}

var genArgs generateArgs

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a single key sequence",
	Example: `  keygen generate --dist UNIQUE --count 1000000 --output keys.bin
  keygen generate --dist UNIQUE --count 1000000 --matching-rate 0.5 --format text --output probe.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, planErr := genArgs.plan(cmd)
		if planErr != nil {
			return planErr
		}
		return runPlan(cmd, plan)
	},
}

// plan converts the flags into a single run plan, validated the same way as
// a plan file.
func (ga *generateArgs) plan(cmd *cobra.Command) (*config.Plan, error) {
	run := config.Run{
		Name:          ga.distribution,
		Distribution:  ga.distribution,
		Count:         ga.count,
		KeyFile:       ga.keyFile,
		HistogramFile: ga.histogramFile,
	}
	if cmd.Flags().Changed("matching-rate") {
		matchingRate := ga.matchingRate
		run.MatchingRate = &matchingRate
	}
	plan := &config.Plan{
		KeyType:      ga.keyType,
		Seed:         ga.seed,
		Multiplicity: ga.multiplicity,
		Workers:      1,
		Format:       ga.format,
		Runs:         []config.Run{run},
	}
	plan.ApplyDefaults()
	if validateErr := plan.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return plan, nil
}

func init() {
	flags := generateCmd.Flags()
	flags.StringVar(&genArgs.distribution, "dist", "", "Key distribution. One of: {GAUSSIAN, GEOMETRIC, UNIFORM, UNIQUE, SAME}.")
	flags.IntVar(&genArgs.count, "count", 1_000_000, "Number of keys to generate.")
	flags.IntVar(&genArgs.multiplicity, "multiplicity", generator.DefaultMultiplicity, "UNIFORM keys are drawn from [1, count/multiplicity].")
	flags.Uint64Var(&genArgs.seed, "seed", 0, "Seed for reproducible keys. 0 seeds from the operating system.")
	flags.StringVar(&genArgs.keyType, "key-type", config.KeyTypeInt64, "Key type. One of: {int32, int64, uint32, uint64}.")
	flags.Float64Var(&genArgs.matchingRate, "matching-rate", 1, "Turn the keys into a probe set hitting with this rate.")
	flags.StringVar(&genArgs.keyFile, "output", "", "Path for the generated keys. Keys are not written when empty.")
	flags.StringVar(&genArgs.format, "format", "binary", "Key file format. One of: {binary, text}.")
	flags.StringVar(&genArgs.histogramFile, "histogram", "", "Path for a histogram image of the keys, e.g. keys.png.")
	_ = generateCmd.MarkFlagRequired("dist")

	rootCmd.AddCommand(generateCmd)
}

func runPlan(cmd *cobra.Command, plan *config.Plan) error {
	results, runErr := app.NewRunner(plan, logger).Run(cmd.Context())
	if runErr != nil {
		return runErr
	}
	return app.RenderTable(cmd.OutOrStdout(), results)
}
