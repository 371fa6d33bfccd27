package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mweagle/keygen/config"
	"github.com/mweagle/keygen/digest"
	"github.com/mweagle/keygen/generator"
	"github.com/mweagle/keygen/keyio"
	"github.com/mweagle/keygen/stats"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// RunResult describes one generated key sequence.
type RunResult struct {
	Name          string
	Distribution  string
	Count         int
	KeyType       string
	MatchingRate  *float64
	Stats         *stats.AggregatedStatistics
	Distinct      int
	Digest        uint64
	MissFraction  float64
	Elapsed       time.Duration
	KeyFile       string
	HistogramFile string
}

// Runner executes every run of a plan. Runs share nothing but the plan, so
// they are generated concurrently, each into its own buffer.
type Runner struct {
	plan *config.Plan
	log  *slog.Logger
}

func NewRunner(plan *config.Plan, log *slog.Logger) *Runner {
	return &Runner{
		plan: plan,
		log:  log,
	}
}

// Run returns one result per plan run, in plan order.
func (r *Runner) Run(ctx context.Context) ([]*RunResult, error) {
	if r.plan.OutputDir != "" {
		if mkdirErr := os.MkdirAll(r.plan.OutputDir, 0700); mkdirErr != nil {
			return nil, mkdirErr
		}
	}
	format, formatErr := keyio.ParseFormat(r.plan.Format)
	if formatErr != nil {
		return nil, formatErr
	}

	results := make([]*RunResult, len(r.plan.Runs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.plan.Workers)
	for i := range r.plan.Runs {
		runIndex := i
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}
			eachRun := r.plan.Runs[runIndex]
			result, runErr := r.execute(runIndex, eachRun, format)
			if runErr != nil {
				return fmt.Errorf("run %s: %w", eachRun.Name, runErr)
			}
			results[runIndex] = result
			return nil
		})
	}
	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}
	return results, nil
}

func (r *Runner) execute(runIndex int, run config.Run, format keyio.Format) (*RunResult, error) {
	switch r.plan.KeyType {
	case config.KeyTypeInt32:
		return executeRun[int32](r, runIndex, run, format)
	case config.KeyTypeInt64:
		return executeRun[int64](r, runIndex, run, format)
	case config.KeyTypeUint32:
		return executeRun[uint32](r, runIndex, run, format)
	case config.KeyTypeUint64:
		return executeRun[uint64](r, runIndex, run, format)
	default:
		return nil, fmt.Errorf("unsupported key type: %s", r.plan.KeyType)
	}
}

// runSource returns the source shared by the generation and probe passes of
// a run. A seeded plan gives run i the seed plan.Seed+i.
func (r *Runner) runSource(runIndex int) rand.Source {
	if r.plan.Seed == 0 {
		return nil
	}
	return rand.NewSource(r.plan.Seed + uint64(runIndex))
}

func (r *Runner) outputPath(explicitPath string, run config.Run, suffix string) string {
	if explicitPath != "" {
		return explicitPath
	}
	if r.plan.OutputDir == "" {
		return ""
	}
	return filepath.Join(r.plan.OutputDir, run.Name+suffix)
}

func executeRun[K generator.Key](r *Runner,
	runIndex int,
	run config.Run,
	format keyio.Format) (*RunResult, error) {

	dist, distErr := generator.ParseDistribution(run.Distribution)
	if distErr != nil {
		return nil, distErr
	}
	opts := []generator.Option{
		generator.WithMultiplicity(r.plan.Multiplicity),
		generator.WithLogger(r.log),
	}
	if src := r.runSource(runIndex); src != nil {
		opts = append(opts, generator.WithSource(src))
	}

	keys := make([]K, run.Count)
	startTime := time.Now()
	genErr := generator.GenerateKeys(dist, keys, opts...)
	if genErr != nil {
		return nil, genErr
	}
	if run.MatchingRate != nil {
		probeErr := generator.GenerateProbeKeys(*run.MatchingRate, keys, opts...)
		if probeErr != nil {
			return nil, probeErr
		}
	}
	result := &RunResult{
		Name:         run.Name,
		Distribution: dist.String(),
		Count:        run.Count,
		KeyType:      r.plan.KeyType,
		MatchingRate: run.MatchingRate,
		Elapsed:      time.Since(startTime),
		Stats:        stats.StatsForKeys(keys, r.plan.Percentiles),
		Distinct:     stats.DistinctCount(keys),
		Digest:       digest.Sum64(keys),
	}
	if run.MatchingRate != nil {
		result.MissFraction = stats.FractionOutside(keys, 0, int64(run.Count)+2)
	}
	r.log.Info("Generated keys",
		"name", result.Name,
		"distribution", result.Distribution,
		"count", result.Count,
		"elapsed", result.Elapsed,
		"digest", fmt.Sprintf("%016x", result.Digest))

	result.KeyFile = r.outputPath(run.KeyFile, run, format.Extension())
	if result.KeyFile != "" {
		r.log.Debug("Writing keys", "path", result.KeyFile, "format", format.String())
		if writeErr := keyio.WriteFile(result.KeyFile, keys, format); writeErr != nil {
			return nil, writeErr
		}
	}

	histogramPath := run.HistogramFile
	if histogramPath == "" && r.plan.Histogram {
		histogramPath = r.outputPath("", run, ".png")
	}
	if histogramPath != "" && len(keys) != 0 {
		title := fmt.Sprintf("%s (%s, N=%d)", run.Name, result.Distribution, run.Count)
		if plotErr := PlotDistribution(title, stats.KeysAsFloats(keys), histogramPath, r.log); plotErr != nil {
			return nil, plotErr
		}
		result.HistogramFile = histogramPath
	}
	return result, nil
}
