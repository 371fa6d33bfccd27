package app

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mweagle/keygen/stats"
	"github.com/pterm/pterm"
)

func aggregatedStatsFormatter(aggStats *stats.AggregatedStatistics) string {
	label := fmt.Sprintf("μ=%.2f, σ=%.2f", aggStats.Mean, aggStats.StdDev)
	if len(aggStats.Percentiles) != 0 {
		value := ""
		for i := 0; i != len(aggStats.Percentiles); i++ {
			percentilePair := aggStats.Percentiles[i]
			pVal := percentilePair.P
			if pVal < 1 {
				pVal *= 100
			}
			if math.Floor(pVal) == pVal {
				value += fmt.Sprintf("p%.0f=%.0f, ", pVal, percentilePair.Val)
			} else {
				value += fmt.Sprintf("p%.2f=%.0f, ", pVal, percentilePair.Val)
			}
		}
		value = strings.TrimSuffix(value, ", ")
		label = fmt.Sprintf("%s (%s)", label, value)
	}
	return label
}

func matchingRateLabel(result *RunResult) (string, string) {
	if result.MatchingRate == nil {
		return "-", "-"
	}
	return fmt.Sprintf("%.2f", *result.MatchingRate),
		fmt.Sprintf("%.4f", result.MissFraction)
}

// RenderTable writes one row per result, labelled with the distribution name.
func RenderTable(w io.Writer, results []*RunResult) error {
	tableData := pterm.TableData{
		{"Run", "Distribution", "Type", "Keys", "Distinct", "Min", "Max", "Summary", "Rate", "Miss", "Digest", "Elapsed"},
	}
	for _, eachResult := range results {
		rate, miss := matchingRateLabel(eachResult)
		tableData = append(tableData, []string{
			eachResult.Name,
			eachResult.Distribution,
			eachResult.KeyType,
			fmt.Sprintf("%d", eachResult.Count),
			fmt.Sprintf("%d", eachResult.Distinct),
			fmt.Sprintf("%.0f", eachResult.Stats.Min),
			fmt.Sprintf("%.0f", eachResult.Stats.Max),
			aggregatedStatsFormatter(eachResult.Stats),
			rate,
			miss,
			fmt.Sprintf("%016x", eachResult.Digest),
			eachResult.Elapsed.String(),
		})
	}
	rendered, renderErr := pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if renderErr != nil {
		return renderErr
	}
	_, writeErr := io.WriteString(w, rendered+"\n")
	return writeErr
}
