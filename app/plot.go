package app

import (
	"image/color"
	"log/slog"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histogramBins = 100

// PlotDistribution writes a normalized histogram of samples with its CDF
// overlaid to histogramPath. The image format follows the file extension.
func PlotDistribution(title string, samples []float64, histogramPath string, log *slog.Logger) error {
	log.Debug("Plotting key distribution", "path", histogramPath, "samples", len(samples))

	// Make a plot and set its title.
	p := plot.New()
	p.X.Label.Text = "Key"
	p.Y.Label.Text = "Probability"
	p.Title.Text = title
	p.Title.TextStyle.Color = color.RGBA{B: 255, A: 255}

	// First bin the data and graph that.
	rawHist, rawHistError := plotter.NewHist(plotter.Values(samples), histogramBins)
	if rawHistError != nil {
		return rawHistError
	}
	rawHist.Normalize(1)
	p.Add(rawHist)

	// Then plot the CDF
	sortedSamples := make([]float64, len(samples))
	copy(sortedSamples, samples)
	sort.Float64s(sortedSamples)

	hist, histErr := plotter.NewHist(plotter.Values(sortedSamples), histogramBins)
	if histErr != nil {
		return histErr
	}
	cdfValues := make(plotter.XYs, len(hist.Bins))
	cumulativeWeight := float64(0)
	for i := 0; i != len(hist.Bins); i++ {
		activeBin := hist.Bins[i]
		cumulativeWeight += activeBin.Weight
		cdfValues[i].X = activeBin.Max
		cdfValues[i].Y = cumulativeWeight / float64(len(sortedSamples))
	}

	line, lineErr := plotter.NewLine(cdfValues)
	if lineErr != nil {
		return lineErr
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	line.LineStyle.Color = color.RGBA{R: 255, G: 144, A: 255}
	p.Add(line)

	return p.Save(8*vg.Inch, 6*vg.Inch, histogramPath)
}
