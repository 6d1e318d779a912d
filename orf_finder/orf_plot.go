package orf_finder

import (
	"bytes"
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ORFLengthHistogramSVG renders a histogram of ORF lengths (nt) as an SVG document.
func ORFLengthHistogramSVG(lengths []float64, bins int) (string, error) {
	if len(lengths) == 0 {
		return "", errors.New("no ORF lengths to plot")
	}
	if bins <= 0 {
		bins = 50
	}

	p := plot.New()
	p.Title.Text = "ORF Length Distribution"
	p.X.Label.Text = "ORF Length (nt)"
	p.Y.Label.Text = "ORF Count"

	hist, err := plotter.NewHist(plotter.Values(lengths), bins)
	if err != nil {
		return "", err
	}
	hist.FillColor = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	hist.LineStyle.Width = vg.Points(0.5)
	p.Add(hist)

	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// hitLengths converts ORF lengths to plot values.
func hitLengths(hits []ORFHit) []float64 {
	lengths := make([]float64, len(hits))
	for i, h := range hits {
		lengths[i] = float64(h.Length)
	}
	return lengths
}
