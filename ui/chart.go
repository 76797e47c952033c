package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PopulationChart plots the live percentage per generation.
type PopulationChart struct {
	Image  *canvas.Image
	width  int
	height int
}

func NewPopulationChart(width, height int) *PopulationChart {
	c := &PopulationChart{width: width, height: height}
	c.Image = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	c.Image.FillMode = canvas.ImageFillContain
	c.Image.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	return c
}

// SetSeries redraws the chart. A failed render keeps the previous frame.
func (c *PopulationChart) SetSeries(percentages []float64) {
	img, err := PlotPopulation(percentages, c.width, c.height)
	if err != nil {
		log.Printf("Failed to render population chart: %v", err)
		return
	}
	c.Image.Image = img
	c.Image.Refresh()
}

// PlotPopulation renders percentages (generation 1 first) as a line chart
// with a fixed 0-100% axis.
func PlotPopulation(percentages []float64, width, height int) (image.Image, error) {
	if len(percentages) == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, height)), nil
	}
	xs := make([]float64, len(percentages))
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Style: chart.Style{FontSize: 8.0},
			Range: &chart.ContinuousRange{Min: 1, Max: math.Max(2, float64(len(percentages)))},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%d", int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: 8.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f%%", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Percentage of population",
				XValues: xs,
				YValues: percentages,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 75, G: 192, B: 192, A: 255}, StrokeWidth: 2.0},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(buffer)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}
