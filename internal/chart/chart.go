// Package chart maps query results onto render-ready visual specs.
// The dashboard consumes these as data; no drawing happens here.
package chart

import (
	"fmt"

	"fundpulse/internal/analytics"
)

// Chart type identifiers understood by the dashboard.
const (
	TypeHorizontalBar = "horizontal_bar"
	TypeLine          = "line"
	TypePie           = "pie"
	TypeHeatmap       = "heatmap"
)

// Spec describes one chart: which visual to draw and the data series
// feeding it. Exactly one of Series or Matrix is populated, depending
// on Type.
type Spec struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	XLabel string   `json:"x_label,omitempty"`
	YLabel string   `json:"y_label,omitempty"`
	Series []Series `json:"series,omitempty"`
	Matrix *Heatmap `json:"matrix,omitempty"`
}

// Series is one named sequence of labelled points.
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a single labelled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Heatmap is a 2-D matrix keyed by row and column labels. Cells not
// present in the source pivot hold NaN-free zero placeholders marked
// absent via the Present matrix.
type Heatmap struct {
	RowLabels []string    `json:"row_labels"`
	ColLabels []string    `json:"col_labels"`
	Values    [][]float64 `json:"values"`
	Present   [][]bool    `json:"present"`
}

// HorizontalBar builds a horizontal bar spec from label/amount rows.
func HorizontalBar(title, xLabel, yLabel string, rows []analytics.LabelAmount) *Spec {
	return &Spec{
		Type:   TypeHorizontalBar,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Series: []Series{{Name: yLabel, Data: points(rows)}},
	}
}

// Pie builds a pie spec from label/amount rows.
func Pie(title string, rows []analytics.LabelAmount) *Spec {
	return &Spec{
		Type:   TypePie,
		Title:  title,
		Series: []Series{{Name: title, Data: points(rows)}},
	}
}

// Line builds a line spec from a month-over-month trend. The value per
// point is the monthly amount when useCount is false, otherwise the
// monthly round count.
func Line(title, xLabel, yLabel string, trend []analytics.MonthlyPoint, useCount bool) *Spec {
	data := make([]Point, 0, len(trend))
	for _, p := range trend {
		value := p.Amount.InexactFloat64()
		if useCount {
			value = float64(p.Count)
		}
		data = append(data, Point{Label: p.Label, Value: value})
	}
	return &Spec{
		Type:   TypeLine,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Series: []Series{{Name: yLabel, Data: data}},
	}
}

// YearlyLine builds a line spec from a per-year trend.
func YearlyLine(title, xLabel, yLabel string, trend []analytics.YearAmount) *Spec {
	data := make([]Point, 0, len(trend))
	for _, p := range trend {
		data = append(data, Point{
			Label: fmt.Sprintf("%d", p.Year),
			Value: p.Amount.InexactFloat64(),
		})
	}
	return &Spec{
		Type:   TypeLine,
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Series: []Series{{Name: yLabel, Data: data}},
	}
}

// HeatmapFromPivot builds a year × month heatmap spec. Cells missing
// from the pivot stay zero and are flagged absent so the UI can leave
// them blank instead of drawing a zero.
func HeatmapFromPivot(title string, pivot analytics.Pivot) *Spec {
	rows := make([]string, len(pivot.Years))
	for i, y := range pivot.Years {
		rows[i] = fmt.Sprintf("%d", y)
	}
	cols := make([]string, len(pivot.Months))
	for i, m := range pivot.Months {
		cols[i] = fmt.Sprintf("%d", m)
	}

	values := make([][]float64, len(pivot.Years))
	present := make([][]bool, len(pivot.Years))
	for i, y := range pivot.Years {
		values[i] = make([]float64, len(pivot.Months))
		present[i] = make([]bool, len(pivot.Months))
		for j, m := range pivot.Months {
			if amount, ok := pivot.Cell(y, m); ok {
				values[i][j] = amount.InexactFloat64()
				present[i][j] = true
			}
		}
	}

	return &Spec{
		Type:  TypeHeatmap,
		Title: title,
		Matrix: &Heatmap{
			RowLabels: rows,
			ColLabels: cols,
			Values:    values,
			Present:   present,
		},
	}
}

func points(rows []analytics.LabelAmount) []Point {
	data := make([]Point, 0, len(rows))
	for _, row := range rows {
		data = append(data, Point{Label: row.Label, Value: row.Amount.InexactFloat64()})
	}
	return data
}
