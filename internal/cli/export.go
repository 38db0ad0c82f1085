package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Flyrell/burnbite/internal/summary"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderSummaryPDF writes the session summary as a PDF to outputPath,
// creating the parent directory if needed.
func renderSummaryPDF(data summary.Data, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "burnbite session summary", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, data.GeneratedAt.Format("January 2, 2006 15:04"), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	if len(data.Days) == 0 {
		m.AddRow(8, text.NewCol(12, "Nothing logged in this session.", props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}))
	}

	for _, day := range data.Days {
		date := day.Date
		if date == "" {
			date = "(no date)"
		}
		m.AddRow(8,
			text.NewCol(6, date, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(6, fmt.Sprintf("burned %d kcal / eaten %d kcal", day.Burned, day.Consumed), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)

		for _, w := range day.Workouts {
			m.AddRow(6,
				text.NewCol(6, "  "+w.Exercise, props.Text{Size: 9}),
				text.NewCol(3, fmt.Sprintf("%d mins", w.Duration), props.Text{
					Size:  9,
					Align: align.Right,
				}),
				text.NewCol(3, fmt.Sprintf("-%d kcal", w.Calories), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			)
		}
		for _, meal := range day.Meals {
			m.AddRow(6,
				text.NewCol(9, "  "+meal.Name, props.Text{
					Size:  9,
					Color: &pdfMutedColor,
				}),
				text.NewCol(3, fmt.Sprintf("+%d kcal", meal.Calories), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}

		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	totals := []struct {
		label string
		value string
	}{
		{"Total calories burned", fmt.Sprintf("%d kcal", data.TotalBurned)},
		{"Total calories eaten", fmt.Sprintf("%d kcal", data.TotalConsumed)},
		{"Net", fmt.Sprintf("%+d kcal", data.Net())},
		{"Time exercised", fmt.Sprintf("%d mins", data.TotalMinutes)},
	}
	for _, t := range totals {
		m.AddRow(7,
			text.NewCol(9, t.label, props.Text{Size: 10, Color: &pdfHeaderColor}),
			text.NewCol(3, t.value, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)
	}

	if len(data.Badges) > 0 {
		m.AddRow(6)
		m.AddRow(8, text.NewCol(12, "Badges", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}))
		for _, b := range data.Badges {
			m.AddRow(6,
				text.NewCol(9, "  "+string(b.Badge), props.Text{Size: 9}),
				text.NewCol(3, fmt.Sprintf("x%d", b.Count), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return doc.Save(outputPath)
}
