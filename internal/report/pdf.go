package report

import (
	"fmt"

	"github.com/Flyrell/hydromind/internal/entry"
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
	pdfHeaderColor = props.Color{Red: 20, Green: 70, Blue: 110}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfMetColor    = props.Color{Red: 30, Green: 140, Blue: 80}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// RenderPDF writes the monthly report as an A4 PDF to outputPath.
func RenderPDF(m Month, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	doc := maroto.New(cfg)
	amount := func(ml float64) string { return entry.FormatAmount(ml, m.Unit) }

	doc.AddRow(14,
		text.NewCol(12, "Hydration report", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	doc.AddRow(8,
		text.NewCol(8, m.Title(), props.Text{Size: 12, Color: &pdfMutedColor}),
		text.NewCol(4, "Daily goal "+amount(m.Goal), props.Text{
			Size:  10,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)
	doc.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	doc.AddRow(4)

	for _, day := range m.Days {
		label := fmt.Sprintf("%s %d, %s", day.date.Month(), day.date.Day(), day.date.Weekday())
		totalColor := &pdfHeaderColor
		if day.GoalMet {
			totalColor = &pdfMetColor
		}

		doc.AddRow(8,
			text.NewCol(9, label, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, amount(day.Total), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: totalColor,
			}),
		)
		for _, l := range day.Lines {
			doc.AddRow(5,
				text.NewCol(2, "  "+l.Time.Format("15:04"), props.Text{Size: 8, Color: &pdfMutedColor}),
				text.NewCol(7, l.DrinkType.String()+" "+amount(l.Amount), props.Text{Size: 8}),
				text.NewCol(3, amount(l.Hydration), props.Text{
					Size:  8,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
		}
		doc.AddRow(4)
	}

	if len(m.Breakdown) > 0 {
		doc.AddRow(8,
			text.NewCol(12, "By drink", props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
		)
		for _, b := range m.Breakdown {
			doc.AddRow(5,
				text.NewCol(9, "  "+b.DrinkType.String(), props.Text{Size: 9}),
				text.NewCol(3, amount(b.Amount), props.Text{Size: 9, Align: align.Right}),
			)
		}
		doc.AddRow(4)
	}

	doc.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	doc.AddRow(10,
		text.NewCol(6, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d/%d days met", m.DaysMet, len(m.Days)), props.Text{
			Size:  10,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
		text.NewCol(3, amount(m.Total), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	pdf, err := doc.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return pdf.Save(outputPath)
}
