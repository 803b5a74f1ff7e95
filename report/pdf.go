package report

import(
	"io"

	"github.com/jung-kurt/gofpdf"
)

// OutputAsPDF renders the report as a plain table; handy for dropping a
// view into an investigation writeup.
func (r *Report)OutputAsPDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, r.Name)
	pdf.Ln(12)

	colWidth := 190.0
	if len(r.HeadersText) > 0 { colWidth = 190.0 / float64(len(r.HeadersText)) }

	pdf.SetFont("Arial", "B", 10)
	for _,h := range r.HeadersText {
		pdf.CellFormat(colWidth, 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _,row := range r.RowsText {
		for _,val := range row {
			pdf.CellFormat(colWidth, 6, val, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
