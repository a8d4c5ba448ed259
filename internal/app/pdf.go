package app

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// WriteReportPDF renders the ranked listing of a run as a downloadable PDF.
// The CJK font registered here is the same TTF the word cloud draws with.
func (a *App) WriteReportPDF(w io.Writer, res *Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font("report", "", a.cfg.FontPath)
	pdf.AddPage()

	pdf.SetFont("report", "", 16)
	pdf.CellFormat(0, 10, "词频分析报告", "", 1, "L", false, 0, "")
	pdf.SetFont("report", "", 10)
	pdf.CellFormat(0, 6, res.URL, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, time.Now().Format(time.RFC3339), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("report", "", 11)
	pdf.CellFormat(15, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(95, 7, "词语", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "次数", "1", 1, "R", false, 0, "")
	for i, e := range res.Top {
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(95, 7, e.Token, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", e.Count), "1", 1, "R", false, 0, "")
	}
	if len(res.Top) == 0 {
		pdf.CellFormat(140, 7, "页面没有可统计的词语", "1", 1, "C", false, 0, "")
	}

	return pdf.Output(w)
}
