package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const pdfBottomMargin = 50.0 // mm reserved before forcing a page break

// EncodePDF paginates the document onto A4 portrait pages.
func EncodePDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(doc.Period), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(doc.FilterLine), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	for _, sec := range doc.Sections {
		breakIfNeeded(pdf, pageHeight)

		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 7, tr(sec.Heading), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range sec.InfoLines {
			breakIfNeeded(pdf, pageHeight)
			pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
		}

		if len(sec.ProblemLines) > 0 {
			breakIfNeeded(pdf, pageHeight)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, tr("Problemas Encontrados:"), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range sec.ProblemLines {
				breakIfNeeded(pdf, pageHeight)
				pdf.MultiCell(0, 5, tr(line), "", "L", false)
			}
			for _, link := range sec.PhotoLinks {
				breakIfNeeded(pdf, pageHeight)
				pdf.MultiCell(0, 5, tr(link), "", "L", false)
			}
		}

		if sec.Observations != "" {
			breakIfNeeded(pdf, pageHeight)
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, tr("Observações:"), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(sec.Observations), "", "L", false)
		}

		pdf.Ln(6)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("render pdf: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func breakIfNeeded(pdf *fpdf.Fpdf, pageHeight float64) {
	if pdf.GetY() > pageHeight-pdfBottomMargin {
		pdf.AddPage()
	}
}
