package quote

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const fontFamily = "quote"

// Renderer turns a Document into a PDF. A UTF-8 TTF font is required for
// the Cyrillic locale; the path comes from config and defaults to the
// system DejaVu font.
type Renderer struct {
	FontPath     string
	FontBoldPath string
}

func NewRenderer(fontPath, fontBoldPath string) *Renderer {
	if fontBoldPath == "" {
		fontBoldPath = fontPath
	}
	return &Renderer{FontPath: fontPath, FontBoldPath: fontBoldPath}
}

func (rd *Renderer) Render(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddUTF8Font(fontFamily, "", rd.FontPath)
	pdf.AddUTF8Font(fontFamily, "B", rd.FontBoldPath)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 22)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(fontFamily, "B", 14)
	pdf.CellFormat(0, 8, doc.Subtitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 11)
	for _, line := range doc.Meta {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	for _, sec := range doc.Sections {
		rd.renderSection(pdf, sec)
	}

	pdf.Ln(8)
	pdf.SetFont(fontFamily, "", 11)
	for _, line := range doc.Closing {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (rd *Renderer) renderSection(pdf *gofpdf.Fpdf, sec Section) {
	width, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := width - left - right

	// Section headers match the web quote: white on #2980b9.
	pdf.SetFont(fontFamily, "B", 12)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)

	if len(sec.Items) > 0 {
		priceW := usable * 0.25
		pdf.CellFormat(usable-priceW, 8, sec.ItemsHeader[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(priceW, 8, sec.ItemsHeader[1], "1", 1, "R", true, 0, "")

		pdf.SetFont(fontFamily, "", 11)
		pdf.SetTextColor(0, 0, 0)
		for _, item := range sec.Items {
			pdf.CellFormat(usable-priceW, 7, item.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(priceW, 7, item.Price, "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
		return
	}

	pdf.CellFormat(usable, 8, sec.Header, "1", 1, "L", true, 0, "")

	pdf.SetFont(fontFamily, "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range sec.Lines {
		pdf.MultiCell(usable, 7, line, "1", "L", false)
	}
	pdf.Ln(4)
}
