package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin  = 72
	fontFamily  = "Helvetica"
	lineSpacing = 1.2
)

type PDFRenderer interface {
	Render(doc *LetterDocument) ([]byte, error)
}

type pdfRenderer struct {
	compress bool
}

// NewPDFRenderer renders US Letter pages with one-inch margins.
func NewPDFRenderer(compress bool) PDFRenderer {
	return &pdfRenderer{compress: compress}
}

func (r *pdfRenderer) Render(doc *LetterDocument) (out []byte, err error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrRender)
	}

	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrRender, rec)
		}
	}()

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCompression(r.compress)
	pdf.SetTitle("Cover Letter", true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, block := range doc.Blocks {
		switch block.Kind {
		case BlockSpacer:
			pdf.Ln(block.Height)
		case BlockParagraph:
			fontStyle := ""
			if block.Style.Bold {
				fontStyle = "B"
			}
			size := block.Style.FontSize
			if size <= 0 {
				size = normalFontSize
			}
			align := block.Style.Align
			if align == "" {
				align = AlignLeft
			}

			pdf.SetFont(fontFamily, fontStyle, size)
			pdf.MultiCell(0, size*lineSpacing, tr(block.Text), "", string(align), false)
		}
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %w", ErrRender, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	return buf.Bytes(), nil
}
