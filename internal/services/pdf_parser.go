package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextWithMetaData(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text        string
	PageCount   int
	FailedPages []int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	content, err := p.ExtractTextWithMetaData(data)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

func (p *pdfParserService) ExtractTextWithMetaData(data []byte) (*PDFContent, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrResumeParse)
	}

	r, err := openPDF(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResumeParse, err)
	}

	totalPage := r.NumPage()
	text, failed := extractPages(totalPage, func(pageIndex int) (string, error) {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			return "", nil
		}
		return page.GetPlainText(nil)
	})

	log.Printf("📄 Extracted %d characters from %d pages (%d failed)", len(text), totalPage, len(failed))

	return &PDFContent{
		Text:        text,
		PageCount:   totalPage,
		FailedPages: failed,
	}, nil
}

// openPDF converts parser panics on malformed input into errors.
func openPDF(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// extractPages concatenates page text in page order. A page that errors or panics
// contributes nothing and does not stop the remaining pages.
func extractPages(totalPage int, pageText func(pageIndex int) (string, error)) (string, []int) {
	var textBuilder strings.Builder
	var failed []int

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		text, err := safePageText(pageIndex, pageText)
		if err != nil {
			log.Printf("⚠️  Failed to extract text from page %d: %v", pageIndex, err)
			failed = append(failed, pageIndex)
			continue
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), failed
}

func safePageText(pageIndex int, pageText func(int) (string, error)) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while reading page: %v", rec)
		}
	}()
	return pageText(pageIndex)
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
