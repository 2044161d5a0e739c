package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"

	"alfredoptarigan/resume-summarizer/internal/models"
)

type PDFParserService interface {
	ExtractText(r io.ReaderAt, size int64) (*PDFContent, error)
	ExtractDocument(doc *models.Document) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	Filename  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractDocument opens the uploaded file, extracts its text and closes the
// file again whatever the outcome.
func (p *pdfParserService) ExtractDocument(doc *models.Document) (*PDFContent, error) {
	return p.extractOpened(doc.Filename, doc.Size, doc.Open)
}

func (p *pdfParserService) extractOpened(filename string, size int64, open func() (multipart.File, error)) (*PDFContent, error) {
	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", filename, err)
	}
	defer f.Close()

	content, err := p.ExtractText(f, size)
	if err != nil {
		return nil, fmt.Errorf("failed to extract %q: %w", filename, err)
	}
	content.Filename = filename

	return content, nil
}

// ExtractText concatenates the plain text of every page in document order
// without separators. Pages with no content stream contribute nothing.
func (p *pdfParserService) ExtractText(r io.ReaderAt, size int64) (content *PDFContent, err error) {
	// ledongthuc/pdf reports some malformed input by panicking.
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = fmt.Errorf("%w: parser panic: %v", ErrUnreadableDocument, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF: %w", ErrUnreadableDocument, err)
	}

	totalPage := reader.NumPage()
	text := concatPages(totalPage, func(pageIndex int) (string, error) {
		page := reader.Page(pageIndex)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			return "", nil
		}
		return page.GetPlainText(nil)
	})

	return &PDFContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}

func concatPages(totalPage int, pageText func(pageIndex int) (string, error)) string {
	var textBuilder strings.Builder

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		text, err := pageText(pageIndex)
		if err != nil {
			// Treated as a page without extractable text.
			log.Printf("⚠️  Skipping page %d: %v\n", pageIndex, err)
			continue
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String()
}
