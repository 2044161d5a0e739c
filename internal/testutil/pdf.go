// Package testutil builds request fixtures for tests.
package testutil

import (
	"bytes"
	"fmt"
	"strings"
)

var pdfStringEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// BuildPDF returns a PDF with one page per argument, each page showing its
// text in a single text object. An empty argument produces a page without a
// content stream.
func BuildPDF(pages ...string) []byte {
	// 1 catalog, 2 page tree, 3 font, then a page object and optional
	// content stream per page.
	nextID := 4
	pageIDs := make([]int, len(pages))
	contentIDs := make([]int, len(pages))
	for i, text := range pages {
		pageIDs[i] = nextID
		nextID++
		if text != "" {
			contentIDs[i] = nextID
			nextID++
		}
	}

	var buf bytes.Buffer
	offsets := make([]int, nextID)
	writeObj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i, id := range pageIDs {
		kids[i] = fmt.Sprintf("%d 0 R", id)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pages {
		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >>"
		if contentIDs[i] != 0 {
			page += fmt.Sprintf(" /Contents %d 0 R", contentIDs[i])
		}
		writeObj(pageIDs[i], page+" >>")

		if contentIDs[i] != 0 {
			stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", pdfStringEscaper.Replace(text))
			writeObj(contentIDs[i], fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		}
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", nextID)
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id < nextID; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", nextID, xrefOffset)

	return buf.Bytes()
}
