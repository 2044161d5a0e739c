package models

import "mime/multipart"

// Document is an uploaded PDF held for the lifetime of one request.
type Document struct {
	Field    string
	Filename string
	Size     int64
	Header   *multipart.FileHeader `json:"-"`
}

func NewDocument(field string, header *multipart.FileHeader) *Document {
	return &Document{
		Field:    field,
		Filename: header.Filename,
		Size:     header.Size,
		Header:   header,
	}
}

// Open returns the uploaded bytes. Callers close the returned file.
func (d *Document) Open() (multipart.File, error) {
	return d.Header.Open()
}
