package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

type FormFile struct {
	Field    string
	Filename string
	Data     []byte
}

func writeForm(t *testing.T, fields map[string]string, files []FormFile) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			t.Fatalf("create form file %s: %v", f.Field, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			t.Fatalf("write form file %s: %v", f.Field, err)
		}
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	return body, writer.Boundary()
}

// MultipartRequest builds a POST request carrying the given fields and files.
func MultipartRequest(t *testing.T, target string, fields map[string]string, files ...FormFile) *http.Request {
	t.Helper()

	body, boundary := writeForm(t, fields, files)
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	return req
}

// MultipartBody returns an encoded form and its content type, for clients
// that send to a live server.
func MultipartBody(t *testing.T, fields map[string]string, files ...FormFile) (*bytes.Buffer, string) {
	t.Helper()

	body, boundary := writeForm(t, fields, files)
	return body, "multipart/form-data; boundary=" + boundary
}

// FileHeader parses a single uploaded file the way a server would receive it.
func FileHeader(t *testing.T, file FormFile) *multipart.FileHeader {
	t.Helper()

	body, boundary := writeForm(t, nil, []FormFile{file})
	form, err := multipart.NewReader(body, boundary).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read multipart form: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File[file.Field]
	if len(headers) == 0 {
		t.Fatalf("no file parsed for field %s", file.Field)
	}
	return headers[0]
}
