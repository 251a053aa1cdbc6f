package rest

import (
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/heartmarshall/entomoguide-backend/internal/domain"
)

type openedFile struct {
	name string
	file multipart.File
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.EqualFold(mediaType, "multipart/form-data")
}

// parseForm parses a multipart body. Temporary files are removed when the
// returned cleanup runs.
func parseForm(r *http.Request) (func(), error) {
	if !isMultipart(r) {
		return nil, domain.NewValidationError("body", "multipart/form-data expected")
	}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, err
		}
		return nil, domain.NewValidationError("body", "invalid multipart form")
	}
	return func() { _ = r.MultipartForm.RemoveAll() }, nil
}

// openFiles opens every file sent under field. Close the result with closeAll.
func openFiles(r *http.Request, field string) ([]openedFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]openedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll(files)
			return nil, err
		}
		files = append(files, openedFile{name: fh.Filename, file: f})
	}
	return files, nil
}

func closeAll(files []openedFile) {
	for _, f := range files {
		_ = f.file.Close()
	}
}

// formValue returns a multipart text field, or nil when it was not sent.
func formValue(r *http.Request, field string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[field]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}
