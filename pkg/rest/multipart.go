package rest

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// Multipart accumulates the fields and single file of a multipart/form-data
// request. Fields are written in the order they were added.
type Multipart struct {
	fields []formField
	file   *filePart
}

type formField struct {
	name  string
	value string
}

type filePart struct {
	field    string
	filename string
	data     []byte
}

// NewMultipart creates an empty multipart form.
func NewMultipart() *Multipart {
	return &Multipart{}
}

// SetField appends a text field. Empty values are skipped so optional
// metadata is omitted from the request entirely.
func (m *Multipart) SetField(name, value string) *Multipart {
	if value == "" {
		return m
	}
	m.fields = append(m.fields, formField{name: name, value: value})
	return m
}

// SetFile attaches the file payload under the given field name.
func (m *Multipart) SetFile(field, filename string, data []byte) *Multipart {
	m.file = &filePart{field: field, filename: filename, data: data}
	return m
}

// HasFile reports whether a file payload has been attached.
func (m *Multipart) HasFile() bool {
	return m.file != nil && len(m.file.data) > 0
}

// FileSize returns the attached payload length in bytes.
func (m *Multipart) FileSize() int64 {
	if m.file == nil {
		return 0
	}
	return int64(len(m.file.data))
}

func (m *Multipart) encode() (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if m.file != nil {
		part, err := w.CreateFormFile(m.file.field, m.file.filename)
		if err != nil {
			return "", nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(m.file.data); err != nil {
			return "", nil, fmt.Errorf("write file part: %w", err)
		}
	}

	for _, f := range m.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return "", nil, fmt.Errorf("write field %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("close form: %w", err)
	}

	return w.FormDataContentType(), &buf, nil
}
