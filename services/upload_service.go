package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// File is a binary form value captured from a browser upload, ready to be
// relayed upstream.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileFromHeader buffers an uploaded file out of a multipart request.
func FileFromHeader(fh *multipart.FileHeader) (*File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// ValidateImageFile applies the dashboard's upload rules: the declared
// media type must start with image/ and the size may not exceed maxMB
// mebibytes. A rejected file is treated as if none was selected.
func ValidateImageFile(contentType string, size int64, maxMB int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("file type %q is not an image", contentType)
	}
	if size > maxMB*1024*1024 {
		return fmt.Errorf("file exceeds the %dMB limit", maxMB)
	}
	return nil
}

// HasFile reports whether any field value is a binary file.
func HasFile(fields map[string]any) bool {
	for _, value := range fields {
		if _, ok := value.(*File); ok {
			return true
		}
	}
	return false
}

// BuildUploadBody serializes form fields for the upstream request. Any
// *File value switches the whole body to multipart: files become binary
// parts, every other field is stringified, and the bearer token (already
// on the Authorization header) is appended as a token field too. Without
// files the field set goes up as plain JSON.
func BuildUploadBody(fields map[string]any, token string) (*bytes.Buffer, string, error) {
	if !HasFile(fields) {
		payload, err := json.Marshal(fields)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode fields: %w", err)
		}
		return bytes.NewBuffer(payload), "application/json", nil
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		file, ok := value.(*File)
		if !ok {
			if err := writer.WriteField(name, stringifyField(value)); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
			}
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%s; filename=%s`, strconv.Quote(name), strconv.Quote(file.Name)))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part %s: %w", name, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write file part %s: %w", name, err)
		}
	}

	if token != "" {
		if err := writer.WriteField("token", token); err != nil {
			return nil, "", fmt.Errorf("failed to write token field: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

func stringifyField(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}
