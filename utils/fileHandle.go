package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const pdfDataURIPrefix = "data:application/pdf;base64,"

// MaxPDFBytes caps decoded transcript/certificate uploads at 25MB
// (roughly 35MB of base64 on the wire).
const MaxPDFBytes = 25 << 20

var (
	ErrNotPDFDataURI = errors.New("payload must be a base64 PDF data URI")
	ErrPDFTooLarge   = fmt.Errorf("PDF exceeds the %dMB limit", MaxPDFBytes>>20)
)

// SavePDFDataURI validates a data-URI PDF payload, decodes it and writes it
// under destDir with a generated filename. Returns the stored file path.
func SavePDFDataURI(dataURI, destDir string) (string, error) {
	if !strings.HasPrefix(dataURI, pdfDataURIPrefix) {
		return "", ErrNotPDFDataURI
	}

	encoded := strings.TrimPrefix(dataURI, pdfDataURIPrefix)

	// Reject oversized payloads before decoding
	if base64.StdEncoding.DecodedLen(len(encoded)) > MaxPDFBytes {
		return "", ErrPDFTooLarge
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrNotPDFDataURI
	}
	if len(raw) == 0 {
		return "", ErrNotPDFDataURI
	}
	if len(raw) > MaxPDFBytes {
		return "", ErrPDFTooLarge
	}

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	filePath := filepath.Join(destDir, uuid.NewString()+".pdf")
	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return "", err
	}

	return filePath, nil
}

func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/uploads/" + filepath.Base(filePath)
}
