package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pdfDataURI(content []byte) string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(content)
}

func TestSavePDFDataURIStoresFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("%PDF-1.4 test document")

	path, err := SavePDFDataURI(pdfDataURI(content), dir)
	assert.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".pdf", filepath.Ext(path))

	stored, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSavePDFDataURIRejectsOtherMIMETypes(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png bytes"))

	_, err := SavePDFDataURI(uri, t.TempDir())
	assert.ErrorIs(t, err, ErrNotPDFDataURI)
}

func TestSavePDFDataURIRejectsBadBase64(t *testing.T) {
	_, err := SavePDFDataURI("data:application/pdf;base64,not*base64*", t.TempDir())
	assert.ErrorIs(t, err, ErrNotPDFDataURI)
}

func TestSavePDFDataURIRejectsEmptyPayload(t *testing.T) {
	_, err := SavePDFDataURI("data:application/pdf;base64,", t.TempDir())
	assert.ErrorIs(t, err, ErrNotPDFDataURI)
}

func TestGetFileURL(t *testing.T) {
	assert.Equal(t, "", GetFileURL(""))
	assert.Equal(t, "/uploads/abc.pdf", GetFileURL("/var/data/uploads/abc.pdf"))
}
