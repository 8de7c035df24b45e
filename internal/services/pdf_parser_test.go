package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	raw := "\n  Go developer  \n\n\n  Kubernetes, Terraform\r\n \n"
	assert.Equal(t, "Go developer\nKubernetes, Terraform", CleanText(raw))
	assert.Empty(t, CleanText(" \n \n"))
}

func TestExtractTextRejectsNonPDF(t *testing.T) {
	data := []byte("definitely not a pdf document")

	content, err := NewPDFParserService().ExtractText(bytes.NewReader(data), int64(len(data)))

	assert.Nil(t, content)
	assert.ErrorContains(t, err, "failed to open PDF")
}
