package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFParserService_ExtractText(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "resume.pdf"))
	require.NoError(t, err)

	text, err := NewPDFParserService().ExtractText(data)
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go engineer with SQL")
	assert.Contains(t, text, "Seven years building APIs")
	assert.Equal(t, CleanText(text), text)
}

func TestPDFParserService_RejectsUnreadableInput(t *testing.T) {
	parser := NewPDFParserService()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "plain text", data: []byte("this is not a pdf")},
		{name: "truncated header", data: []byte("%PDF-1.4\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := parser.ExtractText(tt.data)
			assert.Empty(t, text)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("\n  Senior Go Engineer  \n\n\n  7 years   \n")
	assert.Equal(t, "Senior Go Engineer\n7 years", got)
}
