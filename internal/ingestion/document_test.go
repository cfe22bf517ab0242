package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "one\ntwo", CleanText("one\r\ntwo\r\n"))
	assert.Equal(t, "one\ntwo", CleanText("one\rtwo"))
}

func TestCleanText_SqueezesBlankRuns(t *testing.T) {
	assert.Equal(t, "a\n\nb", CleanText("a\n\n\n\n\nb"))
}

func TestCleanText_TrimsTrailingWhitespace(t *testing.T) {
	assert.Equal(t, "line", CleanText("line   \t "))
	assert.Equal(t, "", CleanText(""))
}

func TestExtract_PlainTextFormats(t *testing.T) {
	for _, ext := range []string{".txt", ".md", ".TXT"} {
		text, err := Extract(ext, []byte("Requirements:\r\nGo\r\n"))
		require.NoError(t, err)
		assert.Equal(t, "Requirements:\nGo", text)
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	_, err := Extract(".xlsx", []byte("whatever"))
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".xlsx", unsupported.Ext)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract(".pdf", []byte("not a pdf at all"))
	assert.Error(t, err)
}

func TestExtract_CorruptDocx(t *testing.T) {
	_, err := Extract(".docx", []byte("not a zip archive"))
	assert.Error(t, err)
}

func TestExtractFile_MissingFile(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestExtractFile_ReadsTxt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Go developer\n"), 0o600))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Go developer", text)
}
