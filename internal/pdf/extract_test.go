package pdf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	if err := os.WriteFile(path, []byte("not a pdf at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Error("ExtractText succeeded on a non-PDF file")
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("ExtractText succeeded on a missing file")
	}
}
