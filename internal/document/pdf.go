package document

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// extracts the plain text of every page of a PDF file
func LoadPDF(path, title string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("pdf not found at %s: %w", path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, numPages)

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		pages[i-1] = text
	}

	return New(title, pages), nil
}
