package document

import (
	"sort"
	"strconv"
	"strings"
)

// page number used when a chunk cannot be placed on any page
const UnknownPage = 0

// byte range of one source page within Document.Text, half-open [Start, End)
type Page struct {
	Number int
	Start  int
	End    int
}

// concatenated text of a source document plus its page boundaries.
// immutable once built.
type Document struct {
	Title string
	Text  string
	Pages []Page
}

// builds a document from per-page text, numbering pages from 1.
// blank pages keep their number but contribute no text; every kept page is
// followed by a newline so page boundaries never split a line.
func New(title string, pages []string) *Document {
	var sb strings.Builder
	ranges := make([]Page, 0, len(pages))

	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}

		start := sb.Len()
		sb.WriteString(text)
		sb.WriteString("\n")

		ranges = append(ranges, Page{
			Number: i + 1,
			Start:  start,
			End:    sb.Len(),
		})
	}

	return &Document{
		Title: title,
		Text:  sb.String(),
		Pages: ranges,
	}
}

// returns the number of the page containing the byte offset, or UnknownPage
func (d *Document) PageAt(offset int) int {
	if offset < 0 || len(d.Pages) == 0 {
		return UnknownPage
	}

	i := sort.Search(len(d.Pages), func(i int) bool {
		return d.Pages[i].End > offset
	})

	if i < len(d.Pages) && d.Pages[i].Start <= offset {
		return d.Pages[i].Number
	}

	return UnknownPage
}

// locates the first occurrence of text in the document and returns its page.
// repeated passages always resolve to the earliest page.
func (d *Document) FindPage(text string) int {
	if text == "" {
		return UnknownPage
	}

	idx := strings.Index(d.Text, text)
	if idx < 0 {
		return UnknownPage
	}

	return d.PageAt(idx)
}

// number of pages that contributed text
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// formats a page number for citations: "12" or "Unknown"
func PageLabel(page int) string {
	if page <= UnknownPage {
		return "Unknown"
	}

	return strconv.Itoa(page)
}
