package chunker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/mahabharata/server/internal/document"
)

const (
	PageByOffset = "offset"
	PageBySearch = "search"

	summaryLength = 200
)

// paragraph, line, sentence, word, character
var DefaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

func DefaultOptions() ChunkOptions {
	return ChunkOptions{
		ChunkSize:      1000,
		ChunkOverlap:   100,
		Separators:     DefaultSeparators,
		PageResolution: PageByOffset,
	}
}

// splits text into overlapping chunks
func Split(text string, opts ChunkOptions) []string {
	segments := SplitWithOffsets(text, opts)
	out := make([]string, len(segments))

	for i, seg := range segments {
		out[i] = seg.Text
	}

	return out
}

// splits text into overlapping chunks and reports where each one starts.
// chunks never exceed ChunkSize characters unless a piece has no separator
// left to split on.
func SplitWithOffsets(text string, opts ChunkOptions) []Segment {
	if text == "" {
		return nil
	}

	s := newSplitter(text, opts)

	var spans []span
	if s.runes(span{0, len(text)}) <= s.opts.ChunkSize {
		spans = []span{{0, len(text)}}
	} else {
		spans = s.split(0, len(text), s.opts.Separators)
	}

	return s.withOverlap(spans)
}

// chunks a document and resolves the page each chunk starts on
func ChunkDocument(doc *document.Document, opts ChunkOptions) []Chunk {
	segments := SplitWithOffsets(doc.Text, opts)
	chunks := make([]Chunk, len(segments))

	for i, seg := range segments {
		page := doc.PageAt(seg.Start)
		if opts.PageResolution == PageBySearch {
			page = doc.FindPage(seg.Text)
		}

		chunks[i] = Chunk{
			ID:            i,
			Text:          seg.Text,
			Summary:       Summarize(seg.Text),
			Section:       fmt.Sprintf("Section %d", i+1),
			PageNumber:    page,
			DocumentTitle: doc.Title,
			Start:         seg.Start,
			Overlap:       seg.Overlap,
		}
	}

	return chunks
}

// first 200 characters of text, trimmed, with "..." when text is longer
func Summarize(text string) string {
	if utf8.RuneCountInString(text) <= summaryLength {
		return strings.TrimSpace(text)
	}

	return strings.TrimSpace(truncateRunes(text, summaryLength)) + "..."
}
