package chunker

type ChunkOptions struct {
	// maximum chunk length in characters, overlap included
	ChunkSize int

	// characters copied from the end of one chunk into the start of the next
	ChunkOverlap int

	// split points in priority order; "" splits between characters
	Separators []string

	// how chunks are placed on pages: PageByOffset or PageBySearch
	PageResolution string
}

// a chunk of text located in its source string by byte offsets.
// Text[Overlap:] is the part not shared with the previous segment.
type Segment struct {
	Text    string
	Start   int
	Overlap int
}

// a segment of a document with the provenance stored alongside its vector
type Chunk struct {
	ID            int
	Text          string
	Summary       string
	Section       string
	PageNumber    int
	DocumentTitle string
	Start         int
	Overlap       int
}

type span struct {
	start int
	end   int
}
