package chunker

import (
	"strings"
	"unicode/utf8"
)

type splitter struct {
	text       string
	opts       ChunkOptions
	mergeLimit int
}

func newSplitter(text string, opts ChunkOptions) *splitter {
	def := DefaultOptions()

	if opts.ChunkSize <= 0 {
		opts.ChunkSize = def.ChunkSize
	}

	if opts.ChunkOverlap < 0 {
		opts.ChunkOverlap = 0
	}

	if opts.ChunkOverlap >= opts.ChunkSize {
		opts.ChunkOverlap = opts.ChunkSize - 1
	}

	if len(opts.Separators) == 0 {
		opts.Separators = DefaultSeparators
	}

	return &splitter{
		text: text,
		opts: opts,
		// leave room for the overlap prefix added afterwards
		mergeLimit: opts.ChunkSize - opts.ChunkOverlap,
	}
}

// splits [start, end) on the first separator it contains, packing small pieces
// together and descending into pieces that are still too long
func (s *splitter) split(start, end int, seps []string) []span {
	sep, rest, ok := pickSeparator(s.text[start:end], seps)
	if !ok {
		return []span{{start, end}}
	}

	var out []span
	cur := span{-1, -1}
	curLen := 0

	flush := func() {
		if cur.start >= 0 {
			out = append(out, cur)
		}

		cur = span{-1, -1}
		curLen = 0
	}

	for _, piece := range s.cut(start, end, sep) {
		n := s.runes(piece)

		if n > s.opts.ChunkSize {
			flush()
			out = append(out, s.split(piece.start, piece.end, rest)...)

			continue
		}

		if cur.start >= 0 && curLen+n > s.mergeLimit {
			flush()
		}

		if cur.start < 0 {
			cur = piece
			curLen = n
		} else {
			cur.end = piece.end
			curLen += n
		}
	}

	flush()

	return out
}

// cuts [start, end) after every occurrence of sep; sep stays with the piece before it
func (s *splitter) cut(start, end int, sep string) []span {
	var pieces []span

	if sep == "" {
		for pos := start; pos < end; {
			_, size := utf8.DecodeRuneInString(s.text[pos:end])
			pieces = append(pieces, span{pos, pos + size})
			pos += size
		}

		return pieces
	}

	pos := start
	for pos < end {
		idx := strings.Index(s.text[pos:end], sep)
		if idx < 0 {
			break
		}

		next := pos + idx + len(sep)
		pieces = append(pieces, span{pos, next})
		pos = next
	}

	if pos < end {
		pieces = append(pieces, span{pos, end})
	}

	return pieces
}

// prefixes every span after the first with the text just before it
func (s *splitter) withOverlap(spans []span) []Segment {
	segments := make([]Segment, len(spans))

	for i, sp := range spans {
		from := sp.start

		if i > 0 && s.opts.ChunkOverlap > 0 {
			k := min(
				s.opts.ChunkOverlap,
				s.opts.ChunkSize-s.runes(sp),
				utf8.RuneCountInString(segments[i-1].Text),
			)

			if k > 0 {
				from = backRunes(s.text, sp.start, k)
			}
		}

		segments[i] = Segment{
			Text:    s.text[from:sp.end],
			Start:   from,
			Overlap: sp.start - from,
		}
	}

	return segments
}

func (s *splitter) runes(sp span) int {
	return utf8.RuneCountInString(s.text[sp.start:sp.end])
}

// returns the first separator present in text and the ones after it
func pickSeparator(text string, seps []string) (string, []string, bool) {
	for i, sep := range seps {
		if sep == "" || strings.Contains(text, sep) {
			return sep, seps[i+1:], true
		}
	}

	return "", nil, false
}

// byte offset k runes before pos
func backRunes(text string, pos, k int) int {
	for ; k > 0 && pos > 0; k-- {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= size
	}

	return pos
}

func truncateRunes(text string, n int) string {
	i := 0
	for pos := range text {
		if i == n {
			return text[:pos]
		}
		i++
	}

	return text
}
