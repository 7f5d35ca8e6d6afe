package config

import (
	"flag"
)

const (
	defaultPDFPath      = "./data/mahabharata.pdf"
	defaultChunkSize    = 1000
	defaultChunkOverlap = 100
	defaultUpsertBatch  = 100
)

// parses CLI flags for the pdf subcommand; args excludes the subcommand itself
func ParseIngestFlags(args []string) IngestFlags {
	fs := flag.NewFlagSet("pdf", flag.ExitOnError)
	path := fs.String("path", defaultPDFPath, "path to the source PDF")
	title := fs.String("title", defaultCorpusTitle, "document title stored with every chunk")
	clearFlag := fs.Bool("clear", false, "clear the index before ingesting")
	chunkSize := fs.Int("chunk-size", defaultChunkSize, "maximum chunk size in characters")
	overlap := fs.Int("chunk-overlap", defaultChunkOverlap, "characters shared between adjacent chunks")
	batch := fs.Int("batch-size", defaultUpsertBatch, "vectors per upsert batch")
	pages := fs.String("page-resolution", "offset", "how chunk pages are resolved: offset or search")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return IngestFlags{
		Path:           *path,
		Title:          *title,
		Clear:          *clearFlag,
		ChunkSize:      *chunkSize,
		ChunkOverlap:   *overlap,
		BatchSize:      *batch,
		PageResolution: *pages,
	}
}
