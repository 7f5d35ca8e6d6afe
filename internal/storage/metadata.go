package storage

import (
	"strconv"
)

const unknownPage = "Unknown"

// flattens metadata into the string map chromem stores
func (m Metadata) toMap() map[string]string {
	page := unknownPage
	if m.PageNumber > 0 {
		page = strconv.Itoa(m.PageNumber)
	}

	return map[string]string{
		"text":            m.Text,
		"summary":         m.Summary,
		"section":         m.Section,
		"chunk_id":        strconv.Itoa(m.ChunkID),
		"source":          m.Source,
		"page_number":     page,
		"document_title":  m.DocumentTitle,
		"chunk_length":    strconv.Itoa(m.ChunkLength),
		"embedding_model": m.EmbeddingModel,
	}
}

// inverse of toMap; unparsable numbers become zero
func metadataFromMap(values map[string]string, content string) Metadata {
	m := Metadata{
		Text:           values["text"],
		Summary:        values["summary"],
		Section:        values["section"],
		Source:         values["source"],
		DocumentTitle:  values["document_title"],
		EmbeddingModel: values["embedding_model"],
	}

	if m.Text == "" {
		m.Text = content
	}

	m.ChunkID, _ = strconv.Atoi(values["chunk_id"])
	m.PageNumber, _ = strconv.Atoi(values["page_number"])
	m.ChunkLength, _ = strconv.Atoi(values["chunk_length"])

	return m
}
