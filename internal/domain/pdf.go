package domain

import "io"

// Upload is a file received from a client, not yet read into memory.
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

// ExtractedText is the raw text of a document with every page concatenated
type ExtractedText struct {
	Text      string `json:"text"`
	PageCount int    `json:"page_count"`
}
