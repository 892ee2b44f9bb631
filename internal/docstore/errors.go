package docstore

import "errors"

var (
	// ErrNotFound reports an explicit document path that does not exist.
	ErrNotFound = errors.New("document file not found")

	// ErrNoDocumentFound reports that auto-discovery produced nothing.
	ErrNoDocumentFound = errors.New("no document found")

	// ErrAllExtractionsFailed reports a batch load where every document
	// failed extraction.
	ErrAllExtractionsFailed = errors.New("failed to load any documents")
)
