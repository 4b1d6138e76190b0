package docstore

// Sentinel errors for document store operations. These enable consistent
// classification of docs directory failures.

import "errors"

var (
	// ErrDocsDirNotFound indicates the configured docs directory does not exist.
	ErrDocsDirNotFound = errors.New("docs directory not found")

	// ErrDocsDirWalkFailed indicates filesystem traversal of the docs directory failed.
	ErrDocsDirWalkFailed = errors.New("docs directory walk failed")

	// ErrFileReadFailed indicates reading a document or category file failed.
	ErrFileReadFailed = errors.New("document read failed")

	// ErrFrontmatterInvalid indicates a document's YAML frontmatter could not be parsed.
	ErrFrontmatterInvalid = errors.New("invalid frontmatter")

	// ErrDuplicateDocID indicates two files resolve to the same document id.
	ErrDuplicateDocID = errors.New("duplicate document id")

	// ErrDirNotFound indicates an autogenerated directory holds no documents.
	ErrDirNotFound = errors.New("directory not found in docs")
)
