// Package filestore stores uploaded attachment files.
package filestore

import "errors"

var (
	ErrEmptyFile       = errors.New("no file contents were provided")
	ErrFileTooLarge    = errors.New("the file exceeds the maximum upload size")
	ErrFileTypeInvalid = errors.New("the file type is not allowed")
	ErrURLInvalid      = errors.New("the URL does not reference a stored file")
)

// FileStore stores attachment files and returns URLs the document can
// reference them by.
//
// Delete is best effort: a file that is already gone is not an error, and
// callers treat failures as transient.
type FileStore interface {
	Upload(filename string, contents []byte) (string, error)
	Delete(url string) error
}
