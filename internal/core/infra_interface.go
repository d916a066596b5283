package core

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=infra_interface.go -destination=../mocks/mock_infra_interface.go -package=mocks

// StoredFile is an upload staged in the file store.
type StoredFile struct {
	Name string
	Path string
	Size int64
}

// FileStore stages uploads until they are processed. Callers must Remove every file
// they Save, on success and failure alike.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (StoredFile, error)
	Remove(ctx context.Context, path string) error
}
