package s3

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBucket    = errors.New("s3 bucket is required")
	ErrEmptyRegion    = errors.New("s3 region is required")
	// ErrBucketNotFound はアーカイブ先のバケットが存在しない場合のエラー
	ErrBucketNotFound = errors.New("s3 bucket does not exist")
)

type StorageOperation string

const (
	OperationPut        StorageOperation = "put"
	OperationHeadBucket StorageOperation = "head-bucket"
)

type StorageError struct {
	Operation StorageOperation
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	var t *StorageError
	if errors.As(target, &t) {
		return e.Operation == t.Operation
	}
	return false
}

func NewStorageError(operation StorageOperation, err error) *StorageError {
	return &StorageError{
		Operation: operation,
		Err:       err,
	}
}
