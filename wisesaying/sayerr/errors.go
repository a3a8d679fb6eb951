package sayerr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no saying exists for the requested id.
	ErrNotFound = errors.New("saying not found")

	// ErrBlankAuthor indicates a saying was submitted without an author.
	ErrBlankAuthor = NewExpectedErr("작가는 비어있을 수 없습니다.")

	// ErrBlankContent indicates a saying was submitted without content.
	ErrBlankContent = NewExpectedErr("명언은 비어있을 수 없습니다.")

	// ErrUnsupportedOperation indicates the configured store cannot perform the requested operation.
	ErrUnsupportedOperation = errors.New("operation not supported by the configured store")
)

// NotFoundError reports the id of a saying that does not exist. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	ID int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%d번 명언은 존재하지 않습니다.", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
