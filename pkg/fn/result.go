package fn

import (
	"time"

	"github.com/google/uuid"
)

// Result records the outcome of one stage of a chain: the value on success,
// the error otherwise, and the 1-based stage that produced it (0 for the
// seed a chain starts from). Each outcome gets its own id for log
// correlation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	stage     int
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func newResult[T any](r T, err error, success, cancel bool) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		err:       err,
		isSuccess: success,
		isCancel:  cancel,
	}
}

func Success[T any](r T) Result[T] {
	return newResult(r, nil, true, false)
}

func Fail[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, false)
}

func Cancel[T any](err error) Result[T] {
	var zero T
	return newResult(zero, err, false, true)
}

// FailOrCancel returns a Cancel result for context cancellation errors and a
// Fail result otherwise.
func FailOrCancel[T any](err error) Result[T] {
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// AtStage returns a copy of r attributed to the given stage.
func (r Result[T]) AtStage(stage int) Result[T] {
	r.stage = stage
	return r
}

// Stage returns the stage that produced r.
func (r Result[T]) Stage() int {
	return r.stage
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
