package errors

// IndexError provides specialized error handling for in-memory index
// operations, extending the base error system with index-specific context
// while supporting method chaining through all base error methods.
type IndexError struct {
	*baseError

	// key identifies which key was being looked up, inserted, or removed
	// when the error occurred.
	key string

	// fileSlot identifies which log-directory slot the index entry pointed
	// at, if applicable.
	fileSlot int

	// operation names the index operation being performed ("Get", "Set",
	// "Delete", "Range") when the error occurred.
	operation string

	// indexSize captures how many keys the index held at the time of the
	// error, useful for diagnosing capacity or corruption issues.
	indexSize int
}

// NewIndexError creates a new index-specific error with the provided context.
func NewIndexError(err error, code ErrorCode, msg string) *IndexError {
	return &IndexError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while preserving the IndexError type.
func (ie *IndexError) WithMessage(msg string) *IndexError {
	ie.baseError.WithMessage(msg)
	return ie
}

// WithCode sets the error code while preserving the IndexError type.
func (ie *IndexError) WithCode(code ErrorCode) *IndexError {
	ie.baseError.WithCode(code)
	return ie
}

// WithDetail adds contextual information while preserving the IndexError type.
func (ie *IndexError) WithDetail(key string, value any) *IndexError {
	ie.baseError.WithDetail(key, value)
	return ie
}

// WithKey records which key was being processed when the error occurred.
func (ie *IndexError) WithKey(key string) *IndexError {
	ie.key = key
	return ie
}

// WithFileSlot records which log-directory slot was involved in the error.
func (ie *IndexError) WithFileSlot(slot int) *IndexError {
	ie.fileSlot = slot
	return ie
}

// WithOperation records what index operation was being performed.
func (ie *IndexError) WithOperation(operation string) *IndexError {
	ie.operation = operation
	return ie
}

// WithIndexSize captures the size of the index when the error occurred.
func (ie *IndexError) WithIndexSize(size int) *IndexError {
	ie.indexSize = size
	return ie
}

// Key returns the key that was being processed when the error occurred.
func (ie *IndexError) Key() string { return ie.key }

// FileSlot returns the log-directory slot associated with the error.
func (ie *IndexError) FileSlot() int { return ie.fileSlot }

// Operation returns the name of the operation that was being performed.
func (ie *IndexError) Operation() string { return ie.operation }

// IndexSize returns the size of the index when the error occurred.
func (ie *IndexError) IndexSize() int { return ie.indexSize }

// NewKeyNotFoundError creates a specialized error for missing keys.
func NewKeyNotFoundError(key string) *IndexError {
	return NewIndexError(nil, ErrorCodeIndexKeyNotFound, "key not found in index").
		WithKey(key).
		WithOperation("Get")
}

// NewInvalidFileSlotError creates an error for index entries that reference
// a file slot no longer present in the log directory.
func NewInvalidFileSlotError(slot int, key string) *IndexError {
	return NewIndexError(nil, ErrorCodeIndexInvalidFileSlot, "file slot not found").
		WithFileSlot(slot).
		WithKey(key).
		WithOperation("Get")
}

// NewIndexCorruptionError creates an error for index corruption scenarios.
func NewIndexCorruptionError(operation string, indexSize int, cause error) *IndexError {
	return NewIndexError(cause, ErrorCodeIndexCorrupted, "index data structure corrupted").
		WithOperation(operation).
		WithIndexSize(indexSize)
}
