package errors

// CodecError is a specialized error type for record/response encoding and
// decoding failures: short headers, impossible lengths, invalid UTF-8.
type CodecError struct {
	*baseError
	operation string // Which codec step failed ("Encode", "DecodeHeader", "DecodeBody", "ReadOne").
}

// NewCodecError creates a new codec-specific error.
func NewCodecError(err error, code ErrorCode, msg string) *CodecError {
	return &CodecError{baseError: NewBaseError(err, code, msg)}
}

// WithMessage updates the error message while preserving the CodecError type.
func (ce *CodecError) WithMessage(msg string) *CodecError {
	ce.baseError.WithMessage(msg)
	return ce
}

// WithCode sets the error code while preserving the CodecError type.
func (ce *CodecError) WithCode(code ErrorCode) *CodecError {
	ce.baseError.WithCode(code)
	return ce
}

// WithDetail adds contextual information while preserving the CodecError type.
func (ce *CodecError) WithDetail(key string, value any) *CodecError {
	ce.baseError.WithDetail(key, value)
	return ce
}

// WithOperation records which codec step was being performed.
func (ce *CodecError) WithOperation(operation string) *CodecError {
	ce.operation = operation
	return ce
}

// Operation returns the codec step that failed.
func (ce *CodecError) Operation() string {
	return ce.operation
}
