package errors

import "errors"

var (
	ErrSpecNotFound      = errors.New("run spec file not found")
	ErrSpecParseFailed   = errors.New("run spec parsing failed")
	ErrRuntimeMissing    = errors.New("container runtime unavailable")
	ErrImagePullFailed   = errors.New("image pull failed")
	ErrContainerFailed   = errors.New("container run failed")
	ErrRegistryFailed    = errors.New("registry operation failed")
	ErrFileSystemFailed = errors.New("filesystem operation failed")
)

type HardhatError struct {
	Type        error
	Context     string
	Cause       string
	Suggestion  string
	OriginalErr error
}

func (e *HardhatError) Error() string {
	return e.OriginalErr.Error()
}

func (e *HardhatError) Unwrap() error {
	return e.OriginalErr
}

func NewHardhatError(errorType error, context, cause, suggestion string, originalErr error) *HardhatError {
	return &HardhatError{
		Type:        errorType,
		Context:     context,
		Cause:       cause,
		Suggestion:  suggestion,
		OriginalErr: originalErr,
	}
}

func NewSpecError(context, cause, suggestion string, originalErr error) *HardhatError {
	return NewHardhatError(ErrSpecParseFailed, context, cause, suggestion, originalErr)
}

func NewRuntimeError(context, cause, suggestion string, originalErr error) *HardhatError {
	return NewHardhatError(ErrRuntimeMissing, context, cause, suggestion, originalErr)
}

func NewPullError(context, cause, suggestion string, originalErr error) *HardhatError {
	return NewHardhatError(ErrImagePullFailed, context, cause, suggestion, originalErr)
}

func NewContainerError(context, cause, suggestion string, originalErr error) *HardhatError {
	return NewHardhatError(ErrContainerFailed, context, cause, suggestion, originalErr)
}

func NewRegistryError(context, cause, suggestion string, originalErr error) *HardhatError {
	return NewHardhatError(ErrRegistryFailed, context, cause, suggestion, originalErr)
}

func NewFileSystemError(context, cause, suggestion string, originalErr error) *HardhatError {
	return NewHardhatError(ErrFileSystemFailed, context, cause, suggestion, originalErr)
}
