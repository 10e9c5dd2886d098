package salt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrConfig indicates the salt length range is misconfigured.
	ErrConfig = errors.New("invalid config")

	// ErrUnsupportedAlgorithm indicates the algorithm name is not in the supported set.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrMalformedEncodedValue indicates an encoded value is too short to hold a digest.
	ErrMalformedEncodedValue = errors.New("malformed encoded value")

	// ErrSaltGeneration indicates the random source failed to produce a salt.
	ErrSaltGeneration = errors.New("salt generation failed")

	// ErrInvalidTag indicates a struct tag names an unsupported algorithm
	// or is placed on a field that cannot hold an encoded value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrEncode indicates a tagged field could not be encoded.
	ErrEncode = errors.New("encode failed")

	// ErrUnknownField indicates a field name has no salt.digest tag.
	ErrUnknownField = errors.New("unknown field")

	// ErrMarshal indicates a record could not be marshaled.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates a record could not be unmarshaled.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// ConfigError represents a salt length range that violates 1 <= min <= max <= 32,
// or a missing codec component.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrConfig)
	Min    int    // Configured minimum salt length
	Max    int    // Configured maximum salt length
	Reason string // Set when a component is missing rather than the range invalid
}

func (e *ConfigError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: salt length range [%d, %d] must satisfy 1 <= min <= max <= %d",
		e.Err.Error(), e.Min, e.Max, MaxSaltLength)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// AlgorithmError represents an algorithm name outside the supported set.
type AlgorithmError struct {
	Err       error  // Underlying sentinel error (ErrUnsupportedAlgorithm)
	Algorithm string // Name as supplied by the caller
	Operation string // Operation that rejected it (encode, verify, digest, parse)
}

func (e *AlgorithmError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s: %s %q", e.Operation, e.Err.Error(), e.Algorithm)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Algorithm)
}

func (e *AlgorithmError) Unwrap() error {
	return e.Err
}

// FormatError represents an encoded value that cannot be split into salt and digest.
type FormatError struct {
	Err       error     // Underlying sentinel error (ErrMalformedEncodedValue)
	Algorithm Algorithm // Algorithm used to size the digest
	Length    int       // Length of the encoded value
	Want      int       // Minimum length for the algorithm
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: length %d is shorter than %s digest length %d",
		e.Err.Error(), e.Length, e.Algorithm, e.Want)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FieldError represents a failure to encode or verify a tagged struct field.
type FieldError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag, ErrUnknownField, ...)
	Field string // Field name that failed
	Cause error  // Original error, if any
}

func (e *FieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (field %s): %v", e.Err.Error(), e.Field, e.Cause)
	}
	return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// RecordError represents a record marshal/unmarshal error.
type RecordError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the format
}

func (e *RecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for an invalid salt length range.
func newConfigError(minLen, maxLen int) error {
	return &ConfigError{
		Err: ErrConfig,
		Min: minLen,
		Max: maxLen,
	}
}

// newComponentError creates a ConfigError for a nil codec component.
func newComponentError(component string) error {
	return &ConfigError{
		Err:    ErrConfig,
		Reason: component + " is nil",
	}
}

// newAlgorithmError creates an AlgorithmError for an unsupported name.
func newAlgorithmError(name, operation string) error {
	return &AlgorithmError{
		Err:       ErrUnsupportedAlgorithm,
		Algorithm: name,
		Operation: operation,
	}
}

// newFormatError creates a FormatError for a short encoded value.
func newFormatError(algo Algorithm, length int) error {
	return &FormatError{
		Err:       ErrMalformedEncodedValue,
		Algorithm: algo,
		Length:    length,
		Want:      hexLengths[algo],
	}
}

// newFieldError creates a FieldError for struct field failures.
func newFieldError(sentinel error, field string, cause error) error {
	return &FieldError{
		Err:   sentinel,
		Field: field,
		Cause: cause,
	}
}

// newRecordError creates a RecordError for marshal/unmarshal failures.
func newRecordError(sentinel error, cause error) error {
	return &RecordError{
		Err:   sentinel,
		Cause: cause,
	}
}
