package errors

// ErrorCode is a string identifier for a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes shared by every layer.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeInvalidInput   ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeUnavailable    ErrorCode = "COMMON_004"
	ErrCodeTimeout        ErrorCode = "COMMON_005"
	ErrCodeSerialization  ErrorCode = "COMMON_006"
	ErrCodeConfigInvalid  ErrorCode = "COMMON_007"
	ErrCodeNotImplemented ErrorCode = "COMMON_008"
	CodeUnknown           ErrorCode = ""
)

// Tagging module error codes.
const (
	// ErrCodeTextNotUTF8 marks input that is not decodable text.  Extraction
	// fails outright for the unit; there is no partial recovery.
	ErrCodeTextNotUTF8 ErrorCode = "TAG_001"

	// ErrCodeSpanInvalid marks a span whose offsets violate the half-open
	// interval invariant 0 <= start < end <= len(text).
	ErrCodeSpanInvalid ErrorCode = "TAG_002"

	// ErrCodeSpanOverlap marks a span list handed to the applicator that is
	// not pairwise non-overlapping or not ordered by position.
	ErrCodeSpanOverlap ErrorCode = "TAG_003"

	// ErrCodeConceptListInvalid marks a financial-concept dictionary that
	// cannot be compiled (empty phrase, unreadable file, bad YAML).
	ErrCodeConceptListInvalid ErrorCode = "TAG_004"

	// ErrCodeRecognizerFailed marks an external recognizer call failure.
	// Callers treat this as "zero additional candidates", never as fatal.
	ErrCodeRecognizerFailed ErrorCode = "TAG_005"

	// ErrCodeNoteMalformed marks a container note document that cannot be
	// parsed into paragraphs.
	ErrCodeNoteMalformed ErrorCode = "TAG_006"
)
