package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// CodeIO marks a file that exists but could not be read or written
	CodeIO Code = "IO"
	// CodeDecode marks a document that is malformed or missing a required field
	CodeDecode Code = "DECODE"
	// CodeParse marks free text that names no known trait
	CodeParse Code = "PARSE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for the code.
// Every failure exits 1 except an interrupt, which follows the shell's
// 128+SIGINT convention.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeCanceled:
		return 130
	default:
		return 1
	}
}
