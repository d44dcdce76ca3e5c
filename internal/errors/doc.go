// Package errors provides structured errors for vtm-sheets.
//
// Errors carry a Code, a user-facing message, an optional cause and optional
// metadata. Wrapping keeps the code of the innermost *Error unless a new code
// is given explicitly.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("character file %s not found", path)
//	err := errors.Parsef("unknown attribute %q", input)
//
// Adding metadata:
//
//	err := errors.Decode("missing required field").
//	    WithMeta("field", "player_name")
//
// Wrapping errors:
//
//	if err := json.Unmarshal(data, &c); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDecode, "failed to decode character")
//	}
//
// # Error Checking
//
//	if errors.IsDecode(err) {
//	    // skip the record
//	}
//
//	code := errors.GetCode(err)
//	os.Exit(code.ExitCode())
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_name", input.PlayerName, vb)
//	errors.ValidateRange("strength", value, 0, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Entity layer:
//   - Return Parse errors for unknown trait names
//   - Return Decode errors for documents that do not match the record shape
//
// Repository layer:
//   - Return NotFound for missing records, IO for unreadable or unwritable ones
//   - Include the record key in metadata
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// # Error Codes
//
//   - NotFound: record not found
//   - InvalidArgument: invalid input provided
//   - AlreadyExists: record already exists
//   - FailedPrecondition: operation requirements not met
//   - OutOfRange: value out of valid range
//   - Internal: unexpected failure
//   - Unavailable: backing store unreachable
//   - Canceled: operation canceled
//   - IO: file could not be read or written
//   - Decode: document malformed or incomplete
//   - Parse: text names no known trait
package errors
