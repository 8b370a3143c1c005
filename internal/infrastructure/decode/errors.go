package decode

import "fmt"

// snippetLen bounds how much offending text a DecodeError carries.
const snippetLen = 100

// DecodeError means the raw model text was not parseable as JSON even
// after fence stripping. It carries a bounded prefix of the text for
// diagnostics.
type DecodeError struct {
	Snippet string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode JSON from model output: %v (text: %q)", e.Err, e.Snippet)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ValidationError means the parsed JSON does not satisfy the target
// schema after shape normalization. Value holds the normalized payload
// that failed.
type ValidationError struct {
	Reason string
	Value  interface{}
}

func (e *ValidationError) Error() string {
	return "model output failed schema validation: " + e.Reason
}
