package goident

import "fmt"

// OracleError indicates an oracle invocation failure (timeout, non-zero
// exit, API error).
type OracleError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the invocation can be retried
}

func (e *OracleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oracle error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("oracle error: %s", e.Message)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError indicates the oracle's output contained no
// decodable brace-delimited object.
type MalformedResponseError struct {
	Output string // Raw oracle output, truncated for diagnostics
	Cause  error
}

func (e *MalformedResponseError) Error() string {
	out := e.Output
	if len(out) > 200 {
		out = out[:200]
	}
	if e.Cause != nil {
		return fmt.Sprintf("malformed oracle response: %v: %q", e.Cause, out)
	}
	return fmt.Sprintf("malformed oracle response: %q", out)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache persistence failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}
