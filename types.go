package goident

import "time"

// OutputFormat selects the casing convention applied to every translation
// produced by a Translator.
type OutputFormat string

const (
	// KebabCase joins words with hyphens: power-board-test.
	KebabCase OutputFormat = "kebab-case"
	// SnakeCase joins words with underscores: power_board_test.
	SnakeCase OutputFormat = "snake_case"
	// CamelCase lowercases the first word and capitalizes the rest: powerBoardTest.
	CamelCase OutputFormat = "camelCase"
	// PascalCase capitalizes every word: PowerBoardTest.
	PascalCase OutputFormat = "PascalCase"
	// Lowercase concatenates words with no separator: powerboardtest.
	Lowercase OutputFormat = "lowercase"
	// Uppercase joins words with underscores and uppercases: POWER_BOARD_TEST.
	Uppercase OutputFormat = "UPPERCASE"
)

// Formats lists every supported output format.
var Formats = []OutputFormat{
	KebabCase,
	SnakeCase,
	CamelCase,
	PascalCase,
	Lowercase,
	Uppercase,
}

// ParseFormat returns the OutputFormat matching name.
// Returns KebabCase and false for an unrecognized name.
func ParseFormat(name string) (OutputFormat, bool) {
	for _, f := range Formats {
		if string(f) == name {
			return f, true
		}
	}
	return KebabCase, false
}

// FailureSentinel is the fixed placeholder returned for any phrase the
// engine could not translate. Callers detect failure by exact comparison.
// Failures are never cached, so a later call retries the oracle.
const FailureSentinel = "translation-failed"

const (
	// DefaultMaxLength is the default maximum length of a formatted identifier.
	DefaultMaxLength = 30

	// LengthSlack is the margin past the maximum length within which a
	// formatted identifier is accepted untruncated. Beyond it the result is
	// cut to the maximum length.
	LengthSlack = 10

	// DefaultTimeout bounds a single oracle invocation.
	DefaultTimeout = 120 * time.Second
)
