package goident

// FormatDescriptions maps each output format to a human-readable description
// used in oracle prompts.
var FormatDescriptions = map[OutputFormat]string{
	KebabCase:  "kebab-case (lowercase words joined with hyphens)",
	SnakeCase:  "snake_case (lowercase words joined with underscores)",
	CamelCase:  "camelCase (first word lowercase, subsequent words capitalized, no separator)",
	PascalCase: "PascalCase (every word capitalized, no separator)",
	Lowercase:  "lowercase (lowercase words concatenated with no separator)",
	Uppercase:  "UPPERCASE (uppercase words joined with underscores)",
}

// FormatExamples maps each output format to a worked example shown to the
// oracle so it can mirror the convention.
var FormatExamples = map[OutputFormat]string{
	KebabCase:  "power-board-test",
	SnakeCase:  "power_board_test",
	CamelCase:  "powerBoardTest",
	PascalCase: "PowerBoardTest",
	Lowercase:  "powerboardtest",
	Uppercase:  "POWER_BOARD_TEST",
}

// GetFormatDescription returns the prompt description for a format, falling
// back to the raw format name for an unknown format.
func GetFormatDescription(f OutputFormat) string {
	if desc, ok := FormatDescriptions[f]; ok {
		return desc
	}
	return string(f)
}

// GetFormatExample returns the worked example for a format, or an empty
// string for an unknown format.
func GetFormatExample(f OutputFormat) string {
	return FormatExamples[f]
}
