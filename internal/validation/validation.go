// Package validation holds the pure input checks run before any workspace
// state changes: prompt content rules, project naming rules and a naive
// balance check over generated code.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPromptLength = 10
	MaxPromptLength = 2000

	MinProjectNameLength = 2
	MaxProjectNameLength = 50
)

// Result reports the outcome of a validation check. Warnings never block;
// IsValid is false only when at least one error was recorded.
type Result struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

var blockedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(eval|exec)\s*\(`),
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bon\w+\s*=`),
}

var warningPatterns = []struct {
	pattern *regexp.Regexp
	message string
}{
	{regexp.MustCompile(`(?i)\b(todo|fixme|hack)\b`), "Prompt contains placeholder terms"},
	{regexp.MustCompile(`(?i)\blorem ipsum\b`), "Consider providing real content instead of placeholders"},
}

var (
	emptyBracketsPattern = regexp.MustCompile(`\[\s*\]|\{\s*\}`)
	projectNamePattern   = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\s\-_]*$`)
	consolePattern       = regexp.MustCompile(`console\.(log|error|warn)`)
	debuggerPattern      = regexp.MustCompile(`debugger`)
)

// ValidatePrompt checks a generation prompt against length and unsafe-content
// rules. Blocked patterns report a single error for the first match.
func ValidatePrompt(prompt string) Result {
	var errors, warnings []string
	trimmed := strings.TrimSpace(prompt)

	if utf8.RuneCountInString(trimmed) < MinPromptLength {
		errors = append(errors, fmt.Sprintf("Prompt must be at least %d characters. Please provide more detail about what you want to build.", MinPromptLength))
	}
	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		errors = append(errors, fmt.Sprintf("Prompt exceeds %d characters. Please be more concise.", MaxPromptLength))
	}

	for _, pattern := range blockedPatterns {
		if pattern.MatchString(trimmed) {
			errors = append(errors, "Prompt contains potentially unsafe content. Please remove any script tags or executable code.")
			break
		}
	}

	for _, w := range warningPatterns {
		if w.pattern.MatchString(trimmed) {
			warnings = append(warnings, w.message)
		}
	}

	if emptyBracketsPattern.MatchString(trimmed) {
		warnings = append(warnings, "Prompt contains empty brackets. Consider filling in specific values.")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ValidateProjectName checks length and the allowed character shape: the name
// must start with a letter or digit and may continue with letters, digits,
// spaces, hyphens and underscores.
func ValidateProjectName(name string) Result {
	var errors, warnings []string
	trimmed := strings.TrimSpace(name)

	if utf8.RuneCountInString(trimmed) < MinProjectNameLength {
		errors = append(errors, fmt.Sprintf("Project name must be at least %d characters.", MinProjectNameLength))
	}
	if utf8.RuneCountInString(trimmed) > MaxProjectNameLength {
		errors = append(errors, fmt.Sprintf("Project name must be %d characters or less.", MaxProjectNameLength))
	}
	if !projectNamePattern.MatchString(trimmed) {
		errors = append(errors, "Project name must start with a letter or number and can only contain letters, numbers, spaces, hyphens, and underscores.")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// ValidateCode runs a naive structural sanity check over generated code.
// Brace and parenthesis balance are counted, not parsed, so each unbalanced
// pair kind reports its own error.
func ValidateCode(code string) Result {
	var errors, warnings []string

	if strings.Count(code, "{") != strings.Count(code, "}") {
		errors = append(errors, "Mismatched curly braces detected.")
	}
	if strings.Count(code, "(") != strings.Count(code, ")") {
		errors = append(errors, "Mismatched parentheses detected.")
	}

	if consolePattern.MatchString(code) {
		warnings = append(warnings, "Code contains console statements. Consider removing for production.")
	}
	if debuggerPattern.MatchString(code) {
		warnings = append(warnings, "Code contains debugger statement.")
	}

	return Result{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}
