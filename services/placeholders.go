package services

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches {{dotted.path}} tokens. The path is a
// dot-separated identifier sequence; surrounding whitespace is allowed.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)\s*\}\}`)

// Substitute replaces every {{path}} token in text with the value resolved
// from ctx. A token whose path does not resolve is left untouched, so
// substitution never produces an empty hole and is idempotent: running it
// again over its own output with the same context changes nothing.
func Substitute(text string, ctx map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(token string) string {
		sub := placeholderPattern.FindStringSubmatch(token)
		value, ok := resolvePath(ctx, sub[1])
		if !ok {
			return token
		}
		return fmt.Sprintf("%v", value)
	})
}

// resolvePath walks the dotted path through nested maps. It reports false
// when any segment is missing or the final value is nil.
func resolvePath(ctx map[string]any, path string) (any, bool) {
	var current any = ctx
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// ExtractVariableNames returns the unique placeholder paths found in text,
// in first-appearance order.
func ExtractVariableNames(text string) []string {
	var names []string
	seen := map[string]bool{}
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		path := match[1]
		if !seen[path] {
			seen[path] = true
			names = append(names, path)
		}
	}
	return names
}

// VariableCheck is the result of ValidateVariables.
type VariableCheck struct {
	Valid   bool
	Missing []string
}

// ValidateVariables reports whether every placeholder in text resolves
// against ctx, listing the paths that do not.
func ValidateVariables(text string, ctx map[string]any) VariableCheck {
	check := VariableCheck{Valid: true}
	for _, path := range ExtractVariableNames(text) {
		if _, ok := resolvePath(ctx, path); !ok {
			check.Valid = false
			check.Missing = append(check.Missing, path)
		}
	}
	return check
}
