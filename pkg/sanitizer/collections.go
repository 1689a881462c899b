package sanitizer

import "strings"

// Flatten merges a slice of slices into a single slice, preserving element
// order. Nil inner slices contribute nothing.
func Flatten[T any](nested [][]T) []T {
	size := 0
	for _, inner := range nested {
		size += len(inner)
	}

	result := make([]T, 0, size)
	for _, inner := range nested {
		result = append(result, inner...)
	}
	return result
}

// FlattenDeep flattens arbitrarily nested []any values into a single flat
// slice, preserving element order. Non-slice elements are appended as-is, so
// mixed inputs like []any{1, []any{2, []any{3}}, 4} yield []any{1, 2, 3, 4}.
func FlattenDeep(nested []any) []any {
	result := make([]any, 0, len(nested))
	for _, item := range nested {
		if inner, ok := item.([]any); ok {
			result = append(result, FlattenDeep(inner)...)
			continue
		}
		result = append(result, item)
	}
	return result
}

// Deduplicate removes repeated elements, preserving first-occurrence order.
func Deduplicate[T comparable](slice []T) []T {
	seen := make(map[T]bool)
	result := make([]T, 0)

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

// FilterEmpty removes whitespace-only entries from a string slice.
func FilterEmpty(slice []string) []string {
	result := make([]string, 0)
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// TrimStringSlice trims whitespace from every entry.
func TrimStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.TrimSpace(item)
	}
	return result
}

// ToLowerStringSlice lowercases every entry.
func ToLowerStringSlice(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.ToLower(item)
	}
	return result
}

// CleanStringSlice applies the standard cleanup pipeline: trim entries, drop
// empties, deduplicate.
func CleanStringSlice(slice []string) []string {
	return Apply(slice,
		TrimStringSlice,
		FilterEmpty,
		Deduplicate[string],
	)
}
