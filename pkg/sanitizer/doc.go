// Package sanitizer provides small, stateless helpers for cleaning and
// normalising text and collections.
//
// The helpers fall into a few groups:
//
//   - Strings – trimming, case conversion between common naming conventions
//     (snake_case, kebab-case, camelCase, Title Case), whitespace
//     normalisation, accent stripping and removal of markup or escape
//     characters.
//
//   - Collections – flattening nested slices, deduplicating and filtering
//     string slices.
//
//   - Pipelines – the higher-order Apply and Compose helpers for combining
//     transformations:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/murcoder/helperkit/pkg/sanitizer"
//
// Example – accent stripping:
//
//	ascii := sanitizer.RemoveAccents("Ångström café") // "Angstrom cafe"
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe
// result (usually the original input) if a transformation fails.
//
// All helpers are pure functions without global state and are safe for use
// from multiple goroutines concurrently.
package sanitizer
