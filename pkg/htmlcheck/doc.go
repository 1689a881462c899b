// Package htmlcheck validates HTML content against a tag whitelist.
//
// The package answers one question: does a piece of HTML use only tags the
// caller considers acceptable? It does not sanitize — nothing is removed or
// rewritten; the result is a plain pass/fail. Callers that need the offending
// tags can use Tags to inspect what the parser found.
//
// Parsing is done with the error-tolerant golang.org/x/net/html parser, so
// malformed or truncated markup never causes a failure by itself: the checker
// evaluates whatever elements the parser manages to recognize. Any unexpected
// fault during parsing resolves to a rejection rather than a panic — when in
// doubt, the content is treated as unsafe.
//
// # Usage
//
// Import the package:
//
//	import "github.com/murcoder/helperkit/pkg/htmlcheck"
//
// Check user-submitted markup against an allowed set:
//
//	ok := htmlcheck.IsAllowed("<p>hello</p>", []string{"p", "a", "em"})
//	// ok == true
//
//	ok = htmlcheck.IsAllowed("<p>hi</p><script>evil()</script>", []string{"p"})
//	// ok == false
//
// # Caller contract
//
// Tag comparison is case-sensitive against the names the parser emits. The
// parser normalizes standard HTML element names to lowercase, so the allowed
// set must be supplied in lowercase; an uppercase entry will never match.
//
// Before parsing, all literal backslash characters are stripped from the
// input, so markup like "<p\>" is recognized as a "p" element. This mirrors
// the behavior of the system this package originates from and is kept for
// compatibility; it is a pre-parse normalization step, not a security control
// on its own.
//
// The checker imposes no size or time limits. Callers handling adversarial
// input should bound payload size before invoking it.
package htmlcheck
