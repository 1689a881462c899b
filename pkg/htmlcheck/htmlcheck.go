package htmlcheck

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// IsAllowed reports whether every distinct element tag found in the input is
// present in allowedTags. Plain text with no markup passes; an empty allowed
// set rejects any input that contains at least one element.
//
// Literal backslashes are stripped from the input before parsing, and the
// parse itself is error-tolerant: malformed markup is evaluated on a
// best-effort basis. Any unexpected fault inside the parse resolves to false
// rather than a panic — uncertainty about the content means rejection.
func IsAllowed(input string, allowedTags []string) (ok bool) {
	// Fail closed: a panicking parser must reject, never crash the caller.
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	tags, err := collectTags(input)
	if err != nil {
		return false
	}

	allowed := make(map[string]bool, len(allowedTags))
	for _, t := range allowedTags {
		allowed[t] = true
	}

	for tag := range tags {
		if !allowed[tag] {
			return false
		}
	}
	return true
}

// Tags returns the distinct element tag names found in the input, sorted
// alphabetically. It applies the same backslash stripping and tolerant
// parsing as IsAllowed. On an unexpected parse fault it returns nil.
func Tags(input string) (tags []string) {
	defer func() {
		if recover() != nil {
			tags = nil
		}
	}()

	set, err := collectTags(input)
	if err != nil {
		return nil
	}

	tags = make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// collectTags parses the input and gathers the set of distinct element tag
// names. A fresh parser is allocated per call, so concurrent calls never
// share state.
func collectTags(input string) (map[string]bool, error) {
	input = strings.ReplaceAll(input, `\`, "")

	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return nil, err
	}

	tags := make(map[string]bool)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tags[n.Data] = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// html.Parse wraps every fragment in html/head/body; those synthetic
	// elements are not part of the caller's input.
	delete(tags, "html")
	delete(tags, "head")
	delete(tags, "body")

	return tags, nil
}
