// Package jsonpointer provides fragment-rooted JSON Pointer resolution
// against generic document trees.
//
// This package implements the subset of RFC 6901 needed to locate the value a
// schema validator complained about. Pointers are always rooted at the
// document ("#" or "#/a/b/c"); relative pointers and URI references to other
// documents are not supported.
//
// Supported syntax:
//   - "" or "#" (the document root)
//   - "#/a/b/c" (key lookup through nested maps)
//   - "~0" and "~1" escapes ("~" and "/" respectively)
//
// Not supported:
//   - pointers without a leading "#/" (resolved as not-found)
//   - the "-" array-append token
//
// Numeric segments are treated as ordinary map keys, matching how validator
// instance paths address the document tree.
package jsonpointer

import "strings"

// fragmentPrefix roots every non-trivial pointer at the document.
const fragmentPrefix = "#/"

// Resolve walks root following ptr and returns the referenced value.
// The second return value reports whether resolution succeeded; a missing
// key or a non-map container anywhere along the path yields (nil, false)
// with no partial result.
func Resolve(root any, ptr string) (any, bool) {
	if ptr == "" || ptr == "#" {
		return root, true
	}
	if !strings.HasPrefix(ptr, fragmentPrefix) {
		return nil, false
	}

	current := root
	for _, token := range strings.Split(ptr[len(fragmentPrefix):], "/") {
		key := Unescape(token)
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[key]
			if !ok {
				return nil, false
			}
			current = next
		case map[any]any:
			next, ok := node[key]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

// Segments splits a validator instance path such as "/paths/~1pets/get" into
// its unescaped tokens. The empty path denotes the document root and yields
// a nil slice.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	tokens := strings.Split(strings.TrimPrefix(path, "/"), "/")
	segments := make([]string, len(tokens))
	for i, token := range tokens {
		segments[i] = Unescape(token)
	}
	return segments
}

// Unescape decodes the RFC 6901 escape sequences in a single reference
// token: "~1" becomes "/" and "~0" becomes "~", in that order.
func Unescape(token string) string {
	if !strings.Contains(token, "~") {
		return token
	}
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
