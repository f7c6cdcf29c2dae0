package pastebin

import "strings"

// shape is the coarse format of a response body. The upstream API signals
// failure inside 200 responses, so every operation classifies the body
// before decoding anything from it.
type shape int

const (
	// a sequence of sibling <paste> elements
	shapeXMLPasteList shape = iota
	// a single <user> element
	shapeXMLUser
	// a JSON array (the scraping feed and item metadata endpoints)
	shapeJSONArray
	// anything else: bare URLs, "Paste Removed", "No pastes found.",
	// "Bad API request, ..." and the rest of the one-line sentinels
	shapePlain
)

// classify is total: every body maps to exactly one shape and malformed
// content is only discovered by the decoder that follows.
//
// The upstream terminates feed bodies with a newline after the closing
// bracket; both that and a bare closing bracket are accepted here.
func classify(body string) shape {
	switch {
	case strings.HasPrefix(body, "<paste>"):
		return shapeXMLPasteList
	case strings.HasPrefix(body, "<user>"):
		return shapeXMLUser
	case isJSONArray(body):
		return shapeJSONArray
	default:
		return shapePlain
	}
}

func isJSONArray(body string) bool {
	trimmed := strings.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return false
	}
	end := strings.TrimSuffix(trimmed, "\n")
	return strings.HasSuffix(end, "]")
}
