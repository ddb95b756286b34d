package utils

import "strings"

// CleanJSONResponse removes markdown code fences and prose wrapping that
// generative models add around JSON, then trims to the outermost JSON value.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```html", "")
	response = strings.ReplaceAll(response, "```", "")

	prefixes := []string{
		"Here's the itinerary:",
		"Here is the itinerary:",
		"Here's the travel plan:",
		"Here is the travel plan:",
		"Travel plan:",
		"Itinerary:",
	}
	trimmed := strings.TrimSpace(response)
	for _, prefix := range prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
			break
		}
	}
	response = trimmed

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if objEnd := findMatchingDelimiter(response, objStart, '{', '}'); objEnd != -1 {
			response = response[objStart : objEnd+1]
		}
	} else if arrStart != -1 {
		if arrEnd := findMatchingDelimiter(response, arrStart, '[', ']'); arrEnd != -1 {
			response = response[arrStart : arrEnd+1]
		}
	}

	return strings.TrimSpace(response)
}

// StripCodeFences is the lighter variant used for HTML responses, where only
// the fence markers need to go.
func StripCodeFences(response string) string {
	response = strings.ReplaceAll(response, "```html", "")
	response = strings.ReplaceAll(response, "```HTML", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

// findMatchingDelimiter walks the string from an opening delimiter to its
// matching close, skipping string literals and escapes.
func findMatchingDelimiter(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
