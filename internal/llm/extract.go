package llm

import "strings"

// extractJSON pulls a JSON document out of a model response that may wrap
// it in markdown fences or surrounding prose.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		if body, ok := fencedBlock(s, fence); ok {
			return body
		}
	}

	// No fence: scan for the first balanced {...} or [...] region.
	if start := strings.IndexAny(s, "{["); start >= 0 {
		depth := 0
		for i := start; i < len(s); i++ {
			switch s[i] {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}

	return s
}

// fencedBlock returns the content of the first fence-delimited block.
func fencedBlock(s, fence string) (string, bool) {
	start := strings.Index(s, fence)
	if start < 0 {
		return "", false
	}
	body := s[start+len(fence):]
	end := strings.Index(body, "```")
	if end < 0 {
		return "", false
	}
	return strings.Trim(body[:end], "\r\n"), true
}
