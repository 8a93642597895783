package article

import (
	"encoding/json"
	"strings"
)

// ExtractPlainText walks a serialized block document and concatenates every
// leaf text node, separating top-level blocks with spaces. Malformed input
// yields an empty string rather than an error since excerpts are best-effort.
func ExtractPlainText(body string) string {
	if body == "" {
		return ""
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return ""
	}

	var parts []string
	collectText(doc, &parts)

	return strings.Join(parts, " ")
}

func collectText(node interface{}, parts *[]string) {
	switch v := node.(type) {
	case []interface{}:
		for _, child := range v {
			collectText(child, parts)
		}
	case map[string]interface{}:
		if text, ok := v["text"].(string); ok {
			trimmed := strings.TrimSpace(text)
			if trimmed != "" {
				*parts = append(*parts, trimmed)
			}
		}
		collectText(v["content"], parts)
		collectText(v["children"], parts)
	}
}
