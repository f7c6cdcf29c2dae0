package pastebin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected shape
	}{
		{
			name:     "paste list",
			body:     "<paste><paste_title>a</paste_title></paste>",
			expected: shapeXMLPasteList,
		},
		{
			// classification is prefix-only; the decoder is the one
			// that rejects this
			name:     "malformed paste list",
			body:     "<paste>definitely not xml",
			expected: shapeXMLPasteList,
		},
		{
			name:     "user element",
			body:     "<user><user_name>a</user_name></user>",
			expected: shapeXMLUser,
		},
		{
			name:     "json array",
			body:     `[{"key":"abc"}]`,
			expected: shapeJSONArray,
		},
		{
			name:     "json array with trailing newline",
			body:     "[{\"key\":\"abc\"}]\n",
			expected: shapeJSONArray,
		},
		{
			name:     "empty json array",
			body:     "[]",
			expected: shapeJSONArray,
		},
		{
			name:     "api error sentinel",
			body:     "Bad API request, invalid api_dev_key",
			expected: shapePlain,
		},
		{
			name:     "bare url",
			body:     "https://pastebin.com/abc123",
			expected: shapePlain,
		},
		{
			name:     "removal confirmation",
			body:     "Paste Removed",
			expected: shapePlain,
		},
		{
			name:     "empty body",
			body:     "",
			expected: shapePlain,
		},
		{
			name:     "unterminated bracket",
			body:     "[{\"key\":\"abc\"}",
			expected: shapePlain,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, classify(test.body))
		})
	}
}
