package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonText strips everything outside CJK ideographs, the punctuation the
// splitter understands, whitespace and word characters. Latin model
// numbers like "MH60R" survive as word runs; characters such as '-' and
// '/' do not, which matches how registered vocabulary is looked up after
// cleaning.
var nonText = regexp.MustCompile(`[^\x{4e00}-\x{9fa5}，。！？；：“”《》\s\w]`)

// minSentenceRunes is the minimum length of a sentence worth tagging.
// Shorter fragments are headline debris or list markers.
const minSentenceRunes = 4

// CleanText removes noise characters, keeping text and allowed punctuation.
func CleanText(text string) string {
	return nonText.ReplaceAllString(text, "")
}

// isSentenceEnd reports whether r terminates a sentence.
func isSentenceEnd(r rune) bool {
	switch r {
	case '。', '！', '？', '；':
		return true
	}
	return false
}

// SplitSentences cleans the text, splits it on sentence-final punctuation
// and drops fragments shorter than minSentenceRunes after trimming.
// Empty or punctuation-only input yields zero sentences, not an error.
func SplitSentences(text string) []string {
	cleaned := CleanText(text)

	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if utf8.RuneCountInString(s) >= minSentenceRunes {
			sentences = append(sentences, s)
		}
	}

	for _, r := range cleaned {
		if isSentenceEnd(r) {
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return sentences
}
