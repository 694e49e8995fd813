package pipeline

import "strings"

// Chunk splits text on single spaces into groups of at most maxWords words.
// Rejoining the chunks with a single space reproduces text exactly. Empty
// text yields no chunks.
func Chunk(text string, maxWords int) []string {
	if text == "" {
		return nil
	}
	if maxWords < 1 {
		maxWords = 1
	}

	words := strings.Split(text, " ")
	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := min(i+maxWords, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}
