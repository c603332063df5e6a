package textproc

import (
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"
)

// BenchmarkTokenization times a plain lowercase-and-split loop over text and
// returns the average duration per iteration in milliseconds. It measures
// the raw split cost only, without stop-word filtering or cache updates.
func BenchmarkTokenization(text string, iterations int) float64 {
	if iterations <= 0 {
		return 0
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		_ = strings.Fields(strings.ToLower(text))
	}
	elapsed := time.Since(start)

	return float64(elapsed.Microseconds()) / 1000.0 / float64(iterations)
}

// EncodedTokenCount returns the BPE token count of text under the named
// tiktoken encoding, for comparing the whitespace word count against an LLM
// token budget.
func EncodedTokenCount(text, encoding string) (int, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return 0, err
	}

	return len(enc.Encode(text, nil, nil)), nil
}
