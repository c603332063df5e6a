package textproc

import "math"

// WordFrequencies returns a word → count mapping over the full cache, one
// entry per distinct cached word.
func (p *Processor) WordFrequencies() map[string]int {
	frequencies := make(map[string]int, len(p.wordCache))
	for word, meta := range p.wordCache {
		frequencies[word] = meta.Count
	}
	return frequencies
}

// PerformanceStats returns aggregate stats for the last ingested batch.
// When no batch has been ingested, AverageWordsPerGeneration is NaN: the
// average is undefined rather than zero, and callers decide how to render
// that.
func (p *Processor) PerformanceStats() PerformanceStats {
	totalWords := 0
	for _, meta := range p.wordCache {
		totalWords += meta.Count
	}

	average := math.NaN()
	if p.generationCount > 0 {
		average = float64(totalWords) / float64(p.generationCount)
	}

	return PerformanceStats{
		TotalWords:                totalWords,
		UniqueWords:               len(p.wordCache),
		Generations:               p.generationCount,
		AverageWordsPerGeneration: average,
	}
}
