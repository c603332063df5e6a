package textproc

import (
	"sort"
	"time"
)

// Processor is the batch text-analytics engine. It owns the word cache that
// IngestBatch rebuilds and that BuildGraph, WordFrequencies and
// PerformanceStats read.
//
// A Processor is not safe for concurrent use. Every operation is one
// synchronous call; the cache only mutates inside IngestBatch, as a full
// clear-then-rebuild, so reads between ingests always see a complete snapshot
// of the last batch.
//
// A Processor should be created using NewProcessor.
type Processor struct {
	wordCache       map[string]*WordMetadata
	stopWords       map[string]struct{}
	generationCount int
	minWordLength   int
}

// NewProcessorParams defines the configuration parameters for creating a new
// Processor.
//
// MinWordLength is the smallest token byte length that is counted; tokens at
// or below it are skipped. Zero selects the default of 2.
type NewProcessorParams struct {
	MinWordLength int
}

// NewProcessor creates and returns a new Processor with an empty cache and
// the fixed stop-word set.
func NewProcessor(params NewProcessorParams) *Processor {
	minLen := params.MinWordLength
	if minLen <= 0 {
		minLen = 2
	}

	return &Processor{
		wordCache:     make(map[string]*WordMetadata),
		stopWords:     stopWordSet(),
		minWordLength: minLen,
	}
}

// IngestBatch replaces the cache with the accumulated word data of the given
// generations. Prior state is discarded entirely; there is no incremental
// accumulation across batches.
//
// Generations are processed in input order, so sentence indices land in the
// cache in ascending order. The returned word list is sorted
// lexicographically.
func (p *Processor) IngestBatch(generations []string) IngestResult {
	start := time.Now()

	p.wordCache = make(map[string]*WordMetadata)
	p.generationCount = len(generations)

	for sentIdx, generation := range generations {
		p.processSentence(generation, sentIdx)
	}

	words := make([]WordMetadata, 0, len(p.wordCache))
	for _, meta := range p.wordCache {
		words = append(words, *meta)
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Word < words[j].Word
	})

	return IngestResult{
		Words:            words,
		ProcessingTime:   float64(time.Since(start).Microseconds()) / 1000.0,
		TotalGenerations: len(generations),
	}
}

func (p *Processor) processSentence(sentence string, sentIdx int) {
	for wordIdx, word := range Tokenize(sentence) {
		if len(word) <= p.minWordLength {
			continue
		}
		if _, ok := p.stopWords[word]; ok {
			continue
		}

		meta, ok := p.wordCache[word]
		if !ok {
			meta = &WordMetadata{Word: word}
			p.wordCache[word] = meta
		}

		meta.Count++
		if !containsInt(meta.Sentences, sentIdx) {
			meta.Sentences = append(meta.Sentences, sentIdx)
		}
		meta.WordIndices = append(meta.WordIndices, wordIdx)
	}
}

func containsInt(values []int, target int) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
