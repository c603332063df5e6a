package textproc

import "sort"

// BuildGraph derives the co-occurrence graph over every cached word whose
// count is at least minFrequency. Two qualifying words are linked when they
// share at least one generation; the link weight is the number of shared
// generations. Each unordered pair yields at most one link, with the
// lexicographically smaller word as Source.
//
// The pairwise pass is O(k²·s) for k qualifying words and average
// sentence-set size s. No indexing is applied beyond the frequency filter,
// so large post-threshold vocabularies degrade quadratically.
//
// TotalWords and UniqueWords always cover the full cache, including words
// below the threshold, even when no word qualifies. minFrequency <= 1
// includes every cached word, since a word is only cached once it occurs.
func (p *Processor) BuildGraph(minFrequency int) GraphData {
	filtered := make([]*WordMetadata, 0, len(p.wordCache))
	for _, meta := range p.wordCache {
		if meta.Count >= minFrequency {
			filtered = append(filtered, meta)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Word < filtered[j].Word
	})

	nodes := make([]GraphNode, 0, len(filtered))
	for _, meta := range filtered {
		// Copy the metadata slices so the returned graph never aliases the
		// cache that the next ingest rebuilds.
		nodes = append(nodes, GraphNode{
			Word:        meta.Word,
			Count:       meta.Count,
			Sentences:   append([]int(nil), meta.Sentences...),
			WordIndices: append([]int(nil), meta.WordIndices...),
			Children:    []string{},
			Parents:     []string{},
		})
	}

	// filtered is sorted, so iterating i < j visits every unordered pair
	// exactly once with the pair already in canonical order.
	links := make([]GraphLink, 0)
	for i := 0; i < len(filtered); i++ {
		for j := i + 1; j < len(filtered); j++ {
			weight := sharedSentenceCount(filtered[i].Sentences, filtered[j].Sentences)
			if weight == 0 {
				continue
			}
			links = append(links, GraphLink{
				Source: filtered[i].Word,
				Target: filtered[j].Word,
				Weight: weight,
			})
		}
	}

	totalWords := 0
	for _, meta := range p.wordCache {
		totalWords += meta.Count
	}

	return GraphData{
		Nodes:       nodes,
		Links:       links,
		TotalWords:  totalWords,
		UniqueWords: len(p.wordCache),
	}
}

func sharedSentenceCount(a, b []int) int {
	set := make(map[int]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}

	count := 0
	for _, s := range b {
		if _, ok := set[s]; ok {
			count++
		}
	}
	return count
}
