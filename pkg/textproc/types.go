package textproc

// WordMetadata holds the accumulated data for one distinct cached word.
//
// Sentences lists the generation indices the word appears in, each index at
// most once, in ascending order. WordIndices lists the intra-generation
// position of every occurrence in processing order; positions restart at zero
// for each generation, so the same value can recur across generations and the
// slice is intentionally not deduplicated. len(WordIndices) always equals
// Count.
type WordMetadata struct {
	Word        string `json:"word"`
	Count       int    `json:"count"`
	Sentences   []int  `json:"sentences"`
	WordIndices []int  `json:"wordIndices"`
}

// IngestResult is the outcome of one batch ingest. Words is sorted
// lexicographically so repeated runs over the same input produce identical
// output.
type IngestResult struct {
	Words            []WordMetadata `json:"words"`
	ProcessingTime   float64        `json:"processingTime"`
	TotalGenerations int            `json:"totalGenerations"`
}

// GraphNode is a word that passed the frequency threshold, carrying its
// cache metadata. Children, Parents, IsRoot and IsEnd are reserved for
// directed-edge derivation and are never populated by the co-occurrence
// builder.
type GraphNode struct {
	Word        string   `json:"word"`
	Count       int      `json:"count"`
	Sentences   []int    `json:"sentences"`
	WordIndices []int    `json:"word_indices"`
	Children    []string `json:"children"`
	Parents     []string `json:"parents"`
	IsRoot      bool     `json:"is_root"`
	IsEnd       bool     `json:"is_end"`
}

// GraphLink is an undirected co-occurrence edge. Source is always the
// lexicographically smaller word, so each unordered pair yields exactly one
// link. Weight is the number of generations both words appear in.
type GraphLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// GraphData is the assembled co-occurrence graph. TotalWords and UniqueWords
// are computed over the entire cache, not just the thresholded nodes.
type GraphData struct {
	Nodes       []GraphNode `json:"nodes"`
	Links       []GraphLink `json:"links"`
	TotalWords  int         `json:"total_words"`
	UniqueWords int         `json:"unique_words"`
}

// PerformanceStats summarizes the cache after the last ingest.
// AverageWordsPerGeneration is NaN when no batch has been ingested yet;
// callers serializing to JSON must handle that themselves.
type PerformanceStats struct {
	TotalWords                int     `json:"totalWords"`
	UniqueWords               int     `json:"uniqueWords"`
	Generations               int     `json:"generations"`
	AverageWordsPerGeneration float64 `json:"averageWordsPerGeneration"`
}
