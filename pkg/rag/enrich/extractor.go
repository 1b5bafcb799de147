// Package enrich extracts salient keyphrases from a transcript window and
// appends them to the raw text to improve retrieval recall. The approach is
// embedding-based: candidate phrases are ranked by cosine similarity to the
// whole window, with a marginal-relevance penalty so the selected keywords
// stay diverse.
package enrich

import (
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lecture-lens-be/pkg/embedding"
	"lecture-lens-be/pkg/rag"
)

const (
	// DefaultTopN keywords are appended to the query.
	DefaultTopN = 5
	// DefaultPoolSize bounds how many candidate phrases get embedded.
	DefaultPoolSize = 20
	// DefaultMinTextLength below which extraction is skipped entirely.
	DefaultMinTextLength = 10

	// diversityWeight balances query relevance against redundancy with
	// already-selected keywords (0 = relevance only, 1 = diversity only).
	diversityWeight = 0.5
)

type Extractor struct {
	embedder      embedding.EmbeddingProvider
	log           *zap.Logger
	TopN          int
	PoolSize      int
	MinTextLength int
	TaskType      string
}

var _ rag.QueryEnricher = &Extractor{}

func NewExtractor(embedder embedding.EmbeddingProvider, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		embedder:      embedder,
		log:           log,
		TopN:          DefaultTopN,
		PoolSize:      DefaultPoolSize,
		MinTextLength: DefaultMinTextLength,
		TaskType:      "RETRIEVAL_QUERY",
	}
}

// Enrich returns the keywords found in text and the query with those
// keywords appended once. Extraction failures and short inputs degrade to
// the unmodified text, never an error.
func (e *Extractor) Enrich(text string) rag.Enrichment {
	if len(strings.TrimSpace(text)) < e.MinTextLength {
		return rag.Enrichment{Keywords: []string{}, EnrichedQuery: text}
	}

	keywords, err := e.extract(text, e.TopN)
	if err != nil {
		e.log.Warn("keyword extraction failed, querying with raw text", zap.Error(err))
		return rag.Enrichment{Keywords: []string{}, EnrichedQuery: text}
	}
	if len(keywords) == 0 {
		return rag.Enrichment{Keywords: []string{}, EnrichedQuery: text}
	}

	return rag.Enrichment{
		Keywords:      keywords,
		EnrichedQuery: text + " " + strings.Join(keywords, " "),
	}
}

// extract ranks candidate phrases by embedding similarity to the full text
// and greedily selects a diverse top-N.
func (e *Extractor) extract(text string, topN int) ([]string, error) {
	candidates := candidatePhrases(text, e.PoolSize)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	vectors, err := e.embedAll(append([]string{text}, candidates...))
	if err != nil {
		return nil, err
	}

	docVec := vectors[0]
	candVecs := vectors[1:]

	relevance := make([]float64, len(candidates))
	for i, v := range candVecs {
		relevance[i] = cosineSimilarity(docVec, v)
	}

	return selectDiverse(candidates, candVecs, relevance, topN), nil
}

func (e *Extractor) embedAll(texts []string) ([][]float32, error) {
	if batcher, ok := e.embedder.(embedding.BatchEmbeddingProvider); ok {
		return batcher.GenerateBatch(texts, e.TaskType)
	}

	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		res, err := e.embedder.Generate(t, e.TaskType)
		if err != nil {
			return nil, err
		}
		vectors[i] = res.Embedding.Values
	}
	return vectors, nil
}

// candidatePhrases builds the embedding pool: unigrams and bigrams of
// non-stop-word tokens, deduplicated, most frequent first, capped at
// poolSize.
func candidatePhrases(text string, poolSize int) []string {
	tokens := tokenize(text)

	counts := map[string]int{}
	order := []string{}
	addCandidate := func(phrase string) {
		if _, seen := counts[phrase]; !seen {
			order = append(order, phrase)
		}
		counts[phrase]++
	}

	for i, tok := range tokens {
		if isStopWord(tok) || len(tok) < 3 {
			continue
		}
		addCandidate(tok)
		if i+1 < len(tokens) {
			next := tokens[i+1]
			if !isStopWord(next) && len(next) >= 3 {
				addCandidate(tok + " " + next)
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > poolSize {
		order = order[:poolSize]
	}
	return order
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == ' ' || r == '-' {
			return r
		}
		return ' '
	}, strings.ToLower(text))
	return strings.Fields(cleaned)
}

// selectDiverse runs greedy maximal-marginal-relevance selection: each pick
// maximizes query similarity minus its worst redundancy with the phrases
// already chosen.
func selectDiverse(candidates []string, vectors [][]float32, relevance []float64, topN int) []string {
	if topN > len(candidates) {
		topN = len(candidates)
	}

	selected := make([]int, 0, topN)
	used := make([]bool, len(candidates))

	for len(selected) < topN {
		bestIdx := -1
		bestScore := math.Inf(-1)

		for i := range candidates {
			if used[i] {
				continue
			}
			redundancy := 0.0
			for _, s := range selected {
				if sim := cosineSimilarity(vectors[i], vectors[s]); sim > redundancy {
					redundancy = sim
				}
			}
			score := (1-diversityWeight)*relevance[i] - diversityWeight*redundancy
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			break
		}
		selected = append(selected, bestIdx)
		used[bestIdx] = true
	}

	keywords := make([]string, len(selected))
	for i, idx := range selected {
		keywords[i] = candidates[idx]
	}
	return keywords
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
