package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"lecture-lens-be/pkg/embedding"
	"lecture-lens-be/pkg/reranker"
)

// Pipeline runs the full retrieval chain for one transcript window:
// enrichment, embedding, session-scoped vector search, early-exit gate,
// reranking, citation assembly, best-effort persistence.
//
// A Pipeline is constructed once at startup and shared across sessions;
// all collaborators are expected to be safe for concurrent use. Calls for
// the same session must be serialized by the caller so citation windows
// are emitted in order.
type Pipeline struct {
	cfg      Config
	embedder embedding.EmbeddingProvider
	enricher QueryEnricher
	index    VectorIndex
	scorer   reranker.Scorer
	store    CitationStore
	log      *zap.Logger
}

func NewPipeline(
	cfg Config,
	embedder embedding.EmbeddingProvider,
	enricher QueryEnricher,
	index VectorIndex,
	scorer reranker.Scorer,
	store CitationStore,
	log *zap.Logger,
) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if enricher == nil {
		enricher = identityEnricher{}
	}
	return &Pipeline{
		cfg:      cfg,
		embedder: embedder,
		enricher: enricher,
		index:    index,
		scorer:   scorer,
		store:    store,
		log:      log,
	}
}

// Query retrieves citations for one window of transcript text.
//
// Empty or whitespace-only input short-circuits to an empty result without
// touching any model. Embedding and vector index failures are returned to
// the caller; reranker failures and persistence failures are absorbed.
func (p *Pipeline) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	started := time.Now()

	if strings.TrimSpace(req.TranscriptText) == "" {
		return p.emptyResult(req, nil, started), nil
	}

	enrichment := p.enricher.Enrich(req.TranscriptText)

	embedRes, err := p.embedder.Generate(enrichment.EnrichedQuery, p.cfg.EmbeddingTaskType)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	candidates, err := p.index.Query(ctx, p.cfg.Namespace, embedRes.Embedding.Values, p.cfg.TopKCandidates, map[string]string{
		"session_id": req.SessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("vector index query: %w", err)
	}

	if shouldExit(candidates, p.cfg.DistanceThreshold) {
		p.log.Debug("early exit, no candidate within distance threshold",
			zap.String("session_id", req.SessionID),
			zap.Int("window_index", req.WindowIndex),
			zap.Int("candidates", len(candidates)),
		)
		return p.emptyResult(req, enrichment.Keywords, started), nil
	}

	// The cross-encoder scores against the raw transcript text. Only the
	// embedding step uses the keyword-enriched query; feeding the enriched
	// text here would bias pairwise scores toward keyword-echoing passages.
	reranked := rerank(ctx, p.scorer, p.log, req.TranscriptText, candidates, p.cfg.TopKResults, p.cfg.RelevanceThreshold)

	citations := assembleCitations(p.log, reranked, req, p.cfg.SnippetLength)

	if p.store != nil && len(citations) > 0 {
		if err := p.store.Append(ctx, req.SessionID, req.WindowIndex, citations); err != nil {
			p.log.Error("citation persistence failed",
				zap.Error(err),
				zap.String("session_id", req.SessionID),
				zap.Int("window_index", req.WindowIndex),
			)
		}
	}

	return &QueryResult{
		WindowIndex: req.WindowIndex,
		Citations:   citations,
		Metadata: QueryMetadata{
			Keywords:         ensureKeywords(enrichment.Keywords),
			ProcessingTimeMs: time.Since(started).Milliseconds(),
		},
	}, nil
}

func (p *Pipeline) emptyResult(req QueryRequest, keywords []string, started time.Time) *QueryResult {
	return &QueryResult{
		WindowIndex: req.WindowIndex,
		Citations:   []Citation{},
		Metadata: QueryMetadata{
			Keywords:         ensureKeywords(keywords),
			ProcessingTimeMs: time.Since(started).Milliseconds(),
		},
	}
}

// identityEnricher is used when no enrichment is configured, the raw
// transcript text becomes the retrieval query unchanged.
type identityEnricher struct{}

func (identityEnricher) Enrich(text string) Enrichment {
	return Enrichment{EnrichedQuery: text}
}

func ensureKeywords(keywords []string) []string {
	if keywords == nil {
		return []string{}
	}
	return keywords
}
