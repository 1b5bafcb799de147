package rag

import (
	"go.uber.org/zap"
)

// assembleCitations converts the reranked list into ordered Citation records.
// Candidates without a document_id cannot be cited and are dropped with a
// warning; ranks stay dense from 1 after any drop.
func assembleCitations(log *zap.Logger, reranked []RerankedCandidate, req QueryRequest, snippetLength int) []Citation {
	citations := make([]Citation, 0, len(reranked))

	for _, rc := range reranked {
		if rc.Metadata.DocumentID == "" {
			log.Warn("dropping candidate without document_id",
				zap.String("candidate_id", rc.ID),
				zap.String("session_id", req.SessionID),
			)
			continue
		}

		citations = append(citations, Citation{
			Rank:                 len(citations) + 1,
			DocumentID:           rc.Metadata.DocumentID,
			DocumentName:         rc.Metadata.DocumentName,
			PageNumber:           rc.Metadata.PageNumber,
			SectionHeading:       rc.Metadata.SectionHeading,
			Snippet:              truncateSnippet(rc.Text, snippetLength),
			RelevanceScore:       rc.RelevanceScore,
			WindowIndex:          req.WindowIndex,
			SessionID:            req.SessionID,
			TranscriptFragmentID: req.TranscriptFragmentID,
		})
	}

	return citations
}

func truncateSnippet(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
