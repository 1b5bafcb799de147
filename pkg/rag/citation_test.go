package rag

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestAssembleCitationsDenseRanks(t *testing.T) {
	reranked := []RerankedCandidate{
		{Candidate: Candidate{ID: "a", Text: "first", Metadata: CandidateMetadata{DocumentID: "d1", DocumentName: "Doc 1", PageNumber: 3}}, RelevanceScore: 0.9},
		{Candidate: Candidate{ID: "b", Text: "second", Metadata: CandidateMetadata{DocumentID: "d2", DocumentName: "Doc 2", PageNumber: 7, SectionHeading: "Intro"}}, RelevanceScore: 0.6},
	}
	req := QueryRequest{SessionID: "s1", WindowIndex: 4, TranscriptFragmentID: "f1"}

	got := assembleCitations(zap.NewNop(), reranked, req, 200)

	if len(got) != 2 {
		t.Fatalf("got %d citations, want 2", len(got))
	}
	for i, c := range got {
		if c.Rank != i+1 {
			t.Errorf("citation %d rank = %d, want %d", i, c.Rank, i+1)
		}
		if c.SessionID != "s1" || c.WindowIndex != 4 {
			t.Errorf("citation %d session/window = %s/%d", i, c.SessionID, c.WindowIndex)
		}
	}
	if got[1].SectionHeading != "Intro" {
		t.Errorf("section heading = %q, want Intro", got[1].SectionHeading)
	}
}

func TestAssembleCitationsDropsMissingDocumentID(t *testing.T) {
	reranked := []RerankedCandidate{
		{Candidate: Candidate{ID: "a", Text: "cited", Metadata: CandidateMetadata{DocumentID: "d1"}}, RelevanceScore: 0.9},
		{Candidate: Candidate{ID: "b", Text: "orphan", Metadata: CandidateMetadata{}}, RelevanceScore: 0.8},
		{Candidate: Candidate{ID: "c", Text: "also cited", Metadata: CandidateMetadata{DocumentID: "d2"}}, RelevanceScore: 0.5},
	}

	got := assembleCitations(zap.NewNop(), reranked, QueryRequest{SessionID: "s"}, 200)

	if len(got) != 2 {
		t.Fatalf("got %d citations, want 2", len(got))
	}
	// Ranks must stay dense after the drop.
	if got[0].Rank != 1 || got[1].Rank != 2 {
		t.Errorf("ranks = [%d %d], want [1 2]", got[0].Rank, got[1].Rank)
	}
	if got[1].DocumentID != "d2" {
		t.Errorf("second citation document = %q, want d2", got[1].DocumentID)
	}
}

func TestAssembleCitationsTruncatesSnippet(t *testing.T) {
	long := strings.Repeat("x", 500)
	reranked := []RerankedCandidate{
		{Candidate: Candidate{ID: "a", Text: long, Metadata: CandidateMetadata{DocumentID: "d1"}}, RelevanceScore: 0.9},
	}

	got := assembleCitations(zap.NewNop(), reranked, QueryRequest{}, 200)

	if len(got[0].Snippet) != 200 {
		t.Errorf("snippet length = %d, want 200", len(got[0].Snippet))
	}
}
