package unitofwork

import (
	"context"

	"lecture-lens-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FolderRepository() contract.FolderRepository
	SessionRepository() contract.SessionRepository
	DocumentRepository() contract.DocumentRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
	TranscriptRepository() contract.TranscriptRepository
	CitationRepository() contract.CitationRepository
	NoteRepository() contract.NoteRepository
}
