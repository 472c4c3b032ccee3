package unitofwork

import (
	"context"

	"minddock/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TaskRepository() contract.TaskRepository
	NoteRepository() contract.NoteRepository
	DailyLogRepository() contract.DailyLogRepository
	WhiteboardFolderRepository() contract.WhiteboardFolderRepository
	WhiteboardDocumentRepository() contract.WhiteboardDocumentRepository
}
