package contract

import (
	"context"

	"minddock/internal/entity"
	"minddock/internal/repository/specification"

	"github.com/google/uuid"
)

type WhiteboardFolderRepository interface {
	Create(ctx context.Context, folder *entity.WhiteboardFolder) error
	Update(ctx context.Context, folder *entity.WhiteboardFolder) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhiteboardFolder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhiteboardFolder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type WhiteboardDocumentRepository interface {
	Create(ctx context.Context, doc *entity.WhiteboardDocument) error
	Update(ctx context.Context, doc *entity.WhiteboardDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DetachFromFolder sets folder_id to NULL on every document in the folder
	// and returns how many documents were detached.
	DetachFromFolder(ctx context.Context, folderId uuid.UUID) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WhiteboardDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WhiteboardDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
