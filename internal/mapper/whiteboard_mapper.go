package mapper

import (
	"minddock/internal/entity"
	"minddock/internal/model"
)

type WhiteboardMapper struct{}

func NewWhiteboardMapper() *WhiteboardMapper {
	return &WhiteboardMapper{}
}

func (m *WhiteboardMapper) DocumentToEntity(d *model.WhiteboardDocument) *entity.WhiteboardDocument {
	if d == nil {
		return nil
	}
	return &entity.WhiteboardDocument{
		Id:             d.Id,
		Title:          d.Title,
		ExcalidrawJson: d.ExcalidrawJson,
		FolderId:       d.FolderId,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (m *WhiteboardMapper) DocumentToModel(d *entity.WhiteboardDocument) *model.WhiteboardDocument {
	if d == nil {
		return nil
	}
	return &model.WhiteboardDocument{
		Id:             d.Id,
		Title:          d.Title,
		ExcalidrawJson: d.ExcalidrawJson,
		FolderId:       d.FolderId,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (m *WhiteboardMapper) DocumentsToEntities(docs []*model.WhiteboardDocument) []*entity.WhiteboardDocument {
	entities := make([]*entity.WhiteboardDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.DocumentToEntity(d)
	}
	return entities
}

// FolderToEntity maps a folder and whatever documents were preloaded with it.
func (m *WhiteboardMapper) FolderToEntity(f *model.WhiteboardFolder) *entity.WhiteboardFolder {
	if f == nil {
		return nil
	}
	docs := make([]*entity.WhiteboardDocument, len(f.Documents))
	for i := range f.Documents {
		docs[i] = m.DocumentToEntity(&f.Documents[i])
	}
	return &entity.WhiteboardFolder{
		Id:        f.Id,
		Name:      f.Name,
		Documents: docs,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// FolderToModel never carries documents; they are written through their own repository.
func (m *WhiteboardMapper) FolderToModel(f *entity.WhiteboardFolder) *model.WhiteboardFolder {
	if f == nil {
		return nil
	}
	return &model.WhiteboardFolder{
		Id:        f.Id,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *WhiteboardMapper) FoldersToEntities(folders []*model.WhiteboardFolder) []*entity.WhiteboardFolder {
	entities := make([]*entity.WhiteboardFolder, len(folders))
	for i, f := range folders {
		entities[i] = m.FolderToEntity(f)
	}
	return entities
}
