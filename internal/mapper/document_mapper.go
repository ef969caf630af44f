package mapper

import (
	"ai-grading-be/internal/entity"
	"ai-grading-be/internal/model"
)

// DocumentMapper converts answer keys and student answers between their
// persistence and domain shapes.
type DocumentMapper struct {
	orgMapper *OrgMapper
}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{orgMapper: NewOrgMapper()}
}

func (m *DocumentMapper) AnswerKeyToEntity(e *model.AnswerKey) *entity.AnswerKey {
	if e == nil {
		return nil
	}
	return &entity.AnswerKey{
		Id:             e.Id,
		FileName:       e.FileName,
		Content:        e.Content,
		FilePath:       e.FilePath,
		FileSize:       e.FileSize,
		FileType:       e.FileType,
		CollectionName: e.CollectionName,
		SubjectId:      e.SubjectId,
		TermId:         e.TermId,
		Processed:      e.Processed,
		ProcessedAt:    e.ProcessedAt,
		Status:         entity.ProcessingStatus(e.Status),
		Subject:        m.orgMapper.SubjectToEntity(e.Subject),
		Term:           m.orgMapper.TermToEntity(e.Term),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *DocumentMapper) AnswerKeyToModel(e *entity.AnswerKey) *model.AnswerKey {
	if e == nil {
		return nil
	}
	return &model.AnswerKey{
		Id:             e.Id,
		FileName:       e.FileName,
		Content:        e.Content,
		FilePath:       e.FilePath,
		FileSize:       e.FileSize,
		FileType:       e.FileType,
		CollectionName: e.CollectionName,
		SubjectId:      e.SubjectId,
		TermId:         e.TermId,
		Processed:      e.Processed,
		ProcessedAt:    e.ProcessedAt,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *DocumentMapper) StudentAnswerToEntity(e *model.StudentAnswer) *entity.StudentAnswer {
	if e == nil {
		return nil
	}
	return &entity.StudentAnswer{
		Id:             e.Id,
		FileName:       e.FileName,
		Content:        e.Content,
		FilePath:       e.FilePath,
		FileSize:       e.FileSize,
		FileType:       e.FileType,
		CollectionName: e.CollectionName,
		StudentId:      e.StudentId,
		AnswerKeyId:    e.AnswerKeyId,
		FolderId:       e.FolderId,
		Processed:      e.Processed,
		ProcessedAt:    e.ProcessedAt,
		Status:         entity.ProcessingStatus(e.Status),
		Student:        m.orgMapper.StudentToEntity(e.Student),
		AnswerKey:      m.AnswerKeyToEntity(e.AnswerKey),
		Folder:         m.orgMapper.FolderToEntity(e.Folder),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (m *DocumentMapper) StudentAnswerToModel(e *entity.StudentAnswer) *model.StudentAnswer {
	if e == nil {
		return nil
	}
	return &model.StudentAnswer{
		Id:             e.Id,
		FileName:       e.FileName,
		Content:        e.Content,
		FilePath:       e.FilePath,
		FileSize:       e.FileSize,
		FileType:       e.FileType,
		CollectionName: e.CollectionName,
		StudentId:      e.StudentId,
		AnswerKeyId:    e.AnswerKeyId,
		FolderId:       e.FolderId,
		Processed:      e.Processed,
		ProcessedAt:    e.ProcessedAt,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
