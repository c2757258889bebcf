package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ScheffChuk/drive-t3-s/blobstore"
	"github.com/ScheffChuk/drive-t3-s/models"
	"github.com/ScheffChuk/drive-t3-s/repositories"

	"gorm.io/gorm"
)

// UploadCallbackInput is what the blob service reports once it has stored
// the bytes of an upload. The record is inserted only after this arrives.
type UploadCallbackInput struct {
	OwnerID  string
	Name     string
	FolderID uint
	URL      string
	Size     int64
}

type FileService interface {
	ListFiles(ctx context.Context, ownerID string, folderID uint) ([]models.File, error)
	RecordUpload(ctx context.Context, in UploadCallbackInput) (models.File, int64, error)
	DeleteFile(ctx context.Context, ownerID string, fileID uint) (int64, error)
}

type fileService struct {
	txManager TxManager
	folders   repositories.FolderRepository
	files     repositories.FileRepository
	revisions repositories.RevisionRepository
	blobs     blobstore.Client
	resolver  folderResolver
}

func NewFileService(
	txManager TxManager,
	folders repositories.FolderRepository,
	files repositories.FileRepository,
	revisions repositories.RevisionRepository,
	blobs blobstore.Client,
) FileService {
	return &fileService{
		txManager: txManager,
		folders:   folders,
		files:     files,
		revisions: revisions,
		blobs:     blobs,
		resolver:  folderResolver{folders: folders},
	}
}

func (s *fileService) ListFiles(ctx context.Context, ownerID string, folderID uint) ([]models.File, error) {
	resolvedFolderID, err := s.resolver.resolveFolderIDForOwner(ctx, nil, ownerID, folderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return nil, newAppError(http.StatusInternalServerError, "failed to resolve folder", err)
	}

	list, err := s.files.ListByFolder(ctx, nil, ownerID, resolvedFolderID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list files", err)
	}
	return list, nil
}

func (s *fileService) RecordUpload(ctx context.Context, in UploadCallbackInput) (models.File, int64, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return models.File{}, 0, newAppError(http.StatusBadRequest, "owner id must not be empty", nil)
	}
	if strings.TrimSpace(in.Name) == "" {
		return models.File{}, 0, newAppError(http.StatusBadRequest, "file name must not be empty", nil)
	}
	if strings.TrimSpace(in.URL) == "" {
		return models.File{}, 0, newAppError(http.StatusBadRequest, "file url must not be empty", nil)
	}

	resolvedFolderID, err := s.resolver.resolveFolderIDForOwner(ctx, nil, in.OwnerID, in.FolderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.File{}, 0, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return models.File{}, 0, newAppError(http.StatusInternalServerError, "failed to resolve folder", err)
	}

	file := models.File{
		Name:     in.Name,
		OwnerID:  in.OwnerID,
		FolderID: resolvedFolderID,
		URL:      in.URL,
		Size:     in.Size,
	}
	if err := s.files.Create(ctx, nil, &file); err != nil {
		return models.File{}, 0, newAppError(http.StatusInternalServerError, "failed to record upload", err)
	}

	return file, bumpOwnerRevision(ctx, s.revisions, in.OwnerID), nil
}

// DeleteFile drops the blob first and the record second. A blob-delete
// failure does not keep the record alive; the stale blob is the accepted
// worse case.
func (s *fileService) DeleteFile(ctx context.Context, ownerID string, fileID uint) (int64, error) {
	file, err := s.files.GetByIDAndOwner(ctx, nil, fileID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, newAppError(http.StatusNotFound, "file not found", nil)
		}
		return 0, newAppError(http.StatusInternalServerError, "failed to load file", err)
	}

	deleteBlobsForFiles(ctx, s.blobs, []models.File{file})

	if err := s.files.DeleteByIDAndOwner(ctx, nil, file.ID, ownerID); err != nil {
		return 0, newAppError(http.StatusInternalServerError, "failed to delete file", err)
	}

	return bumpOwnerRevision(ctx, s.revisions, ownerID), nil
}
