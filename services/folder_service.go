package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ScheffChuk/drive-t3-s/blobstore"
	"github.com/ScheffChuk/drive-t3-s/config"
	"github.com/ScheffChuk/drive-t3-s/logger"
	"github.com/ScheffChuk/drive-t3-s/models"
	"github.com/ScheffChuk/drive-t3-s/repositories"

	"gorm.io/gorm"
)

type FolderService interface {
	GetOrCreateRootFolder(ctx context.Context, ownerID string) (models.Folder, error)
	ListFolders(ctx context.Context, ownerID string, parentID uint) ([]models.Folder, error)
	ListAncestors(ctx context.Context, ownerID string, folderID uint) ([]models.Folder, error)
	CreateFolder(ctx context.Context, ownerID string, name string, parentID uint) (models.Folder, int64, error)
	DeleteFolder(ctx context.Context, ownerID string, folderID uint) (int64, error)
}

type folderService struct {
	txManager TxManager
	folders   repositories.FolderRepository
	files     repositories.FileRepository
	revisions repositories.RevisionRepository
	blobs     blobstore.Client
	resolver  folderResolver
}

func NewFolderService(
	txManager TxManager,
	folders repositories.FolderRepository,
	files repositories.FileRepository,
	revisions repositories.RevisionRepository,
	blobs blobstore.Client,
) FolderService {
	return &folderService{
		txManager: txManager,
		folders:   folders,
		files:     files,
		revisions: revisions,
		blobs:     blobs,
		resolver:  folderResolver{folders: folders},
	}
}

func (s *folderService) GetOrCreateRootFolder(ctx context.Context, ownerID string) (models.Folder, error) {
	root, err := s.resolver.getOrCreateOwnerRootFolder(ctx, nil, ownerID)
	if err != nil {
		return models.Folder{}, newAppError(http.StatusInternalServerError, "failed to load root folder", err)
	}
	return root, nil
}

func (s *folderService) ListFolders(ctx context.Context, ownerID string, parentID uint) ([]models.Folder, error) {
	resolvedParentID, err := s.resolver.resolveFolderIDForOwner(ctx, nil, ownerID, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return nil, newAppError(http.StatusInternalServerError, "failed to resolve parent folder", err)
	}

	list, err := s.folders.ListByParent(ctx, nil, ownerID, resolvedParentID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to list folders", err)
	}
	return list, nil
}

func (s *folderService) ListAncestors(ctx context.Context, ownerID string, folderID uint) ([]models.Folder, error) {
	chain, err := s.resolver.ancestorsOf(ctx, nil, ownerID, folderID)
	if err != nil {
		return nil, newAppError(http.StatusInternalServerError, "failed to resolve ancestors", err)
	}
	return chain, nil
}

func (s *folderService) CreateFolder(ctx context.Context, ownerID string, name string, parentID uint) (models.Folder, int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Folder{}, 0, newAppError(http.StatusBadRequest, "folder name must not be empty", nil)
	}

	resolvedParentID, err := s.resolver.resolveFolderIDForOwner(ctx, nil, ownerID, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Folder{}, 0, newAppError(http.StatusNotFound, "parent folder not found", nil)
		}
		return models.Folder{}, 0, newAppError(http.StatusInternalServerError, "failed to resolve parent folder", err)
	}

	// Duplicate names under the same parent are allowed, like a permissive
	// filesystem. No uniqueness check here.
	parentIDVal := resolvedParentID
	folder := models.Folder{
		Name:     name,
		OwnerID:  ownerID,
		ParentID: &parentIDVal,
	}
	if err := s.folders.Create(ctx, nil, &folder); err != nil {
		return models.Folder{}, 0, newAppError(http.StatusInternalServerError, "failed to create folder", err)
	}

	return folder, bumpOwnerRevision(ctx, s.revisions, ownerID), nil
}

// DeleteFolder removes a folder together with every descendant folder and
// all contained files. The deletion set is computed up front with no side
// effects, blob deletes then run best-effort against the external service,
// and all record deletes happen in a single transaction with children
// removed before their parents.
func (s *folderService) DeleteFolder(ctx context.Context, ownerID string, folderID uint) (int64, error) {
	folder, err := s.folders.GetByIDAndOwner(ctx, nil, folderID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, newAppError(http.StatusNotFound, "folder not found", nil)
		}
		return 0, newAppError(http.StatusInternalServerError, "failed to load folder", err)
	}
	if folder.IsRoot != nil && *folder.IsRoot {
		return 0, newAppError(http.StatusBadRequest, "root folder cannot be deleted", nil)
	}

	targetIDs, err := s.resolver.collectSubtreeIDs(ctx, nil, ownerID, folder.ID)
	if err != nil {
		return 0, newAppError(http.StatusInternalServerError, "failed to enumerate folder tree", err)
	}

	files, err := s.files.ListByFolderIDs(ctx, nil, ownerID, targetIDs)
	if err != nil {
		return 0, newAppError(http.StatusInternalServerError, "failed to enumerate files", err)
	}

	deleteBlobsForFiles(ctx, s.blobs, files)

	err = s.txManager.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.files.DeleteByFolderIDs(ctx, tx, ownerID, targetIDs); err != nil {
			return err
		}
		// children before parents, each delete re-checks ownership
		for i := len(targetIDs) - 1; i >= 0; i-- {
			if err := s.folders.DeleteByIDAndOwner(ctx, tx, targetIDs[i], ownerID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, newAppError(http.StatusInternalServerError, "failed to delete folder", err)
	}

	return bumpOwnerRevision(ctx, s.revisions, ownerID), nil
}

// deleteBlobsForFiles asks the blob service to drop the bytes behind every
// file. Failures are logged and otherwise ignored: the record delete still
// proceeds and an orphaned blob is left for a reconciliation sweep.
func deleteBlobsForFiles(ctx context.Context, blobs blobstore.Client, files []models.File) {
	if len(files) == 0 {
		return
	}
	keys := make([]string, 0, len(files))
	for _, file := range files {
		keys = append(keys, blobstore.KeyFromURL(file.URL, config.AppConfig.Blob.PublicBaseURL))
	}
	for _, result := range blobs.DeleteBlobs(ctx, keys) {
		if result.Err != nil {
			logger.Warnf("blob delete failed for key %s: %v", result.Key, result.Err)
		}
	}
}
