package repositories

import (
	"context"

	"github.com/ScheffChuk/drive-t3-s/models"

	"gorm.io/gorm"
)

type TxManager interface {
	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type FolderRepository interface {
	GetByIDAndOwner(ctx context.Context, tx *gorm.DB, folderID uint, ownerID string) (models.Folder, error)
	GetRootByOwner(ctx context.Context, tx *gorm.DB, ownerID string) (models.Folder, error)
	Create(ctx context.Context, tx *gorm.DB, folder *models.Folder) error
	ListByParent(ctx context.Context, tx *gorm.DB, ownerID string, parentID uint) ([]models.Folder, error)
	ListChildIDs(ctx context.Context, tx *gorm.DB, ownerID string, parentID uint) ([]uint, error)
	DeleteByIDAndOwner(ctx context.Context, tx *gorm.DB, folderID uint, ownerID string) error
}

type FileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, file *models.File) error
	GetByIDAndOwner(ctx context.Context, tx *gorm.DB, fileID uint, ownerID string) (models.File, error)
	ListByFolder(ctx context.Context, tx *gorm.DB, ownerID string, folderID uint) ([]models.File, error)
	ListByFolderIDs(ctx context.Context, tx *gorm.DB, ownerID string, folderIDs []uint) ([]models.File, error)
	DeleteByIDAndOwner(ctx context.Context, tx *gorm.DB, fileID uint, ownerID string) error
	DeleteByFolderIDs(ctx context.Context, tx *gorm.DB, ownerID string, folderIDs []uint) error
}

// RevisionRepository tracks a monotonically increasing revision per owner.
// Every mutation bumps it; clients compare revisions to decide when to
// re-fetch a listing.
type RevisionRepository interface {
	Bump(ctx context.Context, ownerID string) (int64, error)
	Current(ctx context.Context, ownerID string) (int64, error)
}

type Container struct {
	TxManager TxManager
	Folders   FolderRepository
	Files     FileRepository
	Revisions RevisionRepository
}
