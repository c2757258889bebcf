package repositories

import (
	"context"

	"github.com/ScheffChuk/drive-t3-s/models"

	"gorm.io/gorm"
)

type GormFolderRepository struct {
	db *gorm.DB
}

func NewGormFolderRepository(db *gorm.DB) *GormFolderRepository {
	return &GormFolderRepository{db: db}
}

func (r *GormFolderRepository) GetByIDAndOwner(_ context.Context, tx *gorm.DB, folderID uint, ownerID string) (models.Folder, error) {
	var folder models.Folder
	err := useTx(r.db, tx).Where("id = ? AND owner_id = ?", folderID, ownerID).First(&folder).Error
	return folder, err
}

func (r *GormFolderRepository) GetRootByOwner(_ context.Context, tx *gorm.DB, ownerID string) (models.Folder, error) {
	var folder models.Folder
	err := useTx(r.db, tx).Where("owner_id = ? AND is_root = 1", ownerID).First(&folder).Error
	return folder, err
}

func (r *GormFolderRepository) Create(_ context.Context, tx *gorm.DB, folder *models.Folder) error {
	return useTx(r.db, tx).Create(folder).Error
}

func (r *GormFolderRepository) ListByParent(_ context.Context, tx *gorm.DB, ownerID string, parentID uint) ([]models.Folder, error) {
	var folders []models.Folder
	err := useTx(r.db, tx).
		Where("owner_id = ? AND parent_id = ?", ownerID, parentID).
		Order("name ASC").
		Find(&folders).Error
	return folders, err
}

func (r *GormFolderRepository) ListChildIDs(_ context.Context, tx *gorm.DB, ownerID string, parentID uint) ([]uint, error) {
	var ids []uint
	err := useTx(r.db, tx).Model(&models.Folder{}).
		Where("owner_id = ? AND parent_id = ?", ownerID, parentID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *GormFolderRepository) DeleteByIDAndOwner(_ context.Context, tx *gorm.DB, folderID uint, ownerID string) error {
	return useTx(r.db, tx).Where("id = ? AND owner_id = ?", folderID, ownerID).Delete(&models.Folder{}).Error
}
