package repositories

import (
	"context"

	"github.com/ScheffChuk/drive-t3-s/models"

	"gorm.io/gorm"
)

type GormFileRepository struct {
	db *gorm.DB
}

func NewGormFileRepository(db *gorm.DB) *GormFileRepository {
	return &GormFileRepository{db: db}
}

func (r *GormFileRepository) Create(_ context.Context, tx *gorm.DB, file *models.File) error {
	return useTx(r.db, tx).Create(file).Error
}

func (r *GormFileRepository) GetByIDAndOwner(_ context.Context, tx *gorm.DB, fileID uint, ownerID string) (models.File, error) {
	var file models.File
	err := useTx(r.db, tx).Where("id = ? AND owner_id = ?", fileID, ownerID).First(&file).Error
	return file, err
}

func (r *GormFileRepository) ListByFolder(_ context.Context, tx *gorm.DB, ownerID string, folderID uint) ([]models.File, error) {
	var files []models.File
	err := useTx(r.db, tx).
		Where("owner_id = ? AND folder_id = ?", ownerID, folderID).
		Order("name ASC").
		Find(&files).Error
	return files, err
}

func (r *GormFileRepository) ListByFolderIDs(_ context.Context, tx *gorm.DB, ownerID string, folderIDs []uint) ([]models.File, error) {
	if len(folderIDs) == 0 {
		return nil, nil
	}
	var files []models.File
	err := useTx(r.db, tx).
		Where("owner_id = ? AND folder_id IN ?", ownerID, folderIDs).
		Find(&files).Error
	return files, err
}

func (r *GormFileRepository) DeleteByIDAndOwner(_ context.Context, tx *gorm.DB, fileID uint, ownerID string) error {
	return useTx(r.db, tx).Where("id = ? AND owner_id = ?", fileID, ownerID).Delete(&models.File{}).Error
}

func (r *GormFileRepository) DeleteByFolderIDs(_ context.Context, tx *gorm.DB, ownerID string, folderIDs []uint) error {
	if len(folderIDs) == 0 {
		return nil
	}
	return useTx(r.db, tx).Where("owner_id = ? AND folder_id IN ?", ownerID, folderIDs).Delete(&models.File{}).Error
}
