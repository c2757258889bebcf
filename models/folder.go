package models

import "time"

// Folder is a node in an owner's folder tree. ParentID is nil only for the
// owner's root row; every other folder points at its parent. Deletes are
// permanent, there is no soft-delete column.
type Folder struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	OwnerID   string    `gorm:"type:varchar(191);not null;index" json:"owner_id"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	IsRoot    *bool     `gorm:"index" json:"is_root"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
