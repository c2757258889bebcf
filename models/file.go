package models

import "time"

// File is always a leaf under exactly one folder. URL is the opaque locator
// handed back by the blob service when the upload completed; the blob key is
// derived from it by stripping the public base URL.
type File struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	OwnerID   string    `gorm:"type:varchar(191);not null;index" json:"owner_id"`
	FolderID  uint      `gorm:"not null;index" json:"folder_id"`
	URL       string    `gorm:"type:varchar(1000);not null" json:"url"`
	Size      int64     `gorm:"not null" json:"size"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
