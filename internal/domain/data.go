package domain

import "time"

// DataRecord is a contact-style entry owned by exactly one user.
// UserID is set at creation and never reassigned; only the owner may
// read, edit or delete the record.
type DataRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(191);not null" json:"name"`
	Email     string    `gorm:"type:varchar(191);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	Domain    string    `gorm:"type:varchar(191);not null" json:"domain"`
	UserID    uint      `gorm:"index:idx_data_owner;not null" json:"user"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
