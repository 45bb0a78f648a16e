// Package domain defines the persistent data structures of the application.
package domain

import "time"

// User is a registered account. Email and phone are unique across all
// users; the database indexes back the service-level checks so a
// concurrent duplicate registration still fails on write.
type User struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:varchar(191);not null" json:"name"`
	Email     string       `gorm:"type:varchar(191);uniqueIndex:idx_users_email;not null" json:"email"`
	Phone     string       `gorm:"type:varchar(20);uniqueIndex:idx_users_phone;not null" json:"phone"`
	Password  string       `gorm:"type:text;not null" json:"-"` // bcrypt hash, never serialized
	Data      []DataRecord `gorm:"foreignKey:UserID" json:"data,omitempty"`
	CreatedAt time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}
