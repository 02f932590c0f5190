package model

import (
	"strings"
	"time"
)

// PersonName — структурированное имя. Плоская строка собирается
// сервером в FullName и никогда не принимается на вход.
type PersonName struct {
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
}

// FullName склеивает имя в отображаемую строку.
func (n PersonName) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(n.FirstName) + " " + strings.TrimSpace(n.LastName))
}

// Admin — профиль администратора поверх учётной записи User.
type Admin struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"not null;uniqueIndex;type:uuid" json:"-"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`

	Name     PersonName `gorm:"embedded" json:"name"`
	FullName string     `gorm:"not null" json:"fullName"`

	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	ProfileImg string `json:"profileImg"`

	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Buyer — профиль покупателя. Отличается от Admin только адресом.
type Buyer struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"not null;uniqueIndex;type:uuid" json:"-"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`

	Name     PersonName `gorm:"embedded" json:"name"`
	FullName string     `gorm:"not null" json:"fullName"`

	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Address    string `json:"address,omitempty"`
	ProfileImg string `json:"profileImg"`

	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
