package model

import (
	"strings"
	"time"
)

// Роли пользователей. Сравнение ролей везде регистронезависимое:
// значение приводится к нижнему регистру на стороне читателя.
const (
	RoleSuperAdmin = "superAdmin"
	RoleAdmin      = "admin"
	RoleBuyer      = "buyer"
)

// Статусы учётной записи.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User — учётная запись. Профильные данные (имя, адрес и т.п.)
// живут в Admin/Buyer и ссылаются сюда через UserID.
type User struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Role                string `gorm:"not null" json:"role"`
	Status              string `gorm:"not null;default:active" json:"status"`
	NeedsPasswordChange bool   `gorm:"not null;default:false" json:"needsPasswordChange"`

	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsPrivileged сообщает, имеет ли роль доступ к админской части.
// Единый предикат авторизации: им пользуются и сервер, и клиент.
func IsPrivileged(role string) bool {
	switch strings.ToLower(role) {
	case strings.ToLower(RoleAdmin), strings.ToLower(RoleSuperAdmin):
		return true
	}
	return false
}
