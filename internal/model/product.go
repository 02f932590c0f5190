package model

import "time"

// Категории продуктов. Закрытый набор: он же порождает вкладки каталога
// на клиенте, поэтому новая категория добавляется здесь и в данных сервера
// одновременно.
const (
	CategoryFooting        = "Footing"
	CategoryDrainage       = "Drainage"
	CategoryFraming        = "Framing"
	CategoryRectification  = "Rectification"
	CategoryRetainingWalls = "Retaining Walls"
	CategoryTimberSubfloor = "Timber Subfloor"
)

// Categories — порядок фиксирован, его повторяют вкладки каталога.
var Categories = []string{
	CategoryFooting,
	CategoryDrainage,
	CategoryFraming,
	CategoryRectification,
	CategoryRetainingWalls,
	CategoryTimberSubfloor,
}

// ValidCategory проверяет принадлежность категории закрытому набору.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Product — карточка 3D‑модели. CodeNumber хранится в верхнем регистре,
// нормализация выполняется при записи.
type Product struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	CodeNumber string `gorm:"uniqueIndex;not null" json:"codeNumber"`
	Title      string `gorm:"not null" json:"title"`
	Category   string `gorm:"not null;index" json:"category"`

	TwoDURL      string `json:"twoDUrl"`
	TwoDThumbURL string `json:"twoDThumbUrl,omitempty"`
	ThreeDURL    string `json:"threeDUrl"`

	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
