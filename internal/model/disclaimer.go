package model

import "time"

// Disclaimer — текстовый дисклеймер, показываемый на страницах продуктов.
type Disclaimer struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	DisDescription string `gorm:"not null" json:"disDescription"`

	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TrainingVideo — обучающее видео. VideoURL хранится как дан пользователем;
// преобразование в embed‑ссылку выполняется при отображении.
type TrainingVideo struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Title    string `gorm:"not null" json:"title"`
	VideoURL string `gorm:"not null" json:"videoUrl"`

	IsDeleted bool `gorm:"not null;default:false" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
