package service

import "errors"

// Ошибки бизнес-слоя. Хендлеры сопоставляют их с HTTP‑статусами.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserBlocked        = errors.New("user is blocked")
	ErrUserDeleted        = errors.New("user is deleted")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCategory    = errors.New("unknown product category")
	ErrValidation         = errors.New("validation failed")
)
