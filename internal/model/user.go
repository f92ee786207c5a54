package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "USER"
	RoleStaff = "STAFF"
)

// User локальный профиль пользователя внешнего identity-провайдера.
// Запись создаётся/обновляется из claims токена при первом обращении
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	IsStaff     bool      `json:"is_staff"`
	CreatedAt   time.Time `json:"created_at"`
}
