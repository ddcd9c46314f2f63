// Package repository define los puertos de persistencia del dominio.
package repository

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/domain/entity"
)

// UserRepository acceso a usuarios del dashboard.
type UserRepository interface {
	// FindByEmail devuelve (nil, nil) si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
