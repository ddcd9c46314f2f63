package usecase

import (
	"context"

	"github.com/zapcom/resource-pulse-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz vive aquí para que los casos de
// uso no dependan de la infraestructura.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		resources repository.ResourceRepository,
		skills repository.ResourceSkillRepository,
		allocations repository.AllocationRepository,
	) error) error
}
