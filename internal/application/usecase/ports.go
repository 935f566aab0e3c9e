package usecase

import (
	"context"

	"github.com/jhoicas/ims-api/internal/domain/repository"
)

// SupplierTxRunner ejecuta el callback dentro de una transacción del store,
// con repos atados a la tx. Lo implementa postgres.TxRunner; la interfaz
// permite usar un runner falso en tests.
type SupplierTxRunner interface {
	Run(ctx context.Context, fn func(
		supplierRepo repository.SupplierRepository,
		userRepo repository.UserRepository,
	) error) error
}
