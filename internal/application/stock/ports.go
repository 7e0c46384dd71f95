package stock

import (
	"context"

	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. É o que garante atomicidade ao par
// (ajuste de quantidade do produto, escrita no razão): ou os dois commits
// acontecem, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
