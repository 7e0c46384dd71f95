package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stashkeeper/stashkeeper-api/pkg/logger"
)

// Listener consome o canal de notificações do razão de movimentações e
// mantém o conjunto de lançamentos excluídos observados no processo.
// Notificações duplicadas ou fora de ordem são inofensivas: o conjunto
// só cresce e a exclusão é idempotente na origem.
type Listener struct {
	pool *pgxpool.Pool
	log  *logger.Logger

	mu      sync.RWMutex
	deleted map[string]struct{}
}

// NewListener constrói o consumidor. Run precisa ser chamado para iniciar.
func NewListener(pool *pgxpool.Pool, log *logger.Logger) *Listener {
	return &Listener{
		pool:    pool,
		log:     log,
		deleted: make(map[string]struct{}),
	}
}

// SeenDeleted informa se uma exclusão do lançamento já foi observada.
func (l *Listener) SeenDeleted(movementID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.deleted[movementID]
	return ok
}

// DeletedCount devolve o total de exclusões observadas desde o início.
func (l *Listener) DeletedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.deleted)
}

// Run bloqueia consumindo notificações até o contexto ser cancelado.
// Em erro de conexão, espera e reconecta.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.log.Warn().Err(err).Msg("Conexão LISTEN perdida; reconectando")
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(2 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `LISTEN `+NotifyChannel); err != nil {
		return err
	}
	l.log.Info().Str("channel", NotifyChannel).Msg("Escutando notificações de movimentações")

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		l.handle(n.Payload)
	}
}

func (l *Listener) handle(payload string) {
	var ev movementEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		l.log.Warn().Err(err).Str("payload", payload).Msg("Notificação de movimentação inválida")
		return
	}
	if !ev.Deleted {
		return
	}
	l.mu.Lock()
	_, dup := l.deleted[ev.MovementID]
	l.deleted[ev.MovementID] = struct{}{}
	l.mu.Unlock()
	if dup {
		// Repetição é esperada quando houver reconexão ou retry.
		l.log.Debug().Str("movement_id", ev.MovementID).Msg("Exclusão já observada")
		return
	}
	l.log.Info().
		Str("movement_id", ev.MovementID).
		Str("product_id", ev.ProductID).
		Msg("Movimentação excluída")
}
