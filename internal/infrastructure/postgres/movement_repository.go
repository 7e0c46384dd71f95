package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// NotifyChannel é o canal LISTEN/NOTIFY das mudanças do razão de movimentações.
const NotifyChannel = "movements_changed"

const movementColumns = `id, product_id, employee_id, type, quantity, unit, notes, deleted, compensates_movement_id, created_at`

// movementEvent é o payload JSON publicado no canal de notificações.
type movementEvent struct {
	MovementID string `json:"movement_id"`
	ProductID  string `json:"product_id"`
	Deleted    bool   `json:"deleted"`
}

// MovementRepo implementação do razão de movimentações sobre PostgreSQL
// (usável com pool ou tx). Não existe DELETE físico aqui: o razão é
// append-only e a exclusão é sempre o flag deleted.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste um lançamento e publica o evento no canal de notificações.
// Dentro de uma transação, o NOTIFY só é entregue no commit.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.EmployeeID, m.Type, m.Quantity,
		nullIfEmpty(m.Unit), m.Notes, m.Deleted, m.CompensatesMovementID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return r.notify(movementEvent{MovementID: m.ID, ProductID: m.ProductID, Deleted: m.Deleted})
}

// GetByID busca um lançamento por ID; nil se não existir.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	var m entity.Movement
	var unitCol *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.EmployeeID, &m.Type, &m.Quantity,
		&unitCol, &m.Notes, &m.Deleted, &m.CompensatesMovementID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if unitCol != nil {
		m.Unit = *unitCol
	}
	return &m, nil
}

// ListByProduct lista lançamentos de um produto, mais recentes primeiro.
func (r *MovementRepo) ListByProduct(productID string, includeDeleted bool, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if !includeDeleted {
		query += " AND deleted = false"
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListActiveByProduct devolve todos os lançamentos não excluídos em ordem
// crescente de criação. É a entrada do replay do razão.
func (r *MovementRepo) ListActiveByProduct(productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM movements WHERE product_id = $1 AND deleted = false
		ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list active movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// SoftDelete marca um lançamento como excluído e publica o evento.
func (r *MovementRepo) SoftDelete(id string) error {
	var productID string
	err := r.q.QueryRow(context.Background(),
		`UPDATE movements SET deleted = true WHERE id = $1 RETURNING product_id`, id,
	).Scan(&productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("soft delete movement: %w", err)
	}
	return r.notify(movementEvent{MovementID: id, ProductID: productID, Deleted: true})
}

func (r *MovementRepo) notify(ev movementEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal movement event: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `SELECT pg_notify($1, $2)`, NotifyChannel, string(payload)); err != nil {
		return fmt.Errorf("notify movement event: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var unitCol *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.EmployeeID, &m.Type, &m.Quantity,
			&unitCol, &m.Notes, &m.Deleted, &m.CompensatesMovementID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if unitCol != nil {
			m.Unit = *unitCol
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
