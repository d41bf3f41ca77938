package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

const orderColumns = `id, name, email, phone, project_type, description, amount, total_amount,
       payment_method, company_name, company_inn, company_kpp, company_address,
       status, prepayment_inv_id, remaining_inv_id, paid_at, prepayment_paid_at,
       remaining_paid_at, note, created_at, updated_at, deleted_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.Name, &o.Email, &o.Phone, &o.ProjectType, &o.Description, &o.Amount, &o.TotalAmount,
		&o.PaymentMethod, &o.Company.Name, &o.Company.INN, &o.Company.KPP, &o.Company.Address,
		&o.Status, &o.PrepaymentInvID, &o.RemainingInvID, &o.PaidAt, &o.PrepaymentPaidAt,
		&o.RemainingPaidAt, &o.Note, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, name, email, phone, project_type, description, amount, total_amount,
                       payment_method, company_name, company_inn, company_kpp, company_address, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		order.ID, order.Name, order.Email, order.Phone, order.ProjectType, order.Description,
		order.Amount, order.TotalAmount, order.PaymentMethod,
		order.Company.Name, order.Company.INN, order.Company.KPP, order.Company.Address, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return errors.Wrap(mapError(err), "insert order")
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	var (
		conditions []string
		args       []any
	)
	if !filter.IncludeDeleted {
		conditions = append(conditions, "deleted_at IS NULL")
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, "status=$"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + orderColumns + ` FROM orders`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update locks the order row for the duration of mutate so concurrent
// gateway callbacks for the same order are serialized.
func (r *orderRepository) Update(ctx context.Context, id string, mutate repository.OrderMutation) (*model.Order, error) {
	const updateQuery = `UPDATE orders
                         SET status=$2, prepayment_inv_id=$3, remaining_inv_id=$4, paid_at=$5,
                             prepayment_paid_at=$6, remaining_paid_at=$7, note=$8, deleted_at=$9,
                             updated_at=NOW()
                         WHERE id=$1
                         RETURNING updated_at`

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		order, err = scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
		if err != nil {
			return mapError(err)
		}

		changed, err := mutate(order)
		if err != nil || !changed {
			return err
		}

		return tx.QueryRow(ctx, updateQuery,
			order.ID, order.Status, order.PrepaymentInvID, order.RemainingInvID, order.PaidAt,
			order.PrepaymentPaidAt, order.RemainingPaidAt, order.Note, order.DeletedAt,
		).Scan(&order.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
