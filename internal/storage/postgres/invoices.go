package postgres

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
)

const invoiceColumns = `id, order_id, description, amount, status, inv_id, invoice_number, paid_at, created_at`

func scanInvoice(row scanner) (*model.AdditionalInvoice, error) {
	var inv model.AdditionalInvoice
	err := row.Scan(&inv.ID, &inv.OrderID, &inv.Description, &inv.Amount, &inv.Status,
		&inv.InvID, &inv.InvoiceNumber, &inv.PaidAt, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *model.AdditionalInvoice) error {
	const query = `INSERT INTO additional_invoices (id, order_id, description, amount, status, inv_id, invoice_number)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		invoice.ID, invoice.OrderID, invoice.Description, invoice.Amount, invoice.Status,
		invoice.InvID, invoice.InvoiceNumber,
	).Scan(&invoice.CreatedAt)
	if err != nil {
		return errors.Wrap(mapError(err), "insert invoice")
	}
	return nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (*model.AdditionalInvoice, error) {
	inv, err := scanInvoice(r.storage.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM additional_invoices WHERE id=$1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return inv, nil
}

func (r *invoiceRepository) ListByOrder(ctx context.Context, orderID string) ([]model.AdditionalInvoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM additional_invoices WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AdditionalInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *invoiceRepository) Update(ctx context.Context, id string, mutate repository.InvoiceMutation) (*model.AdditionalInvoice, error) {
	var invoice *model.AdditionalInvoice
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		invoice, err = scanInvoice(tx.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM additional_invoices WHERE id=$1 FOR UPDATE`, id))
		if err != nil {
			return mapError(err)
		}

		changed, err := mutate(invoice)
		if err != nil || !changed {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE additional_invoices SET status=$2, paid_at=$3 WHERE id=$1`,
			invoice.ID, invoice.Status, invoice.PaidAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}
