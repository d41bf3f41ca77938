package postgres

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/polkiloo/webstudio/internal/domain/model"
)

func (r *paymentEventRepository) Record(ctx context.Context, event *model.PaymentEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return errors.Wrap(err, "encode payload")
	}
	const query = `INSERT INTO payment_events (kind, inv_id, target_id, out_sum, signature_valid, outcome, payload)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, received_at`
	err = r.storage.pool.QueryRow(ctx, query,
		event.Kind, event.InvID, event.TargetID, event.OutSum, event.SignatureValid, event.Outcome, payload,
	).Scan(&event.ID, &event.ReceivedAt)
	if err != nil {
		return errors.Wrap(err, "insert payment event")
	}
	return nil
}

func (r *paymentEventRepository) ListByTarget(ctx context.Context, targetID string) ([]model.PaymentEvent, error) {
	const query = `SELECT id, kind, inv_id, target_id, out_sum, signature_valid, outcome, payload, received_at
                   FROM payment_events WHERE target_id=$1 ORDER BY received_at, id`
	rows, err := r.storage.pool.Query(ctx, query, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PaymentEvent
	for rows.Next() {
		var (
			e   model.PaymentEvent
			raw []byte
		)
		if err := rows.Scan(&e.ID, &e.Kind, &e.InvID, &e.TargetID, &e.OutSum, &e.SignatureValid, &e.Outcome, &raw, &e.ReceivedAt); err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &e.Payload); err != nil {
				return nil, errors.Wrap(err, "decode payload")
			}
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
