package postgres

import (
	"context"

	"github.com/go-faster/errors"
)

// Next draws the next gateway invoice id from a database sequence,
// so ids stay unique across service instances.
func (s *invoiceSequence) Next(ctx context.Context) (int64, error) {
	var id int64
	if err := s.storage.pool.QueryRow(ctx, `SELECT nextval('robokassa_inv_id_seq')`).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "next invoice id")
	}
	return id, nil
}
