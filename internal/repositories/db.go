package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to the request context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when one is present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
