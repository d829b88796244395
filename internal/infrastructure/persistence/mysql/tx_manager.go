package mysql

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager runs repository calls in one transaction. The handle travels in
// the context and repositories pick it up through getDB. Nested calls become
// savepoints.
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates the manager.
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise.
//
//	err := txm.Transaction(ctx, func(ctx context.Context) error {
//	    if err := deleteAll(ctx); err != nil {
//	        return err
//	    }
//	    return insertSeed(ctx)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// getDB returns the transaction bound to ctx, or db outside a transaction.
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
