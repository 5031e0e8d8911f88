package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/reform.v1"
)

func NewPostgres(db *reform.DB) *Postgres {
	return &Postgres{db: db}
}

// Postgres — KV поверх таблицы invoice_orders:
//
//	CREATE TABLE invoice_orders (
//		invoice_id text PRIMARY KEY,
//		order_guid text NOT NULL,
//		created_at timestamptz NOT NULL,
//		updated_at timestamptz NOT NULL
//	);
type Postgres struct {
	db *reform.DB
}

func (s *Postgres) Get(_ context.Context, key string) (string, error) {
	o := &InvoiceOrder{InvoiceID: key}
	err := s.db.Reload(o)
	if err != nil {
		if err == reform.ErrNoRows {
			return "", ErrNotFound
		}
		return "", errors.Wrap(err, "Failed get invoice order")
	}
	return o.OrderGUID, nil
}

func (s *Postgres) Put(_ context.Context, key, value string) error {
	err := s.db.Insert(&InvoiceOrder{
		InvoiceID: key,
		OrderGUID: value,
	})
	if err != nil {
		return errors.Wrap(err, "Failed insert invoice order")
	}
	return nil
}

//go:generate reform

//reform:invoice_orders
type InvoiceOrder struct {
	InvoiceID string    `reform:"invoice_id,pk"`
	OrderGUID string    `reform:"order_guid"`
	CreatedAt time.Time `reform:"created_at"`
	UpdatedAt time.Time `reform:"updated_at"`
}

func (o *InvoiceOrder) BeforeInsert() error {
	o.UpdatedAt = time.Now()
	o.CreatedAt = time.Now()
	return nil
}

func (o *InvoiceOrder) BeforeUpdate() error {
	o.UpdatedAt = time.Now()
	return nil
}
