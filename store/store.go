// Package store — durable key-value хранилище соответствий
// счёт -> guid заказа платёжной системы.
package store

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNotFound — значения по ключу нет.
var ErrNotFound = errors.New("not found")

// KV — минимальный контракт хранилища: получить и записать строку по
// строковому ключу. Ключи независимы, конкурентные счета не пересекаются.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}
