// Package catalog — каталог товаров витрины и ссылки-приглашения в бот.
package catalog

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	market "github.com/popitov/websitemarket"
)

const (
	goodsKey = "tariffs"
	linksKey = "bots-json"
)

// New создаёт каталог. rdb может быть nil: тогда каталог отдаёт только
// встроенный список тарифов, а ссылок в бот нет.
func New(rdb *redis.Client) *Catalog {
	return &Catalog{
		rdb: rdb,
		l:   zap.L().Named("catalog"),
	}
}

type Catalog struct {
	rdb *redis.Client
	l   *zap.Logger
}

// Goods возвращает тарифы. Значение из хранилища (ключ "tariffs", JSON)
// перекрывает встроенный список; сбой чтения или разбора — откат на
// встроенный.
func (c *Catalog) Goods(ctx context.Context) []market.Good {
	if c.rdb == nil {
		return defaultGoods
	}
	raw, err := c.rdb.Get(ctx, goodsKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.l.Warn("read goods, fallback to built-in", zap.Error(err))
		}
		return defaultGoods
	}
	var goods []market.Good
	if err := json.Unmarshal([]byte(raw), &goods); err != nil {
		c.l.Warn("unmarshal goods, fallback to built-in", zap.Error(err))
		return defaultGoods
	}
	return goods
}

func (c *Catalog) ByID(ctx context.Context, id int64) (market.Good, error) {
	for _, g := range c.Goods(ctx) {
		if g.ID == id {
			return g, nil
		}
	}
	return market.Good{}, market.ErrGoodNotFound
}

// BotLinks — ссылки-приглашения в бот (ключ "bots-json", JSON-массив).
// Отсутствие ключа или сбой — пустой список.
func (c *Catalog) BotLinks(ctx context.Context) []string {
	if c.rdb == nil {
		return nil
	}
	raw, err := c.rdb.Get(ctx, linksKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.l.Warn("read bot links", zap.Error(err))
		}
		return nil
	}
	var links []string
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		c.l.Warn("unmarshal bot links", zap.Error(err))
		return nil
	}
	return links
}
