package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	market "github.com/popitov/websitemarket"
)

func TestCatalog_GoodsFallback(t *testing.T) {
	c := New(nil)
	goods := c.Goods(context.Background())
	require.NotEmpty(t, goods)
	assert.Equal(t, defaultGoods, goods)
}

func TestCatalog_ByID(t *testing.T) {
	ctx := context.Background()
	c := New(nil)

	g, err := c.ByID(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, g.ID)
	assert.NotEmpty(t, g.Payload)

	_, err = c.ByID(ctx, 404)
	require.Equal(t, market.ErrGoodNotFound, err)
}

func TestCatalog_BotLinksWithoutStore(t *testing.T) {
	c := New(nil)
	assert.Empty(t, c.BotLinks(context.Background()))
}
