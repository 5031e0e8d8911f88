// Package oneplat — клиент мерчантского API платёжной системы 1plat.
package oneplat

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const (
	DefaultEntrypointURL = "https://1plat.cash"
	DefaultMethod        = "card"
	DefaultEmail         = "user@example.com"

	// StatusPaid — код статуса заказа "оплачен".
	StatusPaid = 1
)

type Config struct {
	EntrypointURL string
	APIKey        string // если задан, добавляется заголовок Bearer-авторизации
	Method        string
	Email         string
	UserID        int64
}

func (cfg Config) withDefaults() Config {
	if cfg.EntrypointURL == "" {
		cfg.EntrypointURL = DefaultEntrypointURL
	}
	if cfg.Method == "" {
		cfg.Method = DefaultMethod
	}
	if cfg.Email == "" {
		cfg.Email = DefaultEmail
	}
	return cfg
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:        cfg.withDefaults(),
		httpClient: &http.Client{},
		l:          zap.L().Named("oneplat_client"),
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	l          *zap.Logger
}

type CreateOrderRequest struct {
	MerchantOrderID string `json:"merchant_order_id"`
	UserID          int64  `json:"user_id"`
	Amount          int64  `json:"amount"`
	Method          string `json:"method"`
	Email           string `json:"email"`
}

type OrderReply struct {
	GUID    string `json:"guid"`
	Payment struct {
		Note string `json:"note"`
	} `json:"payment"`
	URL string `json:"url"`
}

type OrderStatus struct {
	Status int `json:"status"`
}

func (s *OrderStatus) Paid() bool { return s.Status == StatusPaid }

// CreateOrder регистрирует заказ в платёжной системе.
// Возвращает guid заказа и платёжное предложение (реквизиты либо ссылку).
func (c *Client) CreateOrder(ctx context.Context, merchantOrderID string, amount int64) (*OrderReply, error) {
	in := &CreateOrderRequest{
		MerchantOrderID: merchantOrderID,
		UserID:          c.cfg.UserID,
		Amount:          amount,
		Method:          c.cfg.Method,
		Email:           c.cfg.Email,
	}
	out := &OrderReply{}
	err := c.postAndUnmarshalJSON(ctx, c.cfg.EntrypointURL+"/api/merchant/order/create/by-api", in, out)
	if err != nil {
		c.l.Warn(
			"create order",
			zap.String("merchant_order_id", merchantOrderID),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

// OrderInfo возвращает текущий статус заказа по его guid.
func (c *Client) OrderInfo(ctx context.Context, guid string) (*OrderStatus, error) {
	out := &OrderStatus{}
	err := c.getAndUnmarshalJSON(ctx, c.cfg.EntrypointURL+"/api/merchant/order/info/"+guid+"/by-api", out)
	if err != nil {
		c.l.Warn(
			"order info",
			zap.String("guid", guid),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}
