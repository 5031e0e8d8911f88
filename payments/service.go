// Package payments — выставление счетов и проверка их оплаты.
//
// Ни одна из публичных операций не возвращает ошибку: любой сбой
// деградирует до безопасного значения (счёт без платёжного предложения,
// "не оплачено"), а детали уходят в журнал, метрики и канал алертов.
package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	market "github.com/popitov/websitemarket"
	"github.com/popitov/websitemarket/provider/oneplat"
	"github.com/popitov/websitemarket/store"
)

// SubjectLostCorrelation — сабжект алертов о потерянной корреляции:
// заказ в платёжке создан, а запись счёт -> guid не сохранилась.
const SubjectLostCorrelation = "market.alerts.lost_correlation"

func NewService(client *oneplat.Client, kv store.KV, nc *nats.Conn) *Service {
	return &Service{
		client: client,
		kv:     kv,
		nc:     nc,
		l:      zap.L().Named("payments"),
		m:      newMetrics(),
	}
}

type Service struct {
	client *oneplat.Client
	kv     store.KV
	nc     *nats.Conn // опционален
	l      *zap.Logger
	m      *metrics
}

// CreateInvoice выставляет счёт на товар: регистрирует заказ в платёжке,
// записывает соответствие счёт -> guid и собирает платёжное предложение.
// Идентификатор счёта непуст всегда, даже если платёжка недоступна —
// тогда предложение пустое и страница оплаты показывает "недоступно".
func (s *Service) CreateInvoice(ctx context.Context, good market.Good) market.Invoice {
	inv := market.Invoice{ID: newInvoiceID()}

	reply, err := s.client.CreateOrder(ctx, inv.ID, good.Price)
	if err != nil {
		s.m.createOrderErrors.Inc()
		s.l.Warn(
			"create order",
			zap.String("invoice_id", inv.ID),
			zap.Int64("good_id", good.ID),
			zap.Error(err),
		)
		return inv
	}
	inv.OrderGUID = reply.GUID

	if reply.GUID != "" {
		if err := s.kv.Put(ctx, inv.ID, reply.GUID); err != nil {
			// Заказ в платёжке есть, а соответствие не записано: оплату
			// этого счёта уже не подтвердить через обычный поток,
			// нужно ручное вмешательство.
			s.m.lostCorrelations.Inc()
			s.l.Error(
				"lost correlation",
				zap.String("invoice_id", inv.ID),
				zap.String("order_guid", reply.GUID),
				zap.Error(err),
			)
			s.alertLostCorrelation(inv.ID, reply.GUID, err)
		}
	}

	switch {
	case reply.Payment.Note != "":
		inv.HTML = "<pre>" + html.EscapeString(reply.Payment.Note) + "</pre>"
	case reply.URL != "":
		inv.HTML = `<a class="btn" href="` + html.EscapeString(reply.URL) + `">Оплатить</a>`
	}
	return inv
}

// IsPaid сообщает, оплачен ли счёт. Без записи корреляции платёжка не
// опрашивается. Любой сбой трактуется как "не оплачено": транзиентная
// ошибка никогда не засчитывает продажу. Повторные вызовы безопасны,
// состояние нигде не меняется.
func (s *Service) IsPaid(ctx context.Context, invoiceID string) bool {
	guid, err := s.kv.Get(ctx, invoiceID)
	if err != nil {
		if err != store.ErrNotFound {
			s.m.storeReadErrors.Inc()
			s.l.Warn(
				"get correlation",
				zap.String("invoice_id", invoiceID),
				zap.Error(err),
			)
		}
		return false
	}
	if guid == "" {
		return false
	}

	info, err := s.client.OrderInfo(ctx, guid)
	if err != nil {
		s.m.orderInfoErrors.Inc()
		s.l.Warn(
			"order info",
			zap.String("invoice_id", invoiceID),
			zap.String("order_guid", guid),
			zap.Error(err),
		)
		return false
	}
	return info.Paid()
}

type lostCorrelationAlert struct {
	InvoiceID string `json:"invoice_id"`
	OrderGUID string `json:"order_guid"`
	Error     string `json:"error"`
}

func (s *Service) alertLostCorrelation(invoiceID, guid string, cause error) {
	if s.nc == nil {
		return
	}
	b, err := json.Marshal(lostCorrelationAlert{
		InvoiceID: invoiceID,
		OrderGUID: guid,
		Error:     cause.Error(),
	})
	if err != nil {
		s.l.Warn("marshal alert", zap.Error(err))
		return
	}
	if err := s.nc.Publish(SubjectLostCorrelation, b); err != nil {
		s.l.Warn("publish alert", zap.Error(err))
	}
}

func newInvoiceID() string {
	b := make([]byte, 6)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err)
	}
	tm := time.Now()
	return fmt.Sprintf(
		"inv-%d-%d-%d-%d-%d-%d-%s",
		tm.Year(),
		tm.Month(),
		tm.Day(),
		tm.Hour(),
		tm.Minute(),
		tm.Second(),
		hex.EncodeToString(b))
}
