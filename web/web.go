// Package web — HTML витрина: редирект в бот и поток покупки.
package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	market "github.com/popitov/websitemarket"
	"github.com/popitov/websitemarket/httputils"
)

type Catalog interface {
	Goods(ctx context.Context) []market.Good
	ByID(ctx context.Context, id int64) (market.Good, error)
	BotLinks(ctx context.Context) []string
}

type Payments interface {
	CreateInvoice(ctx context.Context, good market.Good) market.Invoice
	IsPaid(ctx context.Context, invoiceID string) bool
}

type TokenIssuer interface {
	Issue(ip, country string, now time.Time) string
}

func New(catalog Catalog, payments Payments, tokens TokenIssuer) *Server {
	return &Server{
		catalog:  catalog,
		payments: payments,
		tokens:   tokens,
		l:        zap.L().Named("web"),
	}
}

type Server struct {
	catalog  Catalog
	payments Payments
	tokens   TokenIssuer
	l        *zap.Logger
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/", s.index)
	e.GET("/shop", s.shop)
	e.POST("/buy", s.buy)
	e.POST("/check", s.check)
}

// index — две кнопки: перейти в бот (с токеном доступа в deep-link)
// либо купить доступ в магазине.
func (s *Server) index(c echo.Context) error {
	ctx := c.Request().Context()

	links := s.catalog.BotLinks(ctx)
	if len(links) == 0 {
		return c.String(http.StatusServiceUnavailable, "No links")
	}

	ri := httputils.GetRequestInfo(c.Request())
	tok := s.tokens.Issue(ri.RealIP, ri.Country, time.Now())

	botURL := links[0]
	sep := "?"
	if strings.Contains(botURL, "?") {
		sep = "&"
	}
	botURL += sep + "start=" + tok

	return c.HTML(http.StatusOK, indexPage(botURL))
}

func (s *Server) shop(c echo.Context) error {
	goods := s.catalog.Goods(c.Request().Context())
	return c.HTML(http.StatusOK, shopPage(goods))
}

func (s *Server) buy(c echo.Context) error {
	ctx := c.Request().Context()

	tid, err := strconv.ParseInt(c.FormValue("tid"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "Bad ID")
	}
	good, err := s.catalog.ByID(ctx, tid)
	if err != nil {
		return c.String(http.StatusBadRequest, "Bad ID")
	}

	inv := s.payments.CreateInvoice(ctx, good)
	return c.HTML(http.StatusOK, buyPage(good, inv))
}

func (s *Server) check(c echo.Context) error {
	ctx := c.Request().Context()

	tid, err := strconv.ParseInt(c.FormValue("tid"), 10, 64)
	if err != nil {
		return c.String(http.StatusBadRequest, "bad")
	}
	good, err := s.catalog.ByID(ctx, tid)
	if err != nil {
		return c.String(http.StatusBadRequest, "bad")
	}

	if !s.payments.IsPaid(ctx, c.FormValue("inv")) {
		return c.HTML(http.StatusOK, pendingPage())
	}
	return c.HTML(http.StatusOK, paidPage(good))
}
