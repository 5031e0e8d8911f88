package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo"
	echo_middleware "github.com/labstack/echo/middleware"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/dialects/postgresql"

	"github.com/popitov/websitemarket/catalog"
	"github.com/popitov/websitemarket/httputils"
	"github.com/popitov/websitemarket/payments"
	"github.com/popitov/websitemarket/provider/oneplat"
	"github.com/popitov/websitemarket/store"
	"github.com/popitov/websitemarket/token"
	"github.com/popitov/websitemarket/web"
)

var VERSION = "dev"

var (
	onLoggerDev         = flag.Bool("logger-dev", false, "Enable development logger.")
	onLoggerDebugLevelF = flag.Bool("logger-debug-level", false, "Enable debug level logger.")
)

func main() {
	var wg sync.WaitGroup
	flag.Parse()
	level := "INFO"
	if *onLoggerDebugLevelF {
		level = "DEBUG"
	}
	defaultLogger(level, *onLoggerDev)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	zap.L().Info("Starting websitemarket...", zap.String("version", VERSION))
	defer func() { zap.L().Info("Done.") }()

	codec, err := token.NewCodec([]byte(os.Getenv("TOKEN_KEY")))
	if err != nil {
		zap.L().Panic("Failed new token codec (TOKEN_KEY must be 16/24/32 bytes).", zap.Error(err))
	}

	var rdb *redis.Client
	if os.Getenv("REDIS_URL") != "" {
		opt, err := redis.ParseURL(os.Getenv("REDIS_URL"))
		if err != nil {
			zap.L().Panic("Failed parse REDIS_URL.", zap.Error(err))
		}
		rdb = redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zap.L().Panic("Failed to connect ping Redis.", zap.Error(err))
		}
		zap.L().Info("Redis - Connected!")
	}

	var kv store.KV
	switch {
	case os.Getenv("PG_CONN") != "":
		sqlDB := setupPostgres(os.Getenv("PG_CONN"), 0, 5, 5)
		db := reform.NewDB(sqlDB, postgresql.Dialect, reform.NewPrintfLogger(zap.L().Sugar().Debugf))
		kv = store.NewPostgres(db)
	case rdb != nil:
		kv = store.NewRedis(rdb)
	default:
		zap.L().Warn("No PG_CONN or REDIS_URL, correlations live in process memory only.")
		kv = store.NewMemory()
	}

	var nc *nats.Conn
	if os.Getenv("NATS_URL") != "" {
		nc, err = nats.Connect(os.Getenv("NATS_URL"))
		if err != nil {
			zap.L().Panic("Failed to connect to NATS.", zap.Error(err))
		}
		defer nc.Drain()
		zap.L().Info("NATS - Connected!")
	}

	userID, _ := strconv.ParseInt(os.Getenv("PAYMENTS_USER_ID"), 10, 64)
	client := oneplat.NewClient(oneplat.Config{
		EntrypointURL: os.Getenv("PAYMENTS_ENTRYPOINT_URL"),
		APIKey:        os.Getenv("PAYMENTS_API_KEY"),
		Method:        os.Getenv("PAYMENTS_METHOD"),
		Email:         os.Getenv("PAYMENTS_EMAIL"),
		UserID:        userID,
	})

	svc := payments.NewService(client, kv, nc)
	prometheus.MustRegister(svc)

	// Web server
	portWeb := os.Getenv("PORT")
	if portWeb == "" {
		portWeb = "8080"
	}

	e := echo.New()
	e.Use(echo_middleware.Recover())
	e.Use(echo_middleware.Logger())
	e.Use(echo_middleware.BodyLimit("64K"))

	web.New(catalog.New(rdb), svc, codec).Register(e)
	e.GET("/metrics", echo.WrapHandler(httputils.MetricsHandler()))

	wg.Add(1)
	go func() {
		defer wg.Done()
		zap.L().Info("start web server",
			zap.String("address", ":"+portWeb),
		)
		if err := e.Start(":" + portWeb); err != nil {
			zap.L().Error("failed run web server", zap.Error(err))
		}
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		Ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := e.Shutdown(Ctx); err != nil {
			zap.L().Error("failed shutdown web server", zap.Error(err))
		}
		if err := e.Close(); err != nil {
			zap.L().Error("failed close web server", zap.Error(err))
		}
		zap.L().Debug("success shutdown web server")
	}()
	wg.Wait()
}

// Configure zap logger.
//
// Available values of level:
// - DEBUG
// - INFO
// - WARN
// - ERROR
// - DPANIC
// - PANIC
// - FATAL
func defaultLogger(levelSet string, dev bool) {
	level := zapcore.InfoLevel
	if err := level.Set(levelSet); err != nil {
		panic(err)
	}
	config := zap.NewProductionConfig()
	if dev {
		config = zap.NewDevelopmentConfig()
	}
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}

func setupPostgres(conn string, maxLifetime time.Duration, maxOpen, maxIdle int) *sql.DB {
	sqlDB, err := sql.Open("postgres", conn)
	if err != nil {
		zap.L().Panic("Failed to connect to PostgreSQL.", zap.Error(err))
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if err = sqlDB.Ping(); err != nil {
		zap.L().Panic("Failed to connect ping PostgreSQL.", zap.Error(err))
	}
	zap.L().Info("Postgres - Connected!")

	return sqlDB
}
