package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"

	"phonebook/book"
	"phonebook/dynamodb"
	"phonebook/httpserver"
	"phonebook/pkg/config"
	"phonebook/postgres"
	"phonebook/yamlstore"
)

const sentryFlushTime = 2 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentryFlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		slog.Error("Cannot build store", "error", err, "driver", cfg.Store.Driver)
		os.Exit(1)
	}

	addressBook, err := store.Load(ctx)
	if err != nil {
		slog.Error("Cannot load address book", "error", err)
		os.Exit(1)
	}

	server := httpserver.Default()
	server.Addr = fmt.Sprintf(":%d", cfg.Port)
	server.BookService = book.NewUsecase(addressBook)

	go func() {
		slog.Info("server started!", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if err := store.Save(shutdownCtx, addressBook); err != nil {
		slog.Error("cannot save address book", "error", err)
		os.Exit(1)
	}
	slog.Info("address book saved, bye")
}

func buildStore(ctx context.Context, cfg *config.Config) (book.Store, error) {
	switch cfg.Store.Driver {
	case "yaml":
		return yamlstore.New(cfg.Store.Path), nil
	case "postgres":
		db, err := postgres.NewConnection(postgres.Options{
			DBName:   cfg.DB.Name,
			DBUser:   cfg.DB.User,
			Password: cfg.DB.Pass,
			Host:     cfg.DB.Host,
			Port:     fmt.Sprintf("%d", cfg.DB.Port),
			SSLMode:  cfg.DB.EnableSSL,
		})
		if err != nil {
			return nil, err
		}
		return postgres.NewStore(db), nil
	case "dynamodb":
		client, err := dynamodb.NewClient(ctx, dynamodb.Options{
			Region:       cfg.DynamoDB.Region,
			Endpoint:     cfg.DynamoDB.Endpoint,
			AccessKey:    cfg.DynamoDB.AccessKey,
			SecretKey:    cfg.DynamoDB.SecretKey,
			SessionToken: cfg.DynamoDB.SessionToken,
		})
		if err != nil {
			return nil, err
		}
		return dynamodb.NewStore(client, cfg.DynamoDB.ContactsTable)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
