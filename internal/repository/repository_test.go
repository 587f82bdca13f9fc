package repository_test

import (
	"context"
	"fmt"

	"github.com/nikolayk812/checkout-cart/internal/db"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// startPostgres runs an empty postgres and applies the embedded migrations,
// the same way cartctl does on start.
func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	container, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.WithDatabase("carts"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	logger, _ := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	if err := db.RunMigrations(connStr, logger); err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, "", fmt.Errorf("db.RunMigrations: %w", err)
	}

	return container, connStr, nil
}
