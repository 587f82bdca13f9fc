package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/checkout-cart/internal/config"
	"github.com/nikolayk812/checkout-cart/internal/db"
	"github.com/nikolayk812/checkout-cart/internal/domain"
	"github.com/nikolayk812/checkout-cart/internal/repository"
	"github.com/nikolayk812/checkout-cart/internal/service"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		envFile      = flag.String("env", ".env", "path to an optional .env file")
		storeID      = flag.String("store", "electronics", "store id")
		customerID   = flag.String("customer", uuid.NewString(), "customer id")
		customerName = flag.String("customer-name", "Anonymous", "customer name")
		currencyCode = flag.String("currency", "", "cart currency, defaults to DEFAULT_CURRENCY")
	)
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("cfg.Logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := db.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return fmt.Errorf("db.RunMigrations: %w", err)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	svc := service.NewCartService(repository.NewCart(pool), logger)

	code := *currencyCode
	if code == "" {
		code = cfg.DefaultCurrency
	}

	cart, err := svc.CreateCart(ctx, service.CreateCartParams{
		StoreID:      *storeID,
		CustomerID:   *customerID,
		CustomerName: *customerName,
		Name:         "default",
		CurrencyCode: code,
	})
	if err != nil {
		return fmt.Errorf("svc.CreateCart: %w", err)
	}

	unit := cart.Currency().Unit
	for _, item := range []domain.LineItem{
		{ProductID: uuid.New(), Name: "USB-C cable", ProductType: "Physical", Quantity: 2,
			ListPrice: domain.NewMoney(decimal.RequireFromString("9.99"), unit)},
		{ProductID: uuid.New(), Name: "Extended warranty", ProductType: "Digital", Quantity: 1,
			ListPrice: domain.NewMoney(decimal.RequireFromString("19.00"), unit)},
	} {
		if _, err := svc.AddItem(ctx, cart.ID, item); err != nil {
			return fmt.Errorf("svc.AddItem: %w", err)
		}
	}

	summary, err := svc.Summary(ctx, cart.ID)
	if err != nil {
		return fmt.Errorf("svc.Summary: %w", err)
	}

	fields := logrus.Fields{
		"cart_id":               summary.CartID,
		"currency":              summary.Currency,
		"items_count":           summary.ItemsCount,
		"has_physical_products": summary.HasPhysicalProducts,
		"total":                 summary.Totals.Total.String(),
		"billing_placeholder":   summary.BillingAddressPlaceholder,
	}
	if summary.ShippingAddress != nil {
		fields["shipping_placeholder"] = summary.ShippingAddressPlaceholder
	}
	logger.WithFields(fields).Info("cart summary")

	return nil
}
