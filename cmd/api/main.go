package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/anaramires/tally/internal/category"
	catStore "github.com/anaramires/tally/internal/category/store"
	"github.com/anaramires/tally/internal/config"
	"github.com/anaramires/tally/internal/dashboard"
	"github.com/anaramires/tally/internal/database"
	tallyHttp "github.com/anaramires/tally/internal/http"
	categoryHandler "github.com/anaramires/tally/internal/http/category"
	dashboardHandler "github.com/anaramires/tally/internal/http/dashboard"
	importHandler "github.com/anaramires/tally/internal/http/importcsv"
	txHandler "github.com/anaramires/tally/internal/http/transaction"
	"github.com/anaramires/tally/internal/importer"
	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
	txStore "github.com/anaramires/tally/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rates, err := money.ParseRates(cfg.Money.Rates)
	if err != nil {
		slog.Error("failed to parse rate table", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		txRepo  = txStore.New(db)
		catRepo = catStore.New(db)

		transactionService = transaction.NewService(txRepo)
		categoryService    = category.NewService(catRepo)
		importService      = importer.NewService(cfg.Money.DisplayCurrency)
		dashboardService   = dashboard.NewService(
			txRepo,
			catRepo,
			rates.Converter(cfg.Money.DisplayCurrency),
			money.NewFormatter(cfg.LocaleTag()),
		)
	)

	var (
		dashboardH   = dashboardHandler.NewHandler(dashboardService)
		transactionH = txHandler.NewHandler(transactionService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		importH      = importHandler.NewHandler(importService, transactionService)
	)

	router := tallyHttp.New(dashboardH, transactionH, categoryH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "display_currency", cfg.Money.DisplayCurrency)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
