package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/anaramires/tally/cmd/tui/internal/view"
	"github.com/anaramires/tally/internal/category"
	catStore "github.com/anaramires/tally/internal/category/store"
	"github.com/anaramires/tally/internal/config"
	"github.com/anaramires/tally/internal/dashboard"
	"github.com/anaramires/tally/internal/database"
	"github.com/anaramires/tally/internal/importer"
	"github.com/anaramires/tally/internal/money"
	"github.com/anaramires/tally/internal/transaction"
	txStore "github.com/anaramires/tally/internal/transaction/store"
)

type model struct {
	txService        *transaction.Service
	catService       *category.Service
	importService    *importer.Service
	dashboardService *dashboard.Service

	currentView View

	dashboardView    view.DashboardModel
	transactionsView view.TransactionsModel
	importView       view.ImportModel
}

type View int

const (
	ViewMenu         View = 0
	ViewDashboard    View = 1
	ViewTransactions View = 2
	ViewImport       View = 3
)

func initialModel() model {
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

	txRepo := txStore.New(db)
	catRepo := catStore.New(db)

	txSvc := transaction.NewService(txRepo)
	catSvc := category.NewService(catRepo)
	impSvc := importer.NewService(cfg.Money.DisplayCurrency)
	dashSvc := dashboard.NewService(
		txRepo,
		catRepo,
		rates.Converter(cfg.Money.DisplayCurrency),
		money.NewFormatter(cfg.LocaleTag()),
	)

	return model{
		txService:        txSvc,
		catService:       catSvc,
		importService:    impSvc,
		dashboardService: dashSvc,
		currentView:      ViewMenu,
		dashboardView:    view.NewDashboardModel(dashSvc),
		transactionsView: view.NewTransactionsModel(txSvc, catSvc),
		importView:       view.NewImportModel(txSvc, impSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.dashboardService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.catService)

				return m, m.transactionsView.Init()
			case "3":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.txService, m.importService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Tally\n\n" +
				"1. Dashboard\n" +
				"2. Transactions\n" +
				"3. Import Statement\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewImport:
		return m.importView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
