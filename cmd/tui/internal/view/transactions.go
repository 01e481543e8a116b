package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/anaramires/tally/internal/category"
	"github.com/anaramires/tally/internal/transaction"
)

type txState int

const (
	txStateBrowse txState = iota
	txStateAdd
)

type TransactionsModel struct {
	CommonModel
	txService  *transaction.Service
	catService *category.Service

	state txState
	table table.Model
	txs   []*transaction.Transaction
	cats  []category.Category
	form  *huh.Form

	typeFilterIdx int

	filter  transaction.ListFilter
	loading bool
	err     error
	status  string

	// Form bindings
	formDesc     string
	formAmount   string
	formCurrency string
	formType     string
	formDate     string
	formCategory string
}

func NewTransactionsModel(txSvc *transaction.Service, catSvc *category.Service) TransactionsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Type", Width: 10},
		{Title: "Amount", Width: 12},
		{Title: "Cur", Width: 4},
		{Title: "Category", Width: 16},
		{Title: "Description", Width: 40},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return TransactionsModel{
		txService:  txSvc,
		catService: catSvc,
		table:      t,
		filter:     transaction.ListFilter{},
	}
}

func (m TransactionsModel) Title() string { return "Transactions" }
func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | x: delete | t: type filter | r: refresh"
}

type loadTxsMsg struct {
	txs  []*transaction.Transaction
	cats []category.Category
	err  error
}

type txSavedMsg struct {
	err error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, filter)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		cats, err := m.catService.List(ctx)
		if err != nil {
			return loadTxsMsg{err: err}
		}

		return loadTxsMsg{txs: txs, cats: cats}
	}
}

func (m TransactionsModel) Init() tea.Cmd {
	m.loading = true
	return m.loadCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.cats = msg.cats
		m.refreshTable()

		return m, nil

	case txSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = "Saved."
		}

		m.state = txStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case txStateBrowse:
		return m.updateBrowse(msg)
	case txStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			return m.deleteSelected()
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % 4
			m.applyFilter()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m TransactionsModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formDesc = ""
	m.formAmount = ""
	m.formCurrency = "EUR"
	m.formType = string(transaction.TypeExpense)
	m.formDate = ""
	m.formCategory = ""

	catOptions := []huh.Option[string]{huh.NewOption("None", "")}
	for _, c := range m.cats {
		catOptions = append(catOptions, huh.NewOption(c.Name, c.ID.String()))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("12.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := parseAmountInput(s); err != nil {
						return fmt.Errorf("not a valid amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("currency").
				Title("Currency").
				Placeholder("EUR").
				Value(&m.formCurrency),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.TypeExpense)),
					huh.NewOption("Income", string(transaction.TypeIncome)),
					huh.NewOption("Transfer", string(transaction.TypeTransfer)),
				).
				Value(&m.formType),

			huh.NewInput().
				Key("date").
				Title("Date").
				Placeholder("2026-08-24 (empty = today)").
				Value(&m.formDate),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(catOptions...).
				Value(&m.formCategory),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = txStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m TransactionsModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	params, err := m.buildParams()
	if err != nil {
		return func() tea.Msg { return txSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.txService.Create(ctx, params)

		return txSavedMsg{err: err}
	}
}

func (m TransactionsModel) buildParams() (transaction.CreateParams, error) {
	cents, err := parseAmountInput(m.formAmount)
	if err != nil {
		return transaction.CreateParams{}, err
	}

	date := transaction.ParseDate(m.formDate)
	if strings.TrimSpace(m.formDate) == "" {
		date = transaction.NewDate(time.Now())
	}

	params := transaction.CreateParams{
		Amount:      cents,
		Currency:    strings.ToUpper(strings.TrimSpace(m.formCurrency)),
		Type:        transaction.Type(m.formType),
		Description: strings.TrimSpace(m.formDesc),
		Date:        date,
	}

	if m.formCategory != "" {
		if id, err := uuid.Parse(m.formCategory); err == nil {
			params.CategoryID = &id
		}
	}

	return params, nil
}

func (m TransactionsModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return m, nil
	}

	id := m.txs[idx].ID

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return txSavedMsg{err: m.txService.Delete(ctx, id)}
	}
}

func (m TransactionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	typeLabels := []string{"All", "Income", "Expense", "Transfer"}

	header := fmt.Sprintf("Filter: [t] Type: %s", activeStyle(typeLabels[m.typeFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == txStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Add Transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *TransactionsModel) applyFilter() {
	types := []transaction.Type{
		transaction.TypeIncome,
		transaction.TypeExpense,
		transaction.TypeTransfer,
	}

	if m.typeFilterIdx == 0 {
		m.filter.Type = nil
		return
	}

	t := types[m.typeFilterIdx-1]
	m.filter.Type = &t
}

func (m *TransactionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))

	for _, tx := range m.txs {
		catName := ""
		if c, ok := category.Resolve(m.cats, tx.CategoryID); ok {
			catName = c.Name
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			FormatAmount(tx.Amount),
			tx.Currency,
			catName,
			tx.Description,
		})
	}

	m.table.SetRows(rows)
}

// parseAmountInput accepts "12.50" or "12,50" and returns cents.
func parseAmountInput(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	if val < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}

	return int64(math.Round(val * 100)), nil
}
