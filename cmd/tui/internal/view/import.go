package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anaramires/tally/internal/importer"
	"github.com/anaramires/tally/internal/transaction"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	txService     *transaction.Service
	importService *importer.Service

	state      importState
	filePicker filepicker.Model

	status string
	err    error
}

func NewImportModel(txSvc *transaction.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{".csv"}
	fp.SetHeight(15)

	return ImportModel{
		txService:     txSvc,
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Statement" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult {
		return "Esc: back | Enter: import another"
	}

	return "Esc: back | Enter: select file"
}

type importDoneMsg struct {
	count int
	err   error
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == importStateResult && msg.Type == tea.KeyEnter {
			m.state = importStateFilePick
			m.status = ""
			m.err = nil

			return m, m.filePicker.Init()
		}

	case importDoneMsg:
		m.state = importStateResult

		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d transactions.", msg.count)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importDoneMsg{err: fmt.Errorf("opening %s: %w", path, err)}
		}
		defer f.Close()

		rows, err := m.importService.Import(importer.SourceCSV, f)
		if err != nil {
			return importDoneMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		created, err := m.txService.CreateBatch(ctx, rows)
		if err != nil {
			return importDoneMsg{err: err}
		}

		return importDoneMsg{count: len(created)}
	}
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render("Importing...")

	case importStateResult:
		style := lipgloss.NewStyle().Padding(2)
		if m.err != nil {
			style = style.Foreground(lipgloss.Color("203"))
		}

		return style.Render(m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		titleStyle.Render("Select a CSV statement") + "\n" + m.filePicker.View(),
	)
}
