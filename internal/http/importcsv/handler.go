package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anaramires/tally/internal/importer"
	"github.com/anaramires/tally/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
}

type importedTransaction struct {
	ID          uuid.UUID        `json:"id"`
	Amount      int64            `json:"amount"`
	Currency    string           `json:"currency"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description"`
	Date        transaction.Date `json:"date"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []importedTransaction `json:"transactions"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceCSV
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{
		Imported:     len(txs),
		Transactions: make([]importedTransaction, 0, len(txs)),
	}

	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, importedTransaction{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Currency:    tx.Currency,
			Type:        tx.Type,
			Description: tx.Description,
			Date:        tx.Date,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
