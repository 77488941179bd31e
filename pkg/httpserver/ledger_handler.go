package httpserver

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/polymix/polymix/internal/ledger"
)

const defaultHistoryLimit = 50

// LedgerHandler serves read-only views of the paper-trading ledger.
type LedgerHandler struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(l *ledger.Ledger, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledger: l,
		logger: logger,
	}
}

// BalanceResponse represents the HTTP response for the balance endpoint.
type BalanceResponse struct {
	Balance         float64 `json:"balance"`
	InitialBalance  float64 `json:"initial_balance"`
	TotalExposure   float64 `json:"total_exposure"`
	Available       float64 `json:"available"`
	RealizedProfit  float64 `json:"realized_profit"`
	EstimatedProfit float64 `json:"estimated_profit"`
	TotalTrades     int     `json:"total_trades"`
}

// ErrorResponse represents an HTTP error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleBalance handles GET /api/ledger/balance requests.
func (h *LedgerHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	snap := h.ledger.Snapshot(0)

	h.writeJSON(w, http.StatusOK, BalanceResponse{
		Balance:         snap.Balance,
		InitialBalance:  snap.InitialBalance,
		TotalExposure:   snap.TotalExposure,
		Available:       snap.Balance - snap.TotalExposure,
		RealizedProfit:  snap.RealizedProfit,
		EstimatedProfit: snap.EstimatedProfit,
		TotalTrades:     snap.TotalTrades,
	})
}

// HandlePositions handles GET /api/ledger/positions requests.
func (h *LedgerHandler) HandlePositions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.ledger.OpenPositions())
}

// HandleHistory handles GET /api/ledger/history?limit=<n> requests.
// History is returned newest first.
func (h *LedgerHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	h.writeJSON(w, http.StatusOK, h.ledger.TradeHistory(limit))
}

func (h *LedgerHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		h.logger.Error("ledger-response-encode-failed", zap.Error(err))
	}
}

func (h *LedgerHandler) writeError(w http.ResponseWriter, msg string, code int) {
	h.writeJSON(w, code, ErrorResponse{Error: msg})
}
