package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"degen_api/internal/api/middlew"
	"degen_api/internal/custom_err"
	"degen_api/internal/models"
	"degen_api/internal/service"
	"degen_api/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	service service.TransactionServicer
}

func NewTransactionHandler(service service.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CreateTransaction"
	log := middlew.GetLogger(r.Context())

	idStr := chi.URLParam(r, "walletID")
	walletID, err := uuid.Parse(idStr)
	if err != nil {
		log.Warn("невалидный UUID", slog.String("op", op), slog.String("uuid", idStr))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid wallet ID format")
		return
	}

	defer r.Body.Close()

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("ошибка декодирования JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	tx, err := h.service.Create(r.Context(), walletID, req)
	if err != nil {
		var validationErr *custom_err.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Info("невалидный запрос на создание транзакции", slog.String("op", op), slog.String("field", validationErr.Field))
			response.WriteJSONError(w, log, http.StatusUnprocessableEntity, "unprocessable_entity", validationErr.Message)
		case errors.Is(err, custom_err.ErrNotFound):
			log.Info("кошелек не найден", slog.String("op", op), slog.String("wallet_id", walletID.String()))
			response.WriteJSONError(w, log, http.StatusNotFound, "not_found", "Wallet not found")
		case errors.Is(err, custom_err.ErrConflict):
			log.Info("хеш транзакции уже зарегистрирован", slog.String("op", op), slog.String("hash", req.TransactionHash))
			response.WriteJSONError(w, log, http.StatusConflict, "conflict", "Transaction with this hash already exists")
		default:
			log.Error("ошибка создания транзакции", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusCreated, tx)
}

func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetTransactionByID"
	log := middlew.GetLogger(r.Context())

	idStr := chi.URLParam(r, "transactionID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Warn("невалидный UUID", slog.String("op", op), slog.String("uuid", idStr))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid transaction ID format")
		return
	}

	tx, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrNotFound):
			log.Info("транзакция не найдена", slog.String("op", op), slog.String("id", id.String()))
			response.WriteJSONError(w, log, http.StatusNotFound, "not_found", "Transaction not found")
		default:
			log.Error("ошибка получения транзакции", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to retrieve transaction")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, tx)
}

func (h *TransactionHandler) ListWalletTransactions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ListWalletTransactions"
	log := middlew.GetLogger(r.Context())

	idStr := chi.URLParam(r, "walletID")
	walletID, err := uuid.Parse(idStr)
	if err != nil {
		log.Warn("невалидный UUID", slog.String("op", op), slog.String("uuid", idStr))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid wallet ID format")
		return
	}

	txs, err := h.service.ListByWallet(r.Context(), walletID)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrNotFound):
			log.Info("кошелек не найден", slog.String("op", op), slog.String("wallet_id", walletID.String()))
			response.WriteJSONError(w, log, http.StatusNotFound, "not_found", "Wallet not found")
		default:
			log.Error("ошибка получения списка транзакций", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to list transactions")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, txs)
}
