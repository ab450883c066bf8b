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

type WalletHandler struct {
	service service.WalletServicer
}

func NewWalletHandler(service service.WalletServicer) *WalletHandler {
	return &WalletHandler{
		service: service,
	}
}

func (h *WalletHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CreateWallet"
	log := middlew.GetLogger(r.Context())

	defer r.Body.Close()

	var req models.CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("ошибка декодирования JSON", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	wallet, err := h.service.Create(r.Context(), req)
	if err != nil {
		var validationErr *custom_err.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Info("невалидный запрос на создание кошелька", slog.String("op", op), slog.String("field", validationErr.Field))
			response.WriteJSONError(w, log, http.StatusUnprocessableEntity, "unprocessable_entity", validationErr.Message)
		case errors.Is(err, custom_err.ErrConflict):
			log.Info("адрес уже зарегистрирован", slog.String("op", op), slog.String("address", req.Address))
			response.WriteJSONError(w, log, http.StatusConflict, "conflict", "Wallet with this address already exists")
		default:
			log.Error("ошибка создания кошелька", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusCreated, wallet)
}

func (h *WalletHandler) GetWalletByID(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetWalletByID"
	log := middlew.GetLogger(r.Context())

	idStr := chi.URLParam(r, "walletID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Warn("невалидный UUID", slog.String("op", op), slog.String("uuid", idStr))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid wallet ID format")
		return
	}

	wallet, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrNotFound):
			log.Info("кошелек не найден", slog.String("op", op), slog.String("id", id.String()))
			response.WriteJSONError(w, log, http.StatusNotFound, "not_found", "Wallet not found")
		default:
			log.Error("ошибка получения кошелька", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to retrieve wallet")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, wallet)
}

func (h *WalletHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ListWallets"
	log := middlew.GetLogger(r.Context())

	wallets, err := h.service.List(r.Context())
	if err != nil {
		log.Error("ошибка получения списка кошельков", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to list wallets")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, wallets)
}

func (h *WalletHandler) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	const op = "handler.DeleteWallet"
	log := middlew.GetLogger(r.Context())

	idStr := chi.URLParam(r, "walletID")
	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Warn("невалидный UUID", slog.String("op", op), slog.String("uuid", idStr))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid wallet ID format")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, custom_err.ErrNotFound):
			log.Info("кошелек не найден", slog.String("op", op), slog.String("id", id.String()))
			response.WriteJSONError(w, log, http.StatusNotFound, "not_found", "Wallet not found")
		default:
			log.Error("ошибка удаления кошелька", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "Failed to delete wallet")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
