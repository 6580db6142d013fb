package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saim-honey388/BAKERY-CHAT/internal/auth"
	"github.com/saim-honey388/BAKERY-CHAT/internal/conversation"
	"github.com/saim-honey388/BAKERY-CHAT/internal/logger"
	"github.com/saim-honey388/BAKERY-CHAT/internal/metrics"
	"github.com/saim-honey388/BAKERY-CHAT/internal/middleware"
	"github.com/saim-honey388/BAKERY-CHAT/internal/order"
	"github.com/saim-honey388/BAKERY-CHAT/internal/session"
)

// Handler exposes the conversation engine over JSON HTTP.
type Handler struct {
	machine  conversation.Handler
	sessions session.Store
	orders   order.Service
	tokenTTL time.Duration
}

func NewHandler(machine conversation.Handler, sessions session.Store, orders order.Service, tokenTTL time.Duration) *Handler {
	return &Handler{
		machine:  machine,
		sessions: sessions,
		orders:   orders,
		tokenTTL: tokenTTL,
	}
}

// Routes builds the full route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /session", h.CreateSession)
	mux.HandleFunc("POST /turn", h.Turn)
	mux.HandleFunc("GET /orders/{id}", h.GetOrder)
	mux.HandleFunc("GET /health", h.Health)
	return mux
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := conversation.NewSession(uuid.NewString())

	if err := h.sessions.Save(ctx, sess); err != nil {
		logger.FromCtx(ctx).Error("failed to save new session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	token, err := auth.GenerateSessionToken(sess.ID, h.tokenTTL)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to mint session token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "could not create session")
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse{SessionID: sess.ID, Token: token})
}

type turnResponse struct {
	*conversation.Result
	Flags conversation.Flags `json:"flags"`
}

func (h *Handler) Turn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		respondError(w, http.StatusUnauthorized, "session token required")
		return
	}

	var intent conversation.Intent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		respondError(w, http.StatusBadRequest, "malformed intent payload")
		return
	}

	sess, err := h.sessions.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "session expired or unknown")
			return
		}
		logger.FromCtx(ctx).Error("failed to load session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "could not load session")
		return
	}

	result, err := h.machine.Handle(ctx, sess, intent)
	if err != nil {
		if errors.Is(err, order.ErrStorageUnavailable) {
			logger.FromCtx(ctx).Error("order storage unavailable", zap.Error(err))
			respondError(w, http.StatusServiceUnavailable, "we couldn't reach the order system, please try again")
			return
		}
		logger.FromCtx(ctx).Error("turn failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "something went wrong handling that")
		return
	}

	if err := h.sessions.Save(ctx, sess); err != nil {
		logger.FromCtx(ctx).Error("failed to persist session", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "could not save session")
		return
	}

	respondJSON(w, http.StatusOK, turnResponse{Result: result, Flags: sess.Flags()})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.orders.GetOrderDetail(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "order not found")
			return
		}
		logger.FromCtx(ctx).Error("failed to load order", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "could not load order")
		return
	}

	respondJSON(w, http.StatusOK, o)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"metrics": metrics.Snapshot(),
	})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
