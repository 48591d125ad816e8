package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/notiboard/notiboard/internal/api/dto"
	"github.com/notiboard/notiboard/internal/api/respond"
	"github.com/notiboard/notiboard/internal/model"
	"github.com/notiboard/notiboard/internal/remote"
	"github.com/notiboard/notiboard/internal/store"
	"github.com/notiboard/notiboard/internal/view"
)

// boardService defines the store operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/board/mock.go -package=mocks
type boardService interface {
	Create(ctx context.Context, input model.CreateInput) (model.Notification, error)
	Cancel(ctx context.Context, id string) (model.Notification, error)
	Snapshot() []model.Notification
}

// recordFetcher fetches a single record straight from the remote service.
// Single lookups are a read-through and never touch the cache.
type recordFetcher interface {
	Get(ctx context.Context, id string) (model.Notification, error)
}

// Handler handles HTTP requests against the notification board.
type Handler struct {
	service   boardService
	fetcher   recordFetcher
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s boardService, f recordFetcher, v *validator.Validate) *Handler {
	return &Handler{service: s, fetcher: f, validator: v}
}

// Create handles POST requests to schedule a new notification.
//
// It validates the request body, forwards it to the store, and returns the
// full record the remote service assigned.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	input, err := req.ToInput(time.Now())
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("rejected create request")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	record, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("channel", string(input.Channel)).Msg("failed to create notification")
		failRemote(c, err)
		return
	}

	respond.Created(c.Writer, record)
}

// GetOne handles GET requests for a single notification by id.
func (h *Handler) GetOne(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	record, err := h.fetcher.Get(c.Request.Context(), id)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to fetch notification")
		failRemote(c, err)
		return
	}

	respond.OK(c.Writer, record)
}

// List handles GET requests for the notification list. An optional
// ?filter= query narrows the list to a single status; the default is "all".
func (h *Handler) List(c *ginext.Context) {
	filter := view.FilterAll
	if raw := c.Query("filter"); raw != "" {
		filter = view.Filter(raw)
	}

	if !filter.Valid() {
		zlog.Logger.Warn().Str("filter", string(filter)).Msg("invalid filter")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid filter %q", filter))
		return
	}

	respond.OK(c.Writer, view.Apply(h.service.Snapshot(), filter))
}

// Stats handles GET requests for the per-status counts over the whole
// cache.
func (h *Handler) Stats(c *ginext.Context) {
	respond.OK(c.Writer, view.Collect(h.service.Snapshot()))
}

// Cancel handles DELETE requests to cancel a scheduled notification. The
// updated record is returned on success.
func (h *Handler) Cancel(c *ginext.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	record, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			zlog.Logger.Warn().Str("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}
		if errors.Is(err, store.ErrNotCancellable) {
			zlog.Logger.Warn().Str("id", id).Err(err).Msg("notification not cancellable")
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("notification is not cancellable"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to cancel notification")
		failRemote(c, err)
		return
	}

	respond.OK(c.Writer, record)
}

// pathID extracts and validates the :id URL parameter. The remote service
// mints UUIDs, so anything else is rejected before a request goes out.
func pathID(c *ginext.Context) (string, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return "", false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msg("missing id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return "", false
	}

	return id.String(), true
}

// failRemote maps remote-call failures to responses: the service's own
// rejection passes through with its status and message, anything else is a
// bad gateway.
func failRemote(c *ginext.Context, err error) {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		respond.Fail(c.Writer, apiErr.StatusCode, apiErr)
		return
	}

	respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("notifier unavailable"))
}
