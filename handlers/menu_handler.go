package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
	"github.com/littlelemon/restaurant-backend/utils"
	"go.uber.org/zap"
)

// CreateMenuItemRequest represents a request to create a menu item.
// Price arrives as the raw JSON number so excess decimal places are
// detectable before any float rounding.
type CreateMenuItemRequest struct {
	Title    string      `json:"title"`
	Price    json.Number `json:"price"`
	Featured *bool       `json:"featured"`
}

// UpdateMenuItemRequest represents a partial update; absent fields keep
// their stored values.
type UpdateMenuItemRequest struct {
	Title    *string      `json:"title"`
	Price    *json.Number `json:"price"`
	Featured *bool        `json:"featured"`
}

// MenuHandler handles menu item HTTP requests
type MenuHandler struct {
	menuRepo repositories.MenuItemRepository
	logger   *zap.Logger
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuRepo repositories.MenuItemRepository, logger *zap.Logger) *MenuHandler {
	return &MenuHandler{
		menuRepo: menuRepo,
		logger:   logger,
	}
}

// HandleList handles GET /api/menu/
func (h *MenuHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	items, err := h.menuRepo.List(ctx)
	if err != nil {
		h.logger.Error("failed to list menu items",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteInternalServerError(w, "Failed to retrieve menu items")
		return
	}
	if items == nil {
		items = []*models.MenuItem{}
	}

	h.logger.Info("listed menu items",
		zap.String("request_id", requestID),
		zap.Int("count", len(items)))

	_ = utils.WriteOK(w, items)
}

// HandleCreate handles POST /api/menu/
func (h *MenuHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	verr := utils.NewFieldErrors()
	if err := models.ValidateTitle(req.Title); err != nil {
		verr.Add("title", err.Error())
	}
	var price float64
	if req.Price == "" {
		verr.Add("price", "price is required")
	} else if v, err := models.ValidatePrice(req.Price.String()); err != nil {
		verr.Add("price", err.Error())
	} else {
		price = v
	}
	if !verr.Empty() {
		h.logger.Warn("menu item validation failed",
			zap.String("request_id", requestID),
			zap.Any("fields", verr.Fields))
		HandleValidationError(w, verr, h.logger)
		return
	}

	featured := false
	if req.Featured != nil {
		featured = *req.Featured
	}
	item := models.NewMenuItem(req.Title, price, featured)

	if err := h.menuRepo.Create(ctx, item); err != nil {
		h.logger.Error("failed to create menu item",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteInternalServerError(w, "Failed to create menu item")
		return
	}

	h.logger.Info("menu item created",
		zap.String("request_id", requestID),
		zap.Int64("menu_item_id", item.ID),
		zap.String("title", item.Title))

	_ = utils.WriteCreated(w, item)
}

// HandleGet handles GET /api/menu/{id}
func (h *MenuHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := h.menuRepo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	_ = utils.WriteOK(w, item)
}

// HandleUpdate handles PUT/PATCH /api/menu/{id}. Both verbs share partial
// update semantics: only supplied fields change, and each supplied field is
// fully validated.
func (h *MenuHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.menuRepo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	verr := utils.NewFieldErrors()
	if req.Title != nil {
		if err := models.ValidateTitle(*req.Title); err != nil {
			verr.Add("title", err.Error())
		} else {
			item.Title = *req.Title
		}
	}
	if req.Price != nil {
		if v, err := models.ValidatePrice(req.Price.String()); err != nil {
			verr.Add("price", err.Error())
		} else {
			item.Price = v
		}
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if !verr.Empty() {
		h.logger.Warn("menu item validation failed",
			zap.String("request_id", requestID),
			zap.Any("fields", verr.Fields))
		HandleValidationError(w, verr, h.logger)
		return
	}

	if err := h.menuRepo.Update(ctx, item); err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	h.logger.Info("menu item updated",
		zap.String("request_id", requestID),
		zap.Int64("menu_item_id", item.ID))

	_ = utils.WriteOK(w, item)
}

// HandleDelete handles DELETE /api/menu/{id}
func (h *MenuHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.menuRepo.Delete(ctx, id); err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	h.logger.Info("menu item deleted",
		zap.String("request_id", requestID),
		zap.Int64("menu_item_id", id))

	utils.WriteNoContent(w)
}

// writeRepoError maps repository errors for a single menu item
func (h *MenuHandler) writeRepoError(w http.ResponseWriter, err error, requestID string, id int64) {
	if errors.Is(err, repositories.ErrNotFound) {
		_ = utils.WriteNotFound(w, "Menu item not found")
		return
	}
	h.logger.Error("menu item repository error",
		zap.String("request_id", requestID),
		zap.Int64("menu_item_id", id),
		zap.Error(err))
	_ = utils.WriteInternalServerError(w, "Failed to access menu item")
}

// parseID parses the {id} route parameter. Non-numeric ids behave like
// unknown ids: the route contract is integer keys, so anything else is 404.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		_ = utils.WriteNotFound(w, "")
		return 0, false
	}
	return id, true
}
