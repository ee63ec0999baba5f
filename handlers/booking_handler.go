package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/littlelemon/restaurant-backend/internal/accesspolicy"
	"github.com/littlelemon/restaurant-backend/middleware"
	"github.com/littlelemon/restaurant-backend/models"
	"github.com/littlelemon/restaurant-backend/repositories"
	"github.com/littlelemon/restaurant-backend/utils"
	"go.uber.org/zap"
)

// CreateBookingRequest represents a request to create a booking. Any
// client-supplied name is ignored: the stored name is always the caller's
// username. Date is a plain string so a malformed value surfaces as a
// field error rather than a body parse failure.
type CreateBookingRequest struct {
	Name        *string `json:"name"`
	GuestNumber *int    `json:"guest_number"`
	Date        *string `json:"date"`
	Comment     *string `json:"comment"`
}

// UpdateBookingRequest represents a partial update; absent fields keep
// their stored values.
type UpdateBookingRequest struct {
	Name        *string `json:"name"`
	GuestNumber *int    `json:"guest_number"`
	Date        *string `json:"date"`
	Comment     *string `json:"comment"`
}

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingRepo repositories.BookingRepository
	logger      *zap.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingRepo repositories.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// HandleList handles GET /api/book/. Non-admin callers see only their own
// bookings; the filter runs in the repository query, before serialization.
func (h *BookingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	claims := middleware.GetClaimsFromContext(ctx)
	if claims == nil {
		h.logger.Error("claims not found in context",
			zap.String("request_id", requestID))
		_ = utils.WriteUnauthorized(w, "Authentication required")
		return
	}

	var bookings []*models.Booking
	var err error
	if accesspolicy.FilterOwnBookings(claims.Role()) {
		bookings, err = h.bookingRepo.ListByName(ctx, claims.Username)
	} else {
		bookings, err = h.bookingRepo.List(ctx)
	}

	if err != nil {
		h.logger.Error("failed to list bookings",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteInternalServerError(w, "Failed to retrieve bookings")
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}

	h.logger.Info("listed bookings",
		zap.String("request_id", requestID),
		zap.String("username", claims.Username),
		zap.Int("count", len(bookings)))

	_ = utils.WriteOK(w, bookings)
}

// HandleCreate handles POST /api/book/
func (h *BookingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	claims := middleware.GetClaimsFromContext(ctx)
	if claims == nil {
		h.logger.Error("claims not found in context",
			zap.String("request_id", requestID))
		_ = utils.WriteUnauthorized(w, "Authentication required")
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	guestNumber := models.BookingGuestNumberMin
	verr := utils.NewFieldErrors()
	if req.GuestNumber != nil {
		if err := models.ValidateGuestNumber(*req.GuestNumber); err != nil {
			verr.Add("guest_number", err.Error())
		} else {
			guestNumber = *req.GuestNumber
		}
	}
	date := parseDateField(req.Date, verr)
	if req.Comment != nil {
		if err := models.ValidateComment(*req.Comment); err != nil {
			verr.Add("comment", err.Error())
		}
	}
	if !verr.Empty() {
		h.logger.Warn("booking validation failed",
			zap.String("request_id", requestID),
			zap.Any("fields", verr.Fields))
		HandleValidationError(w, verr, h.logger)
		return
	}

	// Ownership: the booking is always recorded under the caller's
	// username, never the submitted name.
	booking := models.NewBooking(claims.Username, guestNumber, date, req.Comment)

	if err := h.bookingRepo.Create(ctx, booking); err != nil {
		h.logger.Error("failed to create booking",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteInternalServerError(w, "Failed to create booking")
		return
	}

	h.logger.Info("booking created",
		zap.String("request_id", requestID),
		zap.Int64("booking_id", booking.ID),
		zap.String("username", claims.Username))

	_ = utils.WriteCreated(w, booking)
}

// HandleGet handles GET /api/book/{id}
func (h *BookingHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingRepo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	_ = utils.WriteOK(w, booking)
}

// HandleUpdate handles PUT/PATCH /api/book/{id}. Admin-only by policy; the
// supplied name is stored verbatim here, unlike create.
func (h *BookingHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to parse request body",
			zap.String("request_id", requestID),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.bookingRepo.GetByID(ctx, id)
	if err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	verr := utils.NewFieldErrors()
	if req.Name != nil {
		booking.Name = req.Name
	}
	if req.GuestNumber != nil {
		if err := models.ValidateGuestNumber(*req.GuestNumber); err != nil {
			verr.Add("guest_number", err.Error())
		} else {
			booking.GuestNumber = *req.GuestNumber
		}
	}
	if date := parseDateField(req.Date, verr); date != nil {
		booking.Date = date
	}
	if req.Comment != nil {
		if err := models.ValidateComment(*req.Comment); err != nil {
			verr.Add("comment", err.Error())
		} else {
			booking.Comment = req.Comment
		}
	}
	if !verr.Empty() {
		h.logger.Warn("booking validation failed",
			zap.String("request_id", requestID),
			zap.Any("fields", verr.Fields))
		HandleValidationError(w, verr, h.logger)
		return
	}

	if err := h.bookingRepo.Update(ctx, booking); err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	h.logger.Info("booking updated",
		zap.String("request_id", requestID),
		zap.Int64("booking_id", booking.ID))

	_ = utils.WriteOK(w, booking)
}

// HandleDelete handles DELETE /api/book/{id}
func (h *BookingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := chimw.GetReqID(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.bookingRepo.Delete(ctx, id); err != nil {
		h.writeRepoError(w, err, requestID, id)
		return
	}

	h.logger.Info("booking deleted",
		zap.String("request_id", requestID),
		zap.Int64("booking_id", id))

	utils.WriteNoContent(w)
}

// writeRepoError maps repository errors for a single booking
func (h *BookingHandler) writeRepoError(w http.ResponseWriter, err error, requestID string, id int64) {
	if errors.Is(err, repositories.ErrNotFound) {
		_ = utils.WriteNotFound(w, "Booking not found")
		return
	}
	h.logger.Error("booking repository error",
		zap.String("request_id", requestID),
		zap.Int64("booking_id", id),
		zap.Error(err))
	_ = utils.WriteInternalServerError(w, "Failed to access booking")
}

// parseDateField parses and validates an optional booking date, recording
// field errors on verr. A supplied date must not be before today.
func parseDateField(raw *string, verr *utils.ValidationError) *models.Date {
	if raw == nil {
		return nil
	}
	t, err := time.Parse(models.DateLayout, *raw)
	if err != nil {
		verr.Add("date", "date has wrong format, use "+models.DateLayout)
		return nil
	}
	d := models.NewDate(t.Year(), t.Month(), t.Day())
	if err := models.ValidateBookingDate(d, models.Today()); err != nil {
		verr.Add("date", err.Error())
		return nil
	}
	return &d
}
