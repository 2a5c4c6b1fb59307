package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eursukkul/reservation-service/internal/dto"
	"github.com/eursukkul/reservation-service/internal/models"
	"github.com/eursukkul/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/reservations")
	g.GET("", h.ListReservations)
	g.POST("", h.CreateReservation)
	g.GET("/counts", h.GetCounts)
	g.GET("/stats", h.GetStats)
	g.GET("/:id", h.GetReservation)
	g.PATCH("/:id/status", h.TransitionStatus)
	g.POST("/:id/refund", h.ProcessRefund)
}

func (h *ReservationHandler) ListReservations(c echo.Context) error {
	spec, err := filterSpecFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reservations, err := h.svc.ListReservations(c.Request().Context(), spec, c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req dto.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Guest.FirstName == "" || req.Guest.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "guest first_name and email are required")
	}
	if req.Room.Code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "room code is required")
	}

	res, err := h.svc.CreateReservation(c.Request().Context(), service.CreateReservationInput{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Guests:   req.Guests,
		Guest: models.GuestInfo{
			FirstName: req.Guest.FirstName,
			LastName:  req.Guest.LastName,
			Email:     req.Guest.Email,
			Phone:     req.Guest.Phone,
			AvatarURL: req.Guest.AvatarURL,
		},
		Room: models.RoomInfo{
			Code:     req.Room.Code,
			Type:     req.Room.Type,
			Floor:    req.Room.Floor,
			Capacity: req.Room.Capacity,
		},
		Payment: models.Payment{
			Amount:   req.Payment.Amount,
			Currency: req.Payment.Currency,
			Method:   req.Payment.Method,
			Status:   req.Payment.Status,
		},
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) GetReservation(c echo.Context) error {
	res, err := h.svc.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) TransitionStatus(c echo.Context) error {
	var req dto.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	res, err := h.svc.TransitionStatus(c.Request().Context(), c.Param("id"), req.Status, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) ProcessRefund(c echo.Context) error {
	var req dto.RefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.svc.ProcessRefund(c.Request().Context(), c.Param("id"), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReservationNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidAmount):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidState):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *ReservationHandler) GetCounts(c echo.Context) error {
	counts, err := h.svc.GetCounts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *ReservationHandler) GetStats(c echo.Context) error {
	stats, err := h.svc.GetStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

func filterSpecFromQuery(c echo.Context) (service.FilterSpec, error) {
	var spec service.FilterSpec

	for _, s := range splitParam(c.QueryParam("status")) {
		status := models.ReservationStatus(s)
		if !models.ValidStatus(status) {
			return spec, errors.New("unknown status: " + s)
		}
		spec.Statuses = append(spec.Statuses, status)
	}
	for _, s := range splitParam(c.QueryParam("payment_status")) {
		spec.PaymentStatuses = append(spec.PaymentStatuses, models.PaymentStatus(s))
	}
	spec.RoomTypes = splitParam(c.QueryParam("room_type"))

	var err error
	if spec.MinGuests, err = intParam(c.QueryParam("min_guests")); err != nil {
		return spec, errors.New("invalid min_guests")
	}
	if spec.MaxGuests, err = intParam(c.QueryParam("max_guests")); err != nil {
		return spec, errors.New("invalid max_guests")
	}
	if spec.From, err = timeParam(c.QueryParam("from")); err != nil {
		return spec, errors.New("invalid from date")
	}
	if spec.To, err = timeParam(c.QueryParam("to")); err != nil {
		return spec, errors.New("invalid to date")
	}

	switch key := service.SortKey(c.QueryParam("sort")); key {
	case service.SortNone, service.SortCheckIn, service.SortCreatedAt, service.SortAmount:
		spec.SortBy = key
	default:
		return spec, errors.New("unknown sort key")
	}
	spec.SortDesc = c.QueryParam("order") == "desc"

	return spec, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func timeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unparseable time: " + raw)
}
