package schedule

import (
	"net/http"
	"time"

	"go-presensi/internal/shared/apperror"
	"go-presensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	location *time.Location
}

func NewHandler(service Service, location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{service: service, location: location}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MySchedule(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	resp, err := h.service.RangeFor(c.Request.Context(), c.GetString("employee_id"), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) EmployeeSchedule(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	resp, err := h.service.RangeFor(c.Request.Context(), c.Param("employeeId"), from, to)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetOverride(c *gin.Context) {
	var req SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	resp, err := h.service.SetOverride(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteOverride(c *gin.Context) {
	date, err := time.ParseInLocation("2006-01-02", c.Param("date"), h.location)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid date", nil)
		return
	}

	if err := h.service.DeleteOverride(c.Request.Context(), c.Param("employeeId"), date); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Override deleted.", nil)
}

// parseRange membaca query from/to; default 7 hari ke depan mulai hari ini.
func (h *Handler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().In(h.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.location)

	from := today
	to := today.AddDate(0, 0, 6)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.location)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid from date", nil)
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.location)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid to date", nil)
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}
