package performance

import (
	"net/http"
	"strconv"
	"time"

	"go-presensi/internal/shared/apperror"
	"go-presensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MonthlyRecap(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.MonthlyRecap(c.Request.Context(), year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyHistory(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	resp, err := h.service.EmployeeHistory(c.Request.Context(), employeeID, year, month)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func parsePeriod(c *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid year", nil)
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid month", nil)
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}
