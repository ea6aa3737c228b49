package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofin/ledgersync/internal/apperrors"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/dto"
	"github.com/ngofin/ledgersync/internal/middleware"
)

// expenseHandler handles HTTP requests for the expense lookup surface.
type expenseHandler struct {
	reader portssvc.LedgerReaderSvc
}

func registerExpenseRoutes(v1 *gin.RouterGroup, reader portssvc.LedgerReaderSvc) {
	h := &expenseHandler{reader: reader}
	v1.GET("/expenses/:expenseID", h.getExpense)
}

func (h *expenseHandler) getExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID := c.Param("expenseID")

	expense, err := h.reader.GetExpense(c.Request.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		logger.Error("Failed to get expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expense"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}
