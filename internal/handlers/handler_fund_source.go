package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ngofin/ledgersync/internal/apperrors"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/dto"
	"github.com/ngofin/ledgersync/internal/middleware"
)

const defaultFundSourceLimit = 100

// fundSourceHandler handles HTTP requests for the fund-source surface.
type fundSourceHandler struct {
	reader portssvc.LedgerReaderSvc
}

func registerFundSourceRoutes(v1 *gin.RouterGroup, reader portssvc.LedgerReaderSvc) {
	h := &fundSourceHandler{reader: reader}
	funds := v1.Group("/fund-sources")
	funds.GET("", h.listFundSources)
	funds.GET("/:fundSourceID", h.getFundSource)
}

func (h *fundSourceHandler) listFundSources(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := defaultFundSourceLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	funds, err := h.reader.ListFundSources(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list fund sources", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fund sources"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fundSources": dto.ToFundSourceResponses(funds)})
}

func (h *fundSourceHandler) getFundSource(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fundSourceID := c.Param("fundSourceID")

	fund, err := h.reader.GetFundSource(c.Request.Context(), fundSourceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fund source not found"})
			return
		}
		logger.Error("Failed to get fund source", slog.String("error", err.Error()), slog.String("fund_source_id", fundSourceID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fund source"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFundSourceResponse(fund))
}
