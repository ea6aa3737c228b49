package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portsrepo "github.com/ngofin/ledgersync/internal/core/ports/repositories"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/dto"
	"github.com/ngofin/ledgersync/internal/middleware"
)

// journalEntryHandler handles HTTP requests for the journal-entry surface.
type journalEntryHandler struct {
	reader portssvc.LedgerReaderSvc
}

// RegisterJournalEntryRoutes mounts the journal-entry routes on the given
// group.
func RegisterJournalEntryRoutes(v1 *gin.RouterGroup, reader portssvc.LedgerReaderSvc) {
	h := &journalEntryHandler{reader: reader}
	entries := v1.Group("/journal-entries")
	entries.GET("", h.listEntries)
	entries.GET("/:transactionID", h.getTransaction)
}

// listEntries returns a filtered, cursor-paginated listing of journal
// entries, newest first.
func (h *journalEntryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid journal entry listing params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := portsrepo.JournalEntryFilter{SourceID: params.SourceID}
	if params.SourceType != nil {
		sourceType := domain.SourceType(*params.SourceType)
		filter.SourceType = &sourceType
	}

	entries, nextToken, err := h.reader.ListEntries(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list journal entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListJournalEntriesResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	})
}

// getTransaction returns the balanced set of rows for one transaction id.
func (h *journalEntryHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	entries, err := h.reader.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToJournalEntryResponses(entries)})
}
