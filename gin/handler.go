package gin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fastfact"
)

// Handler handles HTTP requests for the record API.
type Handler struct {
	records fastfact.RecordService
	runs    fastfact.IngestRunService
}

// NewHandler creates a new API handler.
func NewHandler(records fastfact.RecordService, runs fastfact.IngestRunService) *Handler {
	return &Handler{records: records, runs: runs}
}

// HealthCheck reports service liveness and the stored record count.
func (h *Handler) HealthCheck(c *gin.Context) {
	health := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}

	if recs, err := h.records.FindRecords(c.Request.Context(), fastfact.RecordFilter{}); err == nil {
		health["records"] = len(recs)
	}

	c.JSON(http.StatusOK, health)
}

// ListRecords returns records matching the query filter.
func (h *Handler) ListRecords(c *gin.Context) {
	var filter fastfact.RecordFilter

	if tag := c.Query("tag"); tag != "" {
		filter.Tag = &tag
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if number := c.Query("number"); number != "" {
		filter.Number = &number
	}
	if approved := c.Query("approved"); approved != "" {
		v, err := strconv.ParseBool(approved)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'approved' parameter"})
			return
		}
		filter.LabelsApproved = &v
	}
	if limit := c.Query("limit"); limit != "" {
		v, err := strconv.Atoi(limit)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit' parameter"})
			return
		}
		filter.Limit = v
	}
	if offset := c.Query("offset"); offset != "" {
		v, err := strconv.Atoi(offset)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'offset' parameter"})
			return
		}
		filter.Offset = v
	}
	if c.Query("sort") == "number" {
		filter.SortBy = fastfact.SortByNumber
	}

	recs, err := h.records.FindRecords(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": recs,
		"total":   len(recs),
	})
}

// GetRecord returns a single record by ID.
func (h *Handler) GetRecord(c *gin.Context) {
	rec, err := h.records.FindRecordByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateRecord applies a partial update from the request body.
func (h *Handler) UpdateRecord(c *gin.Context) {
	var upd fastfact.RecordUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.records.UpdateRecord(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteRecord permanently removes a record.
func (h *Handler) DeleteRecord(c *gin.Context) {
	if err := h.records.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApproveRecord marks the record's taxonomy labels as human-reviewed.
func (h *Handler) ApproveRecord(c *gin.Context) {
	approved := true
	rec, err := h.records.UpdateRecord(c.Request.Context(), c.Param("id"), fastfact.RecordUpdate{
		LabelsApproved: &approved,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListRuns returns recent ingest runs, most recent first.
func (h *Handler) ListRuns(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'limit' parameter"})
			return
		}
		limit = v
	}

	runs, err := h.runs.FindIngestRuns(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"runs":  runs,
		"total": len(runs),
	})
}

// respondError maps application error codes to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch fastfact.ErrorCode(err) {
	case fastfact.EINVALID:
		status = http.StatusBadRequest
	case fastfact.ENOTFOUND:
		status = http.StatusNotFound
	case fastfact.ECONFLICT:
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": fastfact.ErrorMessage(err)})
}
