// pollution.go - CRUD handlers for pollution readings
//
// Every handler follows the same sequence: take the Actor the middleware
// resolved, ask the policy layer for a decision, call the repository, then
// shape the response per the decision. Handlers never branch on headers or
// roles directly.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"go-pollution-backend/apperrors"
	"go-pollution-backend/middleware"
	"go-pollution-backend/policy"
	"go-pollution-backend/repository"
)

// PollutionHandler serves the /api/pollution routes.
type PollutionHandler struct {
	Readings *repository.Readings
}

// List handles GET /api/pollution?page&limit&city&startDate&endDate.
func (h *PollutionHandler) List(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	decision, err := policy.Authorize(actor, policy.ActionReadList, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	page := parseIntQuery(c, "page", 1)
	limit := policy.ClampPageSize(actor, parseIntQuery(c, "limit", 0))

	filter := repository.PageFilter{City: c.Query("city")}
	filter.StartDate = parseDateQuery(c, "startDate")
	filter.EndDate = parseDateQuery(c, "endDate")

	readings, total, err := h.Readings.FindPage(c.Request.Context(), filter, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pollutionReadings": policy.ShapeReadings(readings, decision.Shape),
		"totalPages":        repository.TotalPages(total, limit),
		"currentPage":       page,
		"totalItems":        total,
	})
}

// GetLatest handles GET /api/pollution/latest?city=<name>.
func (h *PollutionHandler) GetLatest(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	decision, err := policy.Authorize(actor, policy.ActionReadLatest, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "City parameter is required"})
		return
	}

	reading, err := h.Readings.FindLatestByCity(c.Request.Context(), city)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"latestReading": policy.ShapeReading(reading, decision.Shape)})
}

// GetByID handles GET /api/pollution/:id.
func (h *PollutionHandler) GetByID(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	decision, err := policy.Authorize(actor, policy.ActionReadOne, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	reading, err := h.Readings.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reading": policy.ShapeReading(reading, decision.Shape)})
}

// Create handles POST /api/pollution. The caller becomes the owner.
func (h *PollutionHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	if _, err := policy.Authorize(actor, policy.ActionCreate, nil); err != nil {
		respondError(c, err)
		return
	}

	var input repository.ReadingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ownerID := actor.UserID
	reading, err := h.Readings.Create(c.Request.Context(), &input, &ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Pollution reading created successfully",
		"reading": reading,
	})
}

// Update handles PUT /api/pollution/:id. Owner-or-admin only.
func (h *PollutionHandler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	// Existence first: an unknown id is a 404 for everyone.
	existing, err := h.Readings.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := policy.Authorize(actor, policy.ActionUpdate, existing.UserID); err != nil {
		respondError(c, err)
		return
	}

	var input repository.ReadingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	reading, err := h.Readings.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pollution reading updated successfully",
		"reading": reading,
	})
}

// Delete handles DELETE /api/pollution/:id. Owner-or-admin only.
func (h *PollutionHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	existing, err := h.Readings.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := policy.Authorize(actor, policy.ActionDelete, existing.UserID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.Readings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pollution reading deleted successfully"})
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.NotFound("Pollution reading not found")
	}
	return id, nil
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	if value := c.Query(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// parseDateQuery accepts RFC 3339 timestamps or plain dates.
func parseDateQuery(c *gin.Context, key string) *time.Time {
	value := c.Query(key)
	if value == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	return nil
}
