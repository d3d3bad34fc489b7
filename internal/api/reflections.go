package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/usecase"
)

// SaveReflection stores one completed reflection form.
func (h *Handler) SaveReflection(c echo.Context) error {
	var req SaveReflectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	reflection := &entities.Reflection{
		UserID:           req.UserID,
		CoreValues:       req.CoreValues,
		LifeGoals:        req.LifeGoals,
		CurrentStruggles: req.CurrentStruggles,
		IdealSelf:        req.IdealSelf,
		DecisionFocus:    req.DecisionFocus,
	}

	if err := h.reflections.Save(c.Request().Context(), reflection); err != nil {
		switch {
		case errors.Is(err, usecase.ErrStoreUnavailable):
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Success: false,
				Error:   "Reflection storage is not configured",
			})
		case errors.Is(err, entities.ErrInvalidReflection):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
		default:
			h.logger.Error("Failed to save reflection", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{
				Success: false,
				Error:   "Failed to save reflection",
			})
		}
	}

	return c.JSON(http.StatusCreated, toReflectionResponse(reflection))
}

// ListReflections returns a user's reflections, most recent first.
func (h *Handler) ListReflections(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "user_id is required",
		})
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Success: false,
				Error:   "limit must be a positive integer",
			})
		}
		limit = parsed
	}

	reflections, err := h.reflections.Recent(c.Request().Context(), userID, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrStoreUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Success: false,
				Error:   "Reflection storage is not configured",
			})
		}
		h.logger.Error("Failed to list reflections",
			zap.String("user_id", userID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Success: false,
			Error:   "Failed to load reflections",
		})
	}

	responses := make([]ReflectionResponse, 0, len(reflections))
	for _, reflection := range reflections {
		responses = append(responses, toReflectionResponse(reflection))
	}

	return c.JSON(http.StatusOK, responses)
}

func toReflectionResponse(r *entities.Reflection) ReflectionResponse {
	return ReflectionResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		CoreValues:       r.CoreValues,
		LifeGoals:        r.LifeGoals,
		CurrentStruggles: r.CurrentStruggles,
		IdealSelf:        r.IdealSelf,
		DecisionFocus:    r.DecisionFocus,
		CreatedAt:        r.CreatedAt,
	}
}
