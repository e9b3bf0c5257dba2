package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/ports"
)

// ActivityHandler serves the per-user task activity feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /api/activity.
//
// @Summary      Recent task activity for the caller
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50)"
// @Success      200    {array}   activityResponse
// @Failure      401    {object}  map[string]string
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.service.ListByOwner(c.Request().Context(), userID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toActivityListResponse(items))
}
