package announcement

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// AnnouncementHandler handles HTTP requests for announcements.
type AnnouncementHandler struct {
	service *AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service *AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

// AnnouncementResponse is the public shape of one announcement. created_at is
// deliberately absent.
type AnnouncementResponse struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	StartsAt  *time.Time `json:"starts_at"`
	ExpiresAt time.Time  `json:"expires_at"`
	CreatedBy string     `json:"created_by"`
}

func toResponses(items []Announcement) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, AnnouncementResponse{
			ID:        a.ID.Hex(),
			Message:   a.Message,
			StartsAt:  a.StartsAt,
			ExpiresAt: a.ExpiresAt,
			CreatedBy: a.CreatedBy,
		})
	}
	return out
}

// teacherUsername resolves the caller identity: query parameter first, then
// the request body field.
func teacherUsername(c echo.Context, fromBody string) string {
	if username := c.QueryParam("teacher_username"); username != "" {
		return username
	}
	return fromBody
}

func respondError(c echo.Context, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Code, map[string]string{"error": apiErr.Message})
	}
	log.Println("Announcement operation failed:", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}

// ListActive returns the currently visible announcements. Public endpoint.
func (h *AnnouncementHandler) ListActive(c echo.Context) error {
	items, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toResponses(items))
}

// ListAll returns every announcement, active or not. Teachers only.
func (h *AnnouncementHandler) ListAll(c echo.Context) error {
	items, err := h.service.ListAll(c.Request().Context(), c.QueryParam("teacher_username"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toResponses(items))
}

// Create posts a new announcement. Teachers only. Fields may arrive in the
// JSON body or as query parameters.
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Message == "" {
		req.Message = c.QueryParam("message")
	}
	if req.ExpiresAt == "" {
		req.ExpiresAt = c.QueryParam("expires_at")
	}
	if req.StartsAt == "" {
		req.StartsAt = c.QueryParam("starts_at")
	}

	a, err := h.service.Create(c.Request().Context(), teacherUsername(c, req.TeacherUsername), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"id": a.ID.Hex(), "message": a.Message})
}

// Update applies a partial update to one announcement. Teachers only. Query
// parameters stand in for body fields that were not supplied, keeping the
// supplied-but-empty case (starts_at=) distinguishable from absence.
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	params := c.QueryParams()
	if req.Message == nil {
		if v, ok := params["message"]; ok && len(v) > 0 {
			req.Message = &v[0]
		}
	}
	if req.ExpiresAt == nil {
		if v, ok := params["expires_at"]; ok && len(v) > 0 {
			req.ExpiresAt = &v[0]
		}
	}
	if req.StartsAt == nil {
		if v, ok := params["starts_at"]; ok && len(v) > 0 {
			req.StartsAt = &v[0]
		}
	}

	id := c.Param("id")
	if err := h.service.Update(c.Request().Context(), teacherUsername(c, req.TeacherUsername), id, req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "updated": true})
}

// Delete removes one announcement permanently. Teachers only.
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), c.QueryParam("teacher_username"), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"id": id, "deleted": true})
}
