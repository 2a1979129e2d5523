package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"squares/backend/internal/service"
)

type ScrollHandler struct {
	scrolls service.ScrollService
	persist service.PersistenceService
}

func NewScrollHandler(scrolls service.ScrollService, persist service.PersistenceService) *ScrollHandler {
	return &ScrollHandler{scrolls: scrolls, persist: persist}
}

func (h *ScrollHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/scroll", h.Get)
	g.PUT("/scroll/anchor", h.AdvanceAnchor)
	g.POST("/posts/:key/visited", h.MarkVisited)
}

type postResponse struct {
	Key     string `json:"key"`
	FeedID  string `json:"feedId"`
	Path    string `json:"path"`
	Visited bool   `json:"visited"`
}

type scrollResponse struct {
	Posts       []postResponse `json:"posts"`
	FeedIDs     []string       `json:"feedIds"`
	AnchorIndex int            `json:"anchorIndex"`
	Length      int            `json:"length"`
}

type anchorRequest struct {
	Index int `json:"index"`
}

type anchorResponse struct {
	AnchorIndex int `json:"anchorIndex"`
}

func (h *ScrollHandler) Get(c echo.Context) error {
	view := h.scrolls.View()
	resp := scrollResponse{
		Posts:       make([]postResponse, 0, len(view.Posts)),
		FeedIDs:     make([]string, 0, len(view.FeedIDs)),
		AnchorIndex: view.AnchorIndex,
		Length:      view.Length,
	}
	for _, post := range view.Posts {
		resp.Posts = append(resp.Posts, postResponse{
			Key:     formatID(post.DateFound),
			FeedID:  formatID(post.FeedID),
			Path:    post.Path,
			Visited: post.Visited,
		})
	}
	for _, feedID := range view.FeedIDs {
		resp.FeedIDs = append(resp.FeedIDs, formatID(feedID))
	}
	return c.JSON(http.StatusOK, resp)
}

// AdvanceAnchor moves the reading position. Out-of-range indexes are
// clamped, not rejected; scrollers overshoot while settling.
func (h *ScrollHandler) AdvanceAnchor(c echo.Context) error {
	var req anchorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	anchor := h.scrolls.AdvanceAnchor(req.Index)
	if err := h.persist.SaveAnchor(c.Request().Context(), anchor); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, anchorResponse{AnchorIndex: anchor})
}

func (h *ScrollHandler) MarkVisited(c echo.Context) error {
	key, err := parseIDParam(c, "key")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid post key"})
	}
	if err := h.scrolls.MarkVisited(key); err != nil {
		return writeServiceError(c, err)
	}
	if err := h.persist.SaveVisited(c.Request().Context(), key); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
