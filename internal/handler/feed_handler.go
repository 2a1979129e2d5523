package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"squares/backend/internal/model"
	"squares/backend/internal/service"
)

type FeedHandler struct {
	service service.FeedService
}

func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/feeds", h.List)
	g.POST("/feeds", h.Follow)
	g.DELETE("/feeds/:id", h.Unfollow)
}

type feedResponse struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Icon        string `json:"icon,omitempty"`
	Author      string `json:"author"`
	Description string `json:"description,omitempty"`
	Size        int64  `json:"size"`
	FollowedAt  int64  `json:"followedAt"`
}

type feedListResponse struct {
	Feeds []feedResponse `json:"feeds"`
}

type followRequest struct {
	URL string `json:"url"`
}

func toFeedResponse(feed model.Feed) feedResponse {
	return feedResponse{
		ID:          formatID(feed.ID),
		URL:         feed.URL,
		Icon:        feed.Icon,
		Author:      feed.DisplayAuthor(),
		Description: feed.Description,
		Size:        feed.Size,
		FollowedAt:  feed.FollowedAt,
	}
}

func (h *FeedHandler) List(c echo.Context) error {
	feeds := h.service.List(c.Request().Context())
	resp := feedListResponse{Feeds: make([]feedResponse, 0, len(feeds))}
	for _, feed := range feeds {
		resp.Feeds = append(resp.Feeds, toFeedResponse(feed))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FeedHandler) Follow(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	feed, err := h.service.Follow(c.Request().Context(), req.URL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toFeedResponse(feed))
}

func (h *FeedHandler) Unfollow(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid feed id"})
	}
	if err := h.service.Unfollow(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
