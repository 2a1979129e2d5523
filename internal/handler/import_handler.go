package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"squares/backend/internal/importer"
	"squares/backend/internal/logger"
	"squares/backend/internal/service"
)

type ImportHandler struct {
	imports service.ImportService
	tasks   service.ImportTaskService
}

func NewImportHandler(imports service.ImportService, tasks service.ImportTaskService) *ImportHandler {
	return &ImportHandler{imports: imports, tasks: tasks}
}

func (h *ImportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/import", h.Start)
	g.GET("/import/status", h.Status)
	g.POST("/import/cancel", h.Cancel)
}

type importRequest struct {
	FeedID  string                  `json:"feedId"`
	Records []importer.ExportRecord `json:"records"`
}

type importStartedResponse struct {
	TaskID string `json:"taskId"`
	Status string `json:"status"`
}

type importCancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

type importIdleResponse struct {
	Status string `json:"status"`
}

// Start kicks off an import run in the background; progress is polled
// through the status endpoint.
func (h *ImportHandler) Start(c echo.Context) error {
	var req importRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	feedID, err := strconv.ParseInt(req.FeedID, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid feed id"})
	}
	if len(req.Records) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "no records"})
	}

	taskID, ctx := h.tasks.Start(len(req.Records))
	go func() {
		result, err := h.imports.Import(ctx, feedID, req.Records)
		if err != nil {
			logger.Warn("import failed", "module", "handler", "action", "import", "resource", "post", "result", "failed", "error", err)
			h.tasks.Fail(err)
			return
		}
		h.tasks.Complete(result)
	}()

	return c.JSON(http.StatusAccepted, importStartedResponse{TaskID: taskID, Status: "running"})
}

func (h *ImportHandler) Status(c echo.Context) error {
	task := h.tasks.Get()
	if task == nil {
		return c.JSON(http.StatusOK, importIdleResponse{Status: "idle"})
	}
	return c.JSON(http.StatusOK, task)
}

func (h *ImportHandler) Cancel(c echo.Context) error {
	return c.JSON(http.StatusOK, importCancelledResponse{Cancelled: h.tasks.Cancel()})
}
