package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	dataset DatasetChecker
	version string
}

func NewHealthController(dataset DatasetChecker, version string) *HealthController {
	return &HealthController{
		dataset: dataset,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if h.dataset != nil {
		if err := h.dataset.Ping(c.Request.Context()); err != nil {
			checks["dataset"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["dataset"] = "ok"
			checks["dataset_source"] = h.dataset.Source()
			checks["dataset_bytes"] = strconv.Itoa(h.dataset.Size())
		}
	} else {
		checks["dataset"] = "not configured"
		status = "unhealthy"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
