package routes

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/process"

	"github.com/lexigraph/backend/pkg/logger"
)

// GetMemoryHandler reports the resident and virtual memory of the server
// process.
func GetMemoryHandler(c echo.Context) error {
	type memoryResponse struct {
		Message  string `json:"message"`
		RSSBytes uint64 `json:"rss_bytes,omitempty"`
		VMSBytes uint64 `json:"vms_bytes,omitempty"`
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logger.Error("Failed to inspect process", "err", err)
		return c.JSON(http.StatusInternalServerError, memoryResponse{
			Message: "Internal server error",
		})
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		logger.Error("Failed to read memory info", "err", err)
		return c.JSON(http.StatusInternalServerError, memoryResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, memoryResponse{
		Message:  "Memory usage read successfully",
		RSSBytes: memInfo.RSS,
		VMSBytes: memInfo.VMS,
	})
}
