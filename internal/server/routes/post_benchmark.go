package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/backend/pkg/logger"
	"github.com/lexigraph/backend/pkg/textproc"
)

// BenchmarkHandler times the raw tokenization split loop over the given text
// and optionally reports its BPE token count under a tiktoken encoding.
func BenchmarkHandler(c echo.Context) error {
	type benchmarkRequest struct {
		Text       string `json:"text" validate:"required"`
		Iterations int    `json:"iterations" validate:"required,gt=0"`
		Encoding   string `json:"encoding"`
	}

	type benchmarkResponse struct {
		Message       string  `json:"message"`
		AverageMs     float64 `json:"average_ms"`
		Iterations    int     `json:"iterations"`
		EncodedTokens *int    `json:"encoded_tokens,omitempty"`
	}

	data := new(benchmarkRequest)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, benchmarkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, benchmarkResponse{
			Message: "Invalid request body",
		})
	}

	resp := benchmarkResponse{
		Message:    "Benchmark completed",
		AverageMs:  textproc.BenchmarkTokenization(data.Text, data.Iterations),
		Iterations: data.Iterations,
	}

	if data.Encoding != "" {
		count, err := textproc.EncodedTokenCount(data.Text, data.Encoding)
		if err != nil {
			logger.Error("Failed to count encoded tokens", "encoding", data.Encoding, "err", err)
			return c.JSON(http.StatusBadRequest, benchmarkResponse{
				Message: "Unknown encoding",
			})
		}
		resp.EncodedTokens = &count
	}

	return c.JSON(http.StatusOK, resp)
}
