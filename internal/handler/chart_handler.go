package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jengzang/walktrack-backend-go/internal/service"
	"github.com/jengzang/walktrack-backend-go/pkg/response"
)

// ChartHandler renders the hourly step distribution as an HTML bar chart.
type ChartHandler struct {
	statsService *service.StatsService
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(statsService *service.StatsService) *ChartHandler {
	return &ChartHandler{statsService: statsService}
}

// HourlyChart handles GET /api/v1/steps/chart
// Query params: date (optional, 2006-01-02; defaults to today).
func (h *ChartHandler) HourlyChart(c *gin.Context) {
	hourly, err := h.statsService.GetHourly(c.Query("date"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	labels := make([]string, 0, len(hourly.Buckets))
	data := make([]opts.BarData, 0, len(hourly.Buckets))
	for hour, steps := range hourly.Buckets {
		labels = append(labels, fmt.Sprintf("%02d:00", hour))
		data = append(data, opts.BarData{Value: steps})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Hourly Steps",
			Width:     "1000px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Steps by Hour",
			Subtitle: fmt.Sprintf("%s — %d steps", hourly.Day, hourly.Total),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("steps", data)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		response.InternalError(c, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
