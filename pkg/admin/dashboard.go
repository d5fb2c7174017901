// Dashboard endpoints: the fixed aggregate snapshot and the synthetic
// 7-day chart series.

package admin

import (
	"net/http"

	"github.com/trontrack/trackd/internal/store"
)

// ChartDataResponse wraps the synthetic daily series.
type ChartDataResponse struct {
	ChartData []store.ChartPoint `json:"chart_data"`
}

// handleDashboardStats handles GET {prefix}/dashboard/stats.
func (a *API) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Dashboard())
}

// handleChartData handles GET {prefix}/dashboard/chart-data.
func (a *API) handleChartData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ChartDataResponse{ChartData: a.store.ChartData()})
}
