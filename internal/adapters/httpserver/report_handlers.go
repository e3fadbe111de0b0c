package httpserver

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dquezada/revpro/internal/adapters/reports"
)

const dayLayout = "2006-01-02"

func (s *Server) dashboardRange(c *gin.Context) (time.Time, time.Time) {
	to := time.Now()
	if ds := c.Query("to"); ds != "" {
		if t, err := time.Parse(dayLayout, ds); err == nil {
			to = t
		}
	}
	from := to.AddDate(0, 0, -29)
	if ds := c.Query("from"); ds != "" {
		if t, err := time.Parse(dayLayout, ds); err == nil {
			from = t
		}
	}
	return from, to
}

func (s *Server) handleDashboard(c *gin.Context) {
	from, to := s.dashboardRange(c)
	sum, err := s.reports.Sales(c.Request.Context(), ownerID(c), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) handleDashboardExport(c *gin.Context) {
	from, to := s.dashboardRange(c)
	sum, err := s.reports.Sales(c.Request.Context(), ownerID(c), from, to)
	if err != nil {
		fail(c, err)
		return
	}

	switch strings.ToLower(c.DefaultQuery("format", "csv")) {
	case "xlsx":
		buf, err := reports.SalesWorkbook(sum)
		if err != nil {
			fail(c, err)
			return
		}
		name := fmt.Sprintf("ventas_%s_%s.xlsx", sum.From, sum.To)
		c.Header("Content-Disposition", "attachment; filename="+name)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	case "csv":
		name := fmt.Sprintf("ventas_%s_%s.csv", sum.From, sum.To)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename="+name)
		w := c.Writer
		fmt.Fprintln(w, "order_id,created_at,status,client,method,total,total_cost,profit")
		for _, o := range sum.Orders {
			fmt.Fprintf(w, "%s,%s,%s,%s,%s,%.2f,%.2f,%.2f\n",
				o.ID, o.CreatedAt.Format(time.RFC3339), o.Status,
				strings.ReplaceAll(o.ClientName, ",", " "), o.Method,
				o.Total, o.TotalCost, o.Profit)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "formato no soportado"})
	}
}
