package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/dquezada/revpro/internal/domain"
)

type ReportUC struct {
	Orders domain.OrderRepo
}

type TopProduct struct {
	Name    string  `json:"name"`
	Qty     int     `json:"quantity"`
	Revenue float64 `json:"revenue"`
}

type DayPoint struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Summary son los agregados del dashboard sobre un rango de fechas.
type Summary struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	OrdersCount   int            `json:"ordersCount"`
	Revenue       float64        `json:"revenue"`
	TotalCost     float64        `json:"totalCost"`
	Profit        float64        `json:"profit"`
	Pending       float64        `json:"pending"`
	AvgOrderValue float64        `json:"avgOrderValue"`
	StatusCounts  map[string]int `json:"statusCounts"`
	MethodCounts  map[string]int `json:"methodCounts"`
	TopProducts   []TopProduct   `json:"topProducts"`
	DailySeries   []DayPoint     `json:"dailySeries"`

	Orders []domain.Order `json:"-"`
}

const dayLayout = "2006-01-02"

// Sales agrega las órdenes del dueño en [from, to]. Facturación, costo y
// ganancia salen sólo de órdenes PAGADO; lo pendiente de cobro es la suma de
// los totales PENDIENTE. Las canceladas únicamente cuentan en el desglose
// por estado.
func (uc *ReportUC) Sales(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*Summary, error) {
	if from.After(to) {
		from, to = to, from
	}
	orders, err := uc.Orders.ListInRange(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		From:         from.Format(dayLayout),
		To:           to.Format(dayLayout),
		StatusCounts: map[string]int{},
		MethodCounts: map[string]int{},
		Orders:       orders,
	}
	productAgg := map[string]TopProduct{}
	dayAgg := map[string]DayPoint{}

	paid := 0
	for _, o := range orders {
		s.StatusCounts[string(o.Status)]++
		if o.Method != "" {
			s.MethodCounts[o.Method]++
		}
		switch o.Status {
		case domain.OrderStatusPendiente:
			s.Pending += o.Total
		case domain.OrderStatusPagado:
			paid++
			s.Revenue += o.Total
			s.TotalCost += o.TotalCost
			s.Profit += o.Profit

			day := o.CreatedAt.Format(dayLayout)
			dp := dayAgg[day]
			dp.Day = day
			dp.Revenue += o.Total
			dp.Orders++
			dayAgg[day] = dp

			for _, it := range o.Items {
				cur := productAgg[it.Name]
				cur.Name = it.Name
				cur.Qty += it.Qty
				cur.Revenue += it.Total
				productAgg[it.Name] = cur
			}
		}
	}
	s.OrdersCount = len(orders)
	if paid > 0 {
		s.AvgOrderValue = s.Revenue / float64(paid)
	}

	for _, v := range productAgg {
		s.TopProducts = append(s.TopProducts, v)
	}
	sort.Slice(s.TopProducts, func(i, j int) bool {
		if s.TopProducts[i].Qty == s.TopProducts[j].Qty {
			return s.TopProducts[i].Revenue > s.TopProducts[j].Revenue
		}
		return s.TopProducts[i].Qty > s.TopProducts[j].Qty
	})
	if len(s.TopProducts) > 25 {
		s.TopProducts = s.TopProducts[:25]
	}

	days := make([]string, 0, len(dayAgg))
	for d := range dayAgg {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		s.DailySeries = append(s.DailySeries, dayAgg[d])
	}
	return s, nil
}
