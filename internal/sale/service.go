package sale

import (
	"log/slog"
	"sort"
	"time"

	"github.com/frahmantamala/retail-management/internal"
	saleDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/sale"
)

// SoldItem is one flattened receipt line, the unit the report aggregates over.
type SoldItem struct {
	SaleID   int64
	SoldAt   time.Time
	Name     string
	Category string
	Price    float64
}

type RepositoryAPI interface {
	ListByCompany(companyID int64) ([]*saleDatamodel.Sale, error)
	Create(s *saleDatamodel.Sale) error
	ItemsForReport(companyID int64, from, to time.Time, category, product string) ([]SoldItem, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListByCompany(companyID int64) ([]*Sale, error) {
	records, err := s.repo.ListByCompany(companyID)
	if err != nil {
		return nil, internal.NewInternalError("failed to list sales", err)
	}

	sales := make([]*Sale, 0, len(records))
	for _, record := range records {
		sales = append(sales, FromDataModel(record))
	}
	return sales, nil
}

func (s *Service) Create(dto SaleDTO, companyID int64) (*Sale, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record := &saleDatamodel.Sale{CompanyID: companyID}
	for _, item := range dto.Items {
		record.Items = append(record.Items, saleDatamodel.Item{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
		})
	}
	if err := s.repo.Create(record); err != nil {
		return nil, internal.NewInternalError("failed to create sale", err)
	}

	s.logger.Info("sale recorded", "company_id", companyID, "items", len(record.Items))
	return FromDataModel(record), nil
}

const topProductsLimit = 5

// Report aggregates sold items into the storefront dashboard numbers. The
// repository narrows the rows with SQL; grouping happens here so the query
// stays portable across the production and test databases.
func (s *Service) Report(companyID int64, filter ReportFilter) (*Report, error) {
	from, to, err := filter.window()
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ItemsForReport(companyID, from, to, filter.Category, filter.Product)
	if err != nil {
		return nil, internal.NewInternalError("failed to load report data", err)
	}

	report := &Report{
		Trend:          []TrendPoint{},
		TrendBreakdown: []ProductTrendPoint{},
		Hourly:         []HourlyPoint{},
		ByCategory:     []CategoryTotal{},
		TopProducts:    []ProductStat{},
	}

	receipts := map[int64]struct{}{}
	daily := map[string]float64{}
	dailyByProduct := map[string]map[string]float64{}
	hourly := map[int]int64{}
	byCategory := map[string]float64{}
	quantity := map[string]int64{}
	revenue := map[string]float64{}

	for _, item := range items {
		report.TotalRevenue += item.Price
		receipts[item.SaleID] = struct{}{}

		day := item.SoldAt.Format("2006-01-02")
		daily[day] += item.Price

		if dailyByProduct[day] == nil {
			dailyByProduct[day] = map[string]float64{}
		}
		dailyByProduct[day][item.Name] += item.Price

		hourly[item.SoldAt.Hour()]++
		byCategory[item.Category] += item.Price
		quantity[item.Name]++
		revenue[item.Name] += item.Price
	}

	report.Receipts = int64(len(receipts))

	for day, total := range daily {
		report.Trend = append(report.Trend, TrendPoint{Date: day, Total: total})
	}
	sort.Slice(report.Trend, func(i, j int) bool { return report.Trend[i].Date < report.Trend[j].Date })

	for day, products := range dailyByProduct {
		for name, total := range products {
			report.TrendBreakdown = append(report.TrendBreakdown, ProductTrendPoint{Date: day, Product: name, Total: total})
		}
	}
	sort.Slice(report.TrendBreakdown, func(i, j int) bool {
		a, b := report.TrendBreakdown[i], report.TrendBreakdown[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Product < b.Product
	})

	for hour, count := range hourly {
		report.Hourly = append(report.Hourly, HourlyPoint{Hour: hour, Count: count})
	}
	sort.Slice(report.Hourly, func(i, j int) bool { return report.Hourly[i].Hour < report.Hourly[j].Hour })

	for category, total := range byCategory {
		report.ByCategory = append(report.ByCategory, CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(report.ByCategory, func(i, j int) bool { return report.ByCategory[i].Category < report.ByCategory[j].Category })

	for name, qty := range quantity {
		report.TopProducts = append(report.TopProducts, ProductStat{Product: name, Quantity: qty, Total: revenue[name]})
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		a, b := report.TopProducts[i], report.TopProducts[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		return a.Product < b.Product
	})
	if len(report.TopProducts) > topProductsLimit {
		report.TopProducts = report.TopProducts[:topProductsLimit]
	}

	return report, nil
}

// window parses the inclusive date filters. The upper bound extends to the
// end of its day.
func (f ReportFilter) window() (time.Time, time.Time, error) {
	var from, to time.Time

	if f.From != "" {
		parsed, err := time.Parse("2006-01-02", f.From)
		if err != nil {
			return from, to, ValidationError{Msg: "from must be YYYY-MM-DD"}
		}
		from = parsed
	}
	if f.To != "" {
		parsed, err := time.Parse("2006-01-02", f.To)
		if err != nil {
			return from, to, ValidationError{Msg: "to must be YYYY-MM-DD"}
		}
		to = parsed.Add(24*time.Hour - time.Millisecond)
	}
	return from, to, nil
}
