package sale_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	saleDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/sale"
	"github.com/frahmantamala/retail-management/internal/sale"
	saleRepo "github.com/frahmantamala/retail-management/internal/sale/postgres"
)

func TestSale(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Sale Module Suite")
}

var _ = Describe("Sale Module", func() {
	var (
		db      *gorm.DB
		service *sale.Service
	)

	const companyID int64 = 1
	const otherCompanyID int64 = 2

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&saleDatamodel.Sale{}, &saleDatamodel.Item{})).To(Succeed())

		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = sale.NewService(saleRepo.NewSaleRepository(db), slogger)
	})

	seedSale := func(company int64, at time.Time, items ...saleDatamodel.Item) {
		record := &saleDatamodel.Sale{CompanyID: company, CreatedAt: at, Items: items}
		Expect(db.Create(record).Error).To(Succeed())
	}

	day := func(d string, hour int) time.Time {
		t, err := time.Parse("2006-01-02", d)
		Expect(err).NotTo(HaveOccurred())
		return t.Add(time.Duration(hour) * time.Hour)
	}

	Describe("Create", func() {
		It("should persist the receipt with its items", func() {
			created, err := service.Create(sale.SaleDTO{Items: []sale.ItemDTO{
				{Name: "Acqua", Category: "Bevande", Price: 1.5},
				{Name: "Cola", Category: "Bevande", Price: 2.5},
			}}, companyID)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Items).To(HaveLen(2))

			listed, err := service.ListByCompany(companyID)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0].Items).To(HaveLen(2))
		})

		It("should reject an empty receipt", func() {
			_, err := service.Create(sale.SaleDTO{}, companyID)
			Expect(err).To(BeAssignableToTypeOf(sale.ValidationError{}))
		})

		It("should reject a negative price", func() {
			_, err := service.Create(sale.SaleDTO{Items: []sale.ItemDTO{
				{Name: "Acqua", Category: "Bevande", Price: -1},
			}}, companyID)
			Expect(err).To(BeAssignableToTypeOf(sale.ValidationError{}))
		})
	})

	Describe("ListByCompany", func() {
		It("should not leak another company's receipts", func() {
			seedSale(companyID, day("2026-03-01", 10), saleDatamodel.Item{Name: "Acqua", Category: "Bevande", Price: 1.5})
			seedSale(otherCompanyID, day("2026-03-01", 10), saleDatamodel.Item{Name: "Cola", Category: "Bevande", Price: 2.5})

			listed, err := service.ListByCompany(companyID)
			Expect(err).NotTo(HaveOccurred())
			Expect(listed).To(HaveLen(1))
			Expect(listed[0].Items[0].Name).To(Equal("Acqua"))
		})
	})

	Describe("Report", func() {
		BeforeEach(func() {
			// two receipts on the 1st, one on the 2nd, plus a foreign company sale
			seedSale(companyID, day("2026-03-01", 9),
				saleDatamodel.Item{Name: "Acqua", Category: "Bevande", Price: 1.5},
				saleDatamodel.Item{Name: "Panino", Category: "Gastronomia", Price: 4.0},
			)
			seedSale(companyID, day("2026-03-01", 18),
				saleDatamodel.Item{Name: "Acqua", Category: "Bevande", Price: 1.5},
			)
			seedSale(companyID, day("2026-03-02", 9),
				saleDatamodel.Item{Name: "Cola", Category: "Bevande", Price: 2.5},
			)
			seedSale(otherCompanyID, day("2026-03-01", 9),
				saleDatamodel.Item{Name: "Espresso", Category: "Bevande", Price: 1.0},
			)
		})

		It("should total revenue and count distinct receipts", func() {
			report, err := service.Report(companyID, sale.ReportFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TotalRevenue).To(BeNumerically("~", 9.5, 1e-9))
			Expect(report.Receipts).To(Equal(int64(3)))
		})

		It("should build a date-ordered daily trend", func() {
			report, err := service.Report(companyID, sale.ReportFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Trend).To(HaveLen(2))
			Expect(report.Trend[0].Date).To(Equal("2026-03-01"))
			Expect(report.Trend[0].Total).To(BeNumerically("~", 7.0, 1e-9))
			Expect(report.Trend[1].Date).To(Equal("2026-03-02"))
			Expect(report.Trend[1].Total).To(BeNumerically("~", 2.5, 1e-9))
		})

		It("should count items per hour", func() {
			report, err := service.Report(companyID, sale.ReportFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.Hourly).To(Equal([]sale.HourlyPoint{
				{Hour: 9, Count: 3},
				{Hour: 18, Count: 1},
			}))
		})

		It("should group revenue by category", func() {
			report, err := service.Report(companyID, sale.ReportFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.ByCategory).To(Equal([]sale.CategoryTotal{
				{Category: "Bevande", Total: 5.5},
				{Category: "Gastronomia", Total: 4.0},
			}))
		})

		It("should rank products by quantity sold", func() {
			report, err := service.Report(companyID, sale.ReportFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TopProducts[0]).To(Equal(sale.ProductStat{Product: "Acqua", Quantity: 2, Total: 3.0}))
		})

		It("should keep at most five products in the ranking", func() {
			items := make([]saleDatamodel.Item, 0, 7)
			for i := 0; i < 7; i++ {
				items = append(items, saleDatamodel.Item{
					Name:     fmt.Sprintf("Prodotto %d", i),
					Category: "Snack",
					Price:    1.0,
				})
			}
			seedSale(companyID, day("2026-03-03", 12), items...)

			report, err := service.Report(companyID, sale.ReportFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TopProducts).To(HaveLen(5))
		})

		It("should honor the date window inclusively", func() {
			report, err := service.Report(companyID, sale.ReportFilter{From: "2026-03-02", To: "2026-03-02"})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TotalRevenue).To(BeNumerically("~", 2.5, 1e-9))
			Expect(report.Receipts).To(Equal(int64(1)))
		})

		It("should filter by category", func() {
			report, err := service.Report(companyID, sale.ReportFilter{Category: "Gastronomia"})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TotalRevenue).To(BeNumerically("~", 4.0, 1e-9))
			Expect(report.TopProducts).To(HaveLen(1))
			Expect(report.TopProducts[0].Product).To(Equal("Panino"))
		})

		It("should filter by product", func() {
			report, err := service.Report(companyID, sale.ReportFilter{Product: "Acqua"})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TotalRevenue).To(BeNumerically("~", 3.0, 1e-9))
			Expect(report.Receipts).To(Equal(int64(2)))
		})

		It("should give an empty report when nothing matches", func() {
			report, err := service.Report(companyID, sale.ReportFilter{From: "2030-01-01"})
			Expect(err).NotTo(HaveOccurred())
			Expect(report.TotalRevenue).To(BeZero())
			Expect(report.Receipts).To(BeZero())
			Expect(report.Trend).To(BeEmpty())
			Expect(report.TopProducts).To(BeEmpty())
		})

		It("should reject a malformed date", func() {
			_, err := service.Report(companyID, sale.ReportFilter{From: "03/01/2026"})
			Expect(err).To(BeAssignableToTypeOf(sale.ValidationError{}))
		})
	})
})
