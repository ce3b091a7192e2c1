package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/retail-management/internal/auth"
	"github.com/frahmantamala/retail-management/internal/company"
	categoryDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/category"
	companyDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/company"
	productDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/product"
	userDatamodel "github.com/frahmantamala/retail-management/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		if clearData {
			for _, table := range []string{"sale_items", "sales", "products", "categories", "company_members", "companies", "users"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("existing data cleared")
		}

		demoEmail := "demo@negozio.it"

		var existing userDatamodel.User
		if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
			fmt.Println("demo user already exists; nothing to do")
			return
		}

		salt, err := auth.GenerateSalt()
		if err != nil {
			log.Fatalf("failed to generate salt: %v", err)
		}
		demoUser := &userDatamodel.User{
			Email:          demoEmail,
			FirstName:      "Demo",
			LastName:       "Negozio",
			DateOfBirth:    "1990-01-01",
			Salt:           salt,
			PasswordDigest: auth.HashPassword(salt, "password"),
		}
		if err := db.Create(demoUser).Error; err != nil {
			log.Fatalf("failed to create demo user: %v", err)
		}

		code, err := company.NewInviteCode()
		if err != nil {
			log.Fatalf("failed to generate invite code: %v", err)
		}
		shop := &companyDatamodel.Company{
			Name:       "Demo Shop",
			InviteCode: code,
			OwnerEmail: demoEmail,
		}
		if err := db.Create(shop).Error; err != nil {
			log.Fatalf("failed to create demo company: %v", err)
		}
		member := &companyDatamodel.Member{CompanyID: shop.ID, UserID: demoUser.ID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error; err != nil {
			log.Fatalf("failed to add demo membership: %v", err)
		}

		categories := []string{"Bevande", "Snack", "Gastronomia"}
		for _, name := range categories {
			c := &categoryDatamodel.Category{CompanyID: shop.ID, Name: name}
			if err := db.Create(c).Error; err != nil {
				log.Fatalf("failed to create category %s: %v", name, err)
			}
		}

		products := []productDatamodel.Product{
			{CompanyID: shop.ID, Name: "Caffè", Category: "Bevande", Price: 1.20},
			{CompanyID: shop.ID, Name: "Acqua", Category: "Bevande", Price: 0.80},
			{CompanyID: shop.ID, Name: "Patatine", Category: "Snack", Price: 2.50},
		}
		for i := range products {
			if err := db.Create(&products[i]).Error; err != nil {
				log.Fatalf("failed to create product %s: %v", products[i].Name, err)
			}
		}

		fmt.Printf("seeded demo user %s (password: password), company %q with invite code %s\n",
			demoEmail, shop.Name, shop.InviteCode)
	},
}
