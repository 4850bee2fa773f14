package database

import (
	"fmt"
	"log"

	config "github.com/meePwn1/maqsad-back/configs"
	"github.com/meePwn1/maqsad-back/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.DeleteReason{},
		&models.PaymentMethod{},
		&models.Group{},
		&models.Course{},
		&models.Student{},
		&models.Payment{},
		&models.Refund{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FirstName: config.ConfigOr("ADMIN_FIRST_NAME", "Admin"),
		LastName:  config.ConfigOr("ADMIN_LAST_NAME", "Admin"),
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Role:      models.RoleAdmin,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedReferenceData inserts the delete-reason and payment-method lookup rows
// once; existing rows are left untouched.
func SeedReferenceData() {
	var reasonCount int64
	if err := DB.Model(&models.DeleteReason{}).Count(&reasonCount).Error; err != nil {
		log.Fatalf("🔥 Failed to check delete reasons: %v", err)
		return
	}
	if reasonCount == 0 {
		reasons := []models.DeleteReason{
			{NameRu: "Отказ от обучения", NameUz: "O'qishdan voz kechish"},
			{NameRu: "Окончил обучение", NameUz: "O'qishni tugatdi"},
			{NameRu: "Не закрыл долг", NameUz: "Qarzini yopmadi"},
			{NameRu: "Нарушение оферты", NameUz: "Oferta shartlarini buzish"},
			{NameRu: "Передал другому", NameUz: "Boshqaga topshirdi"},
		}
		if err := DB.Create(&reasons).Error; err != nil {
			log.Fatalf("🔥 Failed to seed delete reasons: %v", err)
			return
		}
	}

	var methodCount int64
	if err := DB.Model(&models.PaymentMethod{}).Count(&methodCount).Error; err != nil {
		log.Fatalf("🔥 Failed to check payment methods: %v", err)
		return
	}
	if methodCount == 0 {
		methods := []models.PaymentMethod{
			{NameRu: "Наличные", NameUz: "Naqd pul"},
			{NameRu: "Карта P2P", NameUz: "Karta P2P"},
			{NameRu: "Внутренная рассрочка (2)", NameUz: "Ichki muddatli to'lov (2)"},
			{NameRu: "Внутренная рассрочка (3)", NameUz: "Ichki muddatli to'lov (3)"},
			{NameRu: "Uzum Pay", NameUz: "Uzum Pay"},
			{NameRu: "Uzum Nasiya", NameUz: "Uzum Nasiya"},
			{NameRu: "Anorbank", NameUz: "Anorbank"},
			{NameRu: "Alif Nasiya", NameUz: "Alif Nasiya"},
			{NameRu: "Click", NameUz: "Click"},
			{NameRu: "Перечисление", NameUz: "Pul o'tkazish"},
			{NameRu: "Payme", NameUz: "Payme"},
		}
		if err := DB.Create(&methods).Error; err != nil {
			log.Fatalf("🔥 Failed to seed payment methods: %v", err)
			return
		}
	}

	log.Println("✅ Reference data seeded successfully")
}
