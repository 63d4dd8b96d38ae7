package api

import (
	"log"

	"github.com/SundayYogurt/signup_service/config"
	"github.com/SundayYogurt/signup_service/infra/queue"
	"github.com/SundayYogurt/signup_service/internal/api/rest/handlers"
	"github.com/SundayYogurt/signup_service/internal/domain"
	"github.com/SundayYogurt/signup_service/internal/interfaces"
	"github.com/SundayYogurt/signup_service/internal/mailer"
	"github.com/SundayYogurt/signup_service/internal/repository"
	"github.com/SundayYogurt/signup_service/internal/services"
	"github.com/SundayYogurt/signup_service/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	// ---------- Store ----------
	var userRepo repository.UserRepository
	if cfg.DatabaseDSN != "" {
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DatabaseDSN,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
		if err != nil {
			log.Fatalf("database connection error: %v", err)
		}
		log.Println("database connected")

		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatalf("migration error: %v", err)
		}
		log.Println("migration successful")

		userRepo = repository.NewUserRepository(db)
	} else {
		log.Println("DATABASE_DSN not set - using in-memory user store")
		userRepo = repository.NewInMemoryUserRepository()
	}

	if cfg.DBReset {
		if err := userRepo.DeleteAllUsers(); err != nil {
			log.Fatalf("db reset error: %v", err)
		}
		log.Println("user store reset")
	}

	// ---------- Mail ----------
	var m interfaces.Mailer
	if cfg.MailProvider == "smtp" {
		m = mailer.NewSMTPMailer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
			cfg.MailFrom,
			cfg.MailFromName,
			cfg.MailSubject,
			cfg.ActivationBaseURL,
		)
	} else {
		log.Println("MAIL_PROVIDER not smtp - using stub mail transport")
		m = mailer.NewStub()
	}

	// ---------- Messaging ----------
	var producer interfaces.ProducerHandler
	if cfg.KafkaBroker != "" {
		producer = queue.NewProducer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
		)
	}

	// ---------- Service ----------
	userSvc := services.NewUserService(userRepo, m, producer)
	validator := validation.NewValidator(userRepo)

	// ---------- Handler ----------
	userHandler := handlers.NewUserHandler(userSvc, validator)
	userHandler.SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	if addr == "" {
		addr = ":3000"
	}
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
