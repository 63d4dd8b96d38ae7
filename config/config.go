package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DatabaseDSN string
	DBReset     bool

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	MailProvider      string
	SMTPHost          string
	SMTPPort          string
	SMTPUsername      string
	SMTPPassword      string
	MailFrom          string
	MailFromName      string
	MailSubject       string
	ActivationBaseURL string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: .env not loaded:", err)
		}
	}

	return Config{
		ServerPort:  os.Getenv("SERVER_PORT"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		DBReset:     os.Getenv("DB_RESET") == "true",

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		MailProvider:      os.Getenv("MAIL_PROVIDER"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		MailFrom:          os.Getenv("MAIL_FROM"),
		MailFromName:      os.Getenv("MAIL_FROM_NAME"),
		MailSubject:       os.Getenv("MAIL_SUBJECT"),
		ActivationBaseURL: os.Getenv("ACTIVATION_BASE_URL"),
	}
}
