package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// AgileCRM
	AgileCRMBaseURL string
	AgileCRMEmail   string
	AgileCRMAPIKey  string

	// Infra (vazio = desligado)
	DatabaseURL        string
	RabbitMQURL        string
	ExecutionRetention time.Duration

	// Alertas de atualização parcial
	MailHost     string
	MailPort     int
	MailUser     string
	MailPass     string
	MailFrom     string
	AlertEmailTo []string

	LogLevel   string
	TrustProxy bool
}

// Load lê o .env (se existir) e depois o ambiente.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getenv("PORT", "8080"),

		AgileCRMBaseURL: getenv("AGILECRM_BASE_URL", "https://n8nio.agilecrm.com/dev/"),
		AgileCRMEmail:   os.Getenv("AGILECRM_EMAIL"),
		AgileCRMAPIKey:  os.Getenv("AGILECRM_API_KEY"),

		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RabbitMQURL:        os.Getenv("RABBITMQ_URL"),
		ExecutionRetention: getduration("EXECUTION_RETENTION", 30*24*time.Hour),

		MailHost:     os.Getenv("MAIL_HOST"),
		MailPort:     getint("MAIL_PORT", 587),
		MailUser:     os.Getenv("MAIL_USER"),
		MailPass:     os.Getenv("MAIL_PASS"),
		MailFrom:     getenv("MAIL_FROM", "nao-responda@flow-nodes.local"),
		AlertEmailTo: getlist("ALERT_EMAIL_TO"),

		LogLevel:   getenv("LOG_LEVEL", "info"),
		TrustProxy: getbool("TRUST_PROXY"),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getint(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}

func getbool(k string) bool {
	b, _ := strconv.ParseBool(os.Getenv(k))
	return b
}

func getduration(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getlist(k string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(k), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
