package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// App holds all process configuration, read from the environment.
// Database credentials are the only hard requirement; every side channel
// is optional and simply disabled when its configuration set is incomplete.
type App struct {
	Addr    string `envconfig:"ADDR" default:":8080"`
	Env     string `envconfig:"APP_ENV" default:"development"`
	CSRFKey string `envconfig:"CSRF_KEY"`

	DB    Database
	Admin AdminSeed
	Sheet Sheet
	SMTP  SMTP
	Email Email
	SMS   SMS
}

// Database holds relational store connection parameters.
type Database struct {
	Host     string `envconfig:"DB_HOST" required:"true"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	Name     string `envconfig:"DB_NAME" required:"true"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// DSN builds a Postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AdminSeed holds first-run admin credentials. Both must be set for the
// seed to run.
type AdminSeed struct {
	Email    string `envconfig:"ADMIN_SEED_EMAIL"`
	Password string `envconfig:"ADMIN_SEED_PASSWORD"`
}

// Sheet holds Google Sheets append configuration.
type Sheet struct {
	CredentialsFile string `envconfig:"GOOGLE_SHEETS_CREDENTIALS"`
	SpreadsheetID   string `envconfig:"GOOGLE_SHEET_ID"`
}

// Complete reports whether the sheet collaborator is fully configured.
func (s Sheet) Complete() bool {
	return s.CredentialsFile != "" && s.SpreadsheetID != ""
}

// SMTP holds outbound mail server configuration.
type SMTP struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT"`
	User     string `envconfig:"SMTP_USER"`
	Password string `envconfig:"SMTP_PASS"`
	From     string `envconfig:"SMTP_FROM"`
}

// Complete reports whether the SMTP collaborator is fully configured.
func (s SMTP) Complete() bool {
	return s.Host != "" && s.Port != 0 && s.User != "" && s.Password != "" && s.From != ""
}

// Email holds provider-independent notification settings. ResendKey selects
// the Resend API sender over plain SMTP when present.
type Email struct {
	NotifyTo  string `envconfig:"NOTIFY_EMAIL"`
	ResendKey string `envconfig:"RESEND_API_KEY"`
	From      string `envconfig:"RESEND_FROM" default:"LocalServe <noreply@localserve.example>"`
}

// SMS holds Twilio configuration.
type SMS struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	From       string `envconfig:"TWILIO_FROM"`
	NotifyTo   string `envconfig:"NOTIFY_MOBILE"`
}

// Complete reports whether the SMS collaborator is fully configured.
func (s SMS) Complete() bool {
	return s.AccountSID != "" && s.AuthToken != "" && s.From != "" && s.NotifyTo != ""
}

// Load reads configuration from the environment. Missing required database
// values make this fail; the caller treats that as startup-fatal.
func Load() (App, error) {
	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, err
	}
	return c, nil
}
