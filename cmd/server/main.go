package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	emailPkg "localserve/internal/adapters/email"
	web "localserve/internal/adapters/http"
	sheetPkg "localserve/internal/adapters/sheet"
	smsPkg "localserve/internal/adapters/sms"
	"localserve/internal/adapters/storage"
	accountStore "localserve/internal/adapters/storage/account"
	bookingStore "localserve/internal/adapters/storage/booking"
	listingStore "localserve/internal/adapters/storage/listing"
	"localserve/internal/application/orchestrators"
	"localserve/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on OS environment variables")
	}

	// Missing store credentials are the one startup-fatal condition.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db, err := storage.Open(cfg.DB)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Idempotent schema setup, exactly once, before serving traffic.
	ctx := context.Background()
	if err := storage.InitSchema(ctx, db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}
	log.Println("Database initialized successfully!")

	admins := accountStore.NewAdminsStore(db)
	stores := &web.Stores{
		Users:    accountStore.NewUsersStore(db),
		Admins:   admins,
		Bookings: bookingStore.NewPostgresStore(db),
		Listings: listingStore.NewPostgresStore(db),
	}

	// Seed the first admin account if configured and the table is empty.
	seedDeps := orchestrators.SeedAdminDeps{AdminStore: admins, Now: time.Now}
	if err := orchestrators.ExecuteSeedAdmin(ctx, seedDeps, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	notifiers := web.Notifiers{
		Sheet: selectSheet(cfg),
		Notify: orchestrators.NotifyDeps{
			Email:   selectEmail(cfg),
			EmailTo: cfg.Email.NotifyTo,
			SMS:     selectSMS(cfg),
			SMSTo:   cfg.SMS.NotifyTo,
		},
	}

	router := web.NewRouter(cfg, stores, storage.NewHealthChecker(db), notifiers)

	log.Printf("localserve %s starting on %s (env=%s)", version, cfg.Addr, cfg.Env)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// selectSheet wires the spreadsheet side channel, disabled when its
// configuration set is incomplete.
func selectSheet(cfg config.App) orchestrators.SheetAppenderForSubmit {
	if cfg.Sheet.Complete() {
		slog.Info("sheet_configured", "spreadsheet", cfg.Sheet.SpreadsheetID)
		return sheetPkg.NewGoogleAppender(cfg.Sheet.CredentialsFile, cfg.Sheet.SpreadsheetID)
	}
	slog.Info("sheet_disabled", "reason", "not_configured")
	return sheetPkg.NewDisabledAppender()
}

// selectEmail wires the email sub-notifier: Resend when a key is present,
// plain SMTP when that set is complete, disabled otherwise.
func selectEmail(cfg config.App) orchestrators.EmailSenderForNotify {
	if cfg.Email.NotifyTo == "" {
		slog.Info("email_disabled", "reason", "no_notify_address")
		return emailPkg.NewDisabledSender()
	}
	if cfg.Email.ResendKey != "" {
		slog.Info("email_configured", "provider", "resend")
		return emailPkg.NewResendSender(cfg.Email.ResendKey, cfg.Email.From)
	}
	if cfg.SMTP.Complete() {
		slog.Info("email_configured", "provider", "smtp", "host", cfg.SMTP.Host)
		return emailPkg.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}
	slog.Info("email_disabled", "reason", "not_configured")
	return emailPkg.NewDisabledSender()
}

// selectSMS wires the SMS sub-notifier.
func selectSMS(cfg config.App) orchestrators.SMSSenderForNotify {
	if cfg.SMS.Complete() {
		slog.Info("sms_configured", "provider", "twilio")
		return smsPkg.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.From)
	}
	slog.Info("sms_disabled", "reason", "not_configured")
	return smsPkg.NewDisabledSender()
}
