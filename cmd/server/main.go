package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/database"
	"github.com/Prithwiraj731/Money-Miners/internal/mailer"
	"github.com/Prithwiraj731/Money-Miners/internal/middleware"
	"github.com/Prithwiraj731/Money-Miners/internal/routes"
	"github.com/Prithwiraj731/Money-Miners/internal/server"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	mail, mailMock := buildMailer(cfg, log)
	dispatcher := mailer.NewDispatcher(mail, log)

	var limiterStorage fiber.Storage
	if cfg.RedisURL != "" {
		storage, err := middleware.NewRedisStorage(cfg.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to redis")
		}
		limiterStorage = storage
	}

	app := server.New(routes.Deps{
		DB:             db,
		Cfg:            cfg,
		Mail:           dispatcher,
		MailMock:       mailMock,
		Log:            log,
		LimiterStorage: limiterStorage,
	})

	go func() {
		log.Infof("starting server on :%s", cfg.AppPort)
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			log.WithError(err).Fatal("fiber.Listen error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("server shutdown failed")
	}

	// Drain queued notifications before closing the transport.
	dispatcher.Close()
	if err := mail.Close(); err != nil {
		log.WithError(err).Error("mail transport close failed")
	}

	if limiterStorage != nil {
		if err := limiterStorage.Close(); err != nil {
			log.WithError(err).Error("limiter storage close failed")
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// buildMailer picks the outbound transport from configuration:
// SendGrid API key first, SMTP credentials second, otherwise a
// log-only mock so OTP codes still show up in development.
func buildMailer(cfg *config.Config, log *logrus.Logger) (mailer.Mailer, bool) {
	if cfg.SendGridAPIKey != "" {
		m, err := mailer.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFrom)
		if err != nil {
			log.WithError(err).Fatal("failed to configure sendgrid mailer")
		}
		return m, false
	}

	if cfg.EmailUser != "" && cfg.EmailPass != "" {
		m, err := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.EmailUser, cfg.EmailPass, cfg.MailFrom)
		if err != nil {
			log.WithError(err).Fatal("failed to configure smtp mailer")
		}
		return m, false
	}

	log.Warn("no mail credentials configured, using mock mailer")
	return mailer.NewLogMailer(log), true
}
