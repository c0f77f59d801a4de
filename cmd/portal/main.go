package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-xray-sdk-go/xray"

	"tutorportal/config"
	_ "tutorportal/docs"
	"tutorportal/internal/adapters/auth"
	"tutorportal/internal/adapters/email"
	"tutorportal/internal/adapters/tutorapi"
	httpdelivery "tutorportal/internal/delivery/http"
	"tutorportal/internal/delivery/http/controllers"
	"tutorportal/internal/delivery/http/middleware"
	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title Tutor Portal API
// @version 1.0
// @description JSON and calendar endpoints of the tutor portal.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	if cfg.XRayEnabled {
		if err := xray.Configure(xray.Config{ServiceVersion: "1.0.0"}); err != nil {
			logger.Error("failed to configure x-ray", "err", err)
			os.Exit(1)
		}
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	if cfg.XRayEnabled {
		httpClient = xray.Client(httpClient)
	}

	apiOpts := []tutorapi.Option{tutorapi.WithLocation(cfg.Location)}
	if cfg.APISigningKey != "" {
		apiOpts = append(apiOpts, tutorapi.WithTokenIssuer(auth.NewJWTIssuer(cfg.APISigningKey), cfg.APITokenTTL))
	} else {
		logger.Warn("API_SIGNING_KEY is not set; tutor API requests are unauthenticated")
	}
	api, err := tutorapi.NewClient(cfg.APIBaseURL, httpClient, apiOpts...)
	if err != nil {
		logger.Error("failed to create tutor api client", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFrom,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipTLS,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(cfg.Location), logger)

	pages, err := views.NewRenderer(cfg.Location, logger)
	if err != nil {
		logger.Error("failed to parse page templates", "err", err)
		os.Exit(1)
	}

	studentService := services.NewStudentService(api, cfg.RequestTimeout)
	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Dashboard: controllers.NewDashboardController(logger, services.NewDashboardService(api, cfg.RequestTimeout), pages),
		Students:  controllers.NewStudentController(logger, studentService, pages),
		Resources: controllers.NewResourceController(logger, services.NewResourceService(api, cfg.RequestTimeout), pages),
		Invoices:  controllers.NewInvoiceController(logger, services.NewInvoiceService(api, cfg.RequestTimeout), studentService, pages, cfg.StripePublishableKey),
		Schedule:  controllers.NewScheduleController(logger, api, emailService, cfg.BookingNotifyEmail, pages, cfg.Location, cfg.WeekStart),
	})

	var handler http.Handler = router
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Tracing(cfg.XRayEnabled, config.ServiceName, handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
