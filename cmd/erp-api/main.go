package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	apporg "github.com/vanphubinh/erp-api/internal/application/organization"
	appparty "github.com/vanphubinh/erp-api/internal/application/party"
	"github.com/vanphubinh/erp-api/internal/config"
	httprouter "github.com/vanphubinh/erp-api/internal/infrastructure/http"
	"github.com/vanphubinh/erp-api/internal/infrastructure/http/handlers"
	"github.com/vanphubinh/erp-api/internal/infrastructure/http/middleware"
	"github.com/vanphubinh/erp-api/internal/infrastructure/persistence/postgres"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	healthHandler := handlers.NewHealthHandler(pool)

	orgRepo := postgres.NewOrganizationRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)

	orgsHandler := handlers.NewOrganizationsHandler(handlers.OrganizationUseCases{
		Create:     apporg.NewCreateOrganization(orgRepo),
		Get:        apporg.NewGetOrganization(orgRepo),
		List:       apporg.NewListOrganizations(orgRepo),
		Update:     apporg.NewUpdateOrganization(orgRepo),
		Delete:     apporg.NewDeleteOrganization(orgRepo),
		Activate:   apporg.NewActivateOrganization(orgRepo),
		Deactivate: apporg.NewDeactivateOrganization(orgRepo),
	}, cfg.API.MaxPageSize, log)

	partiesHandler := handlers.NewPartiesHandler(handlers.PartyUseCases{
		Create:     appparty.NewCreateParty(partyRepo),
		Get:        appparty.NewGetParty(partyRepo),
		List:       appparty.NewListParties(partyRepo),
		Update:     appparty.NewUpdateParty(partyRepo),
		Delete:     appparty.NewDeleteParty(partyRepo),
		Activate:   appparty.NewActivateParty(partyRepo),
		Deactivate: appparty.NewDeactivateParty(partyRepo),
	}, cfg.API.MaxPageSize, log)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.API.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.IsDevelopment()))
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil)

	router := httprouter.NewRouter(httprouter.RouterConfig{
		OrganizationsHandler: orgsHandler,
		PartiesHandler:       partiesHandler,
		HealthHandler:        healthHandler,
		Log:                  log,
		Secure:               secureMiddleware,
		CORS:                 corsMiddleware,
		IPRateLimit:          ipLimit,
		Metrics:              true,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
