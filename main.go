package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/ecetuna/finfeed/internal/api"
	"github.com/ecetuna/finfeed/internal/chart"
	"github.com/ecetuna/finfeed/internal/config"
	"github.com/ecetuna/finfeed/internal/poll"
	"github.com/ecetuna/finfeed/internal/snapshot"
	"github.com/ecetuna/finfeed/internal/state"
	"github.com/ecetuna/finfeed/internal/web"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A local .env is convenient in development; FINFEED_* variables set
	// there end up overriding the config file through viper.
	godotenv.Load()

	cfg, err := config.ReadConfig()
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to read configuration")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	sessionKey := cfg.SessionKey
	if sessionKey == "" {
		zero.Warn().Msg("session_key is not set, using the development key")
		sessionKey = "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4"
	}
	manager := scs.NewCookieManager(sessionKey)

	backend := api.New(cfg.Backend, &http.Client{Timeout: 30 * time.Second})
	zero.Info().Stringer("backend", cfg.Backend).Msg("proxying to backend")

	st := &state.State{
		Config:    cfg,
		Backend:   backend,
		Snapshots: snapshot.NewStore(),
	}

	scheduler := poll.NewScheduler(context.Background())
	poll.StartBackground(scheduler, st)
	defer scheduler.Stop()

	charts := chart.NewController(backend, chart.NewHeadlessFactory())

	handler := web.New(st, charts, manager)
	router := chi.NewRouter()
	handler.Mount(router)

	s := &http.Server{
		Addr:    cfg.Listen,
		Handler: router,
	}

	zero.Info().Str("addr", cfg.Listen).Msg("started server")
	if err := s.ListenAndServe(); err != nil {
		zero.Fatal().Err(err).Msg("server stopped")
	}
}
