package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/zitadel/endsession/example/server/config"
	"github.com/zitadel/endsession/example/server/exampleop"
	"github.com/zitadel/endsession/example/server/storage"
	httphelper "github.com/zitadel/endsession/pkg/http"
	"github.com/zitadel/endsession/pkg/op"
	"github.com/zitadel/endsession/pkg/store"
	"github.com/zitadel/endsession/pkg/store/memory"
	"github.com/zitadel/endsession/pkg/store/redis"
)

const sessionLifetime = 12 * time.Hour

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "endsession",
		Short: "Example OpenID Provider end_session endpoint with logout page",
		PersistentPreRun: func(*cobra.Command, []string) {
			// a missing .env file is fine
			_ = godotenv.Load(".env")
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path of the YAML config file (env CONFIG_FILE)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the end_session endpoint and logout page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			}))
			return run(cmd.Context(), cfg, logger)
		},
	}

	genKeys := &cobra.Command{
		Use:   "keys",
		Short: "Print a random cookie hash and block key",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "COOKIE_HASH_KEY=%s\nCOOKIE_BLOCK_KEY=%s\n",
				base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(32))[:32],
				base64.RawURLEncoding.EncodeToString(securecookie.GenerateRandomKey(16))[:16],
			)
		},
	}

	root.AddCommand(serve, genKeys)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	var hashKey, blockKey []byte
	if cfg.CookieHashKey != "" {
		hashKey = []byte(cfg.CookieHashKey)
	}
	if cfg.CookieBlockKey != "" {
		blockKey = []byte(cfg.CookieBlockKey)
	}
	if len(hashKey) == 0 {
		logger.Warn("no cookie keys configured, using random keys")
		hashKey, blockKey = securecookie.GenerateRandomKey(32), securecookie.GenerateRandomKey(16)
	}

	messages, readyChecks, closeStore, err := newStore(cfg, hashKey, blockKey)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	instrumented, err := store.Instrument(messages, registry)
	if err != nil {
		return err
	}

	clients := storage.NewClients()
	for _, c := range cfg.Clients {
		clients.Register(storage.NewClient(c.ID, c.PostLogoutRedirectURIs...).
			WithPostLogoutRedirectURIGlobs(c.PostLogoutRedirectURIGlobs...))
	}
	cookieOpts := []httphelper.CookieHandlerOpt{
		httphelper.WithPath("/"),
		httphelper.WithMaxAge(int(sessionLifetime.Seconds())),
		// end_session is reached by a cross-site top level navigation
		httphelper.WithSameSite(http.SameSiteLaxMode),
	}
	if !strings.HasPrefix(cfg.Origin, "https:") {
		cookieOpts = append(cookieOpts, httphelper.WithUnsecure())
	}
	sessions := storage.NewSessions(httphelper.NewCookieHandler(hashKey, blockKey, cookieOpts...))

	handler, err := exampleop.SetupServer(cfg, instrumented, clients, sessions, registry, logger, readyChecks...)
	if err != nil {
		return err
	}
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	origin := cfg.Origin
	if origin == "" {
		origin = "http://localhost:" + cfg.Port
	}
	logger.Info("server listening",
		"addr", server.Addr,
		"store", cfg.Store.Kind,
		"end_session_endpoint", op.DefaultEndSessionEndpoint.Absolute(origin, cfg.BasePath),
	)
	// the store is closed after in-flight requests are drained
	if err := httphelper.ListenAndServe(ctx, server, closeStore); err != nil {
		logger.Error("server terminated", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

func newStore(cfg *config.Config, hashKey, blockKey []byte) (op.MessageStore, []op.ReadyCheck, func() error, error) {
	lifetime := cfg.UserInteraction.MessageLifetime
	switch cfg.Store.Kind {
	case config.StoreRedis:
		codec, err := store.NewCodec(hashKey, blockKey, lifetime)
		if err != nil {
			return nil, nil, nil, err
		}
		var opts []redis.Option
		if cfg.Store.Redis.Prefix != "" {
			opts = append(opts, redis.WithKeyPrefix(cfg.Store.Redis.Prefix))
		}
		s := redis.NewFromAddr(cfg.Store.Redis.Addr, cfg.Store.Redis.DB, codec, lifetime, opts...)
		ping := func(r *http.Request) error {
			return s.Ping(r.Context())
		}
		return s, []op.ReadyCheck{ping}, s.Close, nil
	default:
		s := memory.New(lifetime, memory.WithMaxEntries(cfg.Store.MaxEntries))
		return s, nil, s.Close, nil
	}
}
