package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"cic/identity-portal/internal/api"
	"cic/identity-portal/internal/config"
	"cic/identity-portal/internal/httppipe"
	"cic/identity-portal/internal/platform/privacylog"
	"cic/identity-portal/internal/session"
)

// appContext wires config, session state and the dispatch pipeline for
// one command invocation.
type appContext struct {
	cfg       config.Config
	endpoints config.Endpoints
	store     *session.Store
	pipe      *httppipe.Client
	client    *api.Client
	jsonOut   bool
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		jsonOut    bool
	)

	app := &appContext{}

	cmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Identity server self-service and management portal CLI",
		Long: `portalctl talks to an identity server's management, SCIM and
self-service APIs through one session-aware request pipeline. Sign in
once with "portalctl login"; every other command reuses the stored
session until the server or the classifier ends it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(logLevel)
			built, err := buildAppContext(configPath, jsonOut)
			if err != nil {
				return err
			}
			*app = *built
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print raw JSON payloads")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("portalctl version=%s commit=%s build_date=%s\n", version, commit, buildDate)
		},
	})

	cmd.AddCommand(loginCmd(app))
	cmd.AddCommand(logoutCmd(app))
	cmd.AddCommand(appsCmd(app))
	cmd.AddCommand(idpsCmd(app))
	cmd.AddCommand(claimsCmd(app))
	cmd.AddCommand(usersCmd(app))
	cmd.AddCommand(groupsCmd(app))
	cmd.AddCommand(meCmd(app))
	return cmd
}

func setupLogging(level string) {
	lvl := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	base := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(privacylog.WrapHandler(base)))
}

func buildAppContext(configPath string, jsonOut bool) (*appContext, error) {
	cfg := config.LoadFromPath(configPath)

	store := session.NewStore()
	if securePathConfigured(cfg) {
		if err := store.Load(cfg.SessionStatePath, cfg.SessionSecret); err != nil {
			return nil, fmt.Errorf("load session state: %w", err)
		}
	}

	opts := []httppipe.Option{
		httppipe.WithNavigator(navigator(cfg, store)),
		httppipe.WithMetrics(httppipe.NewMetrics(prometheus.NewRegistry())),
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, httppipe.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}
	pipe := httppipe.New(store, opts...)
	endpoints := config.ResolveEndpoints(cfg)

	return &appContext{
		cfg:       cfg,
		endpoints: endpoints,
		store:     store,
		pipe:      pipe,
		client:    api.NewClient(pipe, endpoints, cfg.ClientHost, store),
		jsonOut:   jsonOut,
	}, nil
}

func securePathConfigured(cfg config.Config) bool {
	return cfg.SessionStatePath != "" && cfg.SessionSecret != ""
}

// navigator is the shell-side reaction to classified session errors:
// transition the lifecycle, persist it, tell the user where they ended
// up.
func navigator(cfg config.Config, store *session.Store) httppipe.NavigateFunc {
	return func(intent httppipe.NavigationIntent) {
		var path string
		switch intent {
		case httppipe.NavigateLogout:
			store.MarkLoggedOut()
			path = cfg.LogoutPath
		case httppipe.NavigateLoginError:
			store.MarkLoginError()
			path = cfg.LoginErrorPath
		default:
			return
		}
		if securePathConfigured(cfg) {
			_ = store.Save(cfg.SessionStatePath, cfg.SessionSecret)
		}
		fmt.Fprintf(os.Stderr, "Session ended; continue at %s%s and sign in again.\n", cfg.ClientHost, path)
	}
}

func (app *appContext) saveSession() error {
	if !securePathConfigured(app.cfg) {
		return nil
	}
	return app.store.Save(app.cfg.SessionStatePath, app.cfg.SessionSecret)
}

// printResult renders a payload as JSON when --json is set, otherwise
// hands off to the human-readable printer.
func (app *appContext) printResult(v any, human func()) error {
	if app.jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
	human()
	return nil
}
