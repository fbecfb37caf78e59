package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/learnhub/internal/api"
	"github.com/ziadkadry99/learnhub/internal/assistant"
	"github.com/ziadkadry99/learnhub/internal/config"
	"github.com/ziadkadry99/learnhub/internal/diagnostics"
	"github.com/ziadkadry99/learnhub/internal/logger"
	"github.com/ziadkadry99/learnhub/internal/overlay"
	"github.com/ziadkadry99/learnhub/internal/server"
	"github.com/ziadkadry99/learnhub/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the LearnHub web server",
	Long:  `Starts the HTTP server with the site pages, the JSON API, the learning assistant websocket and the diagnostics endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	data, err := loadContent(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	diag, err := openDiagnostics(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer diag.Close()

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		AllowAll: cfg.Server.AllowAllOrigins,
	}, log)

	if err := registerAllRoutes(srv, cfg, data, diag, log); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown", "error", err)
		}
	}()

	log.Info("learnhub starting",
		"version", Version,
		"port", cfg.Server.Port,
		"courses", data.catalog.Len(),
		"lesson_courses", len(data.lessons.IDs()),
		"client_navigation", cfg.Site.ClientNavigation,
		"diagnostics", cfg.Diagnostics.Enabled,
	)
	fmt.Fprintf(os.Stderr, "LearnHub running at http://localhost:%d\n", cfg.Server.Port)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// registerAllRoutes wires every feature onto the server's router. The page
// routes go last because they own the catch-all.
func registerAllRoutes(srv *server.Server, cfg *config.Config, data *content, diag *diagnosticsHandle, log *logger.Logger) error {
	r := srv.Router()
	responder := assistant.Canned{}

	// Diagnostics
	if diag.store != nil {
		diagnostics.RegisterRoutes(r, diag.store)
	}

	// JSON API
	a, err := api.New(data.catalog, data.lessons, responder, diag.recorder, log.With("component", "api"))
	if err != nil {
		return fmt.Errorf("creating api: %w", err)
	}
	api.RegisterRoutes(r, a)

	// Learning assistant overlay
	overlay.RegisterRoutes(r, overlay.NewHandler(overlay.HandlerOptions{
		Clock:     clockwork.NewRealClock(),
		Responder: responder,
		Config: overlay.Config{
			Debounce:      cfg.Assistant.Debounce(),
			MinChars:      cfg.Assistant.MinSelectionChars,
			MarginRight:   cfg.Assistant.MarginRight,
			MarginBottom:  cfg.Assistant.MarginBottom,
			ResponseDelay: cfg.Assistant.ResponseDelay(),
			FollowUpDelay: cfg.Assistant.FollowUpDelay(),
		},
		Recorder:        diag.recorder,
		Logger:          log.With("component", "overlay"),
		AllowAllOrigins: cfg.Server.AllowAllOrigins,
	}))

	// Pages
	renderer, err := web.NewRenderer(web.RendererOptions{
		Site: web.SiteInfo{
			Name:         cfg.Site.Name,
			DemoVideoURL: cfg.Site.DemoVideoURL,
		},
		Navigator: web.NewNavigator(cfg.Site.ClientNavigation),
		Overlay:   true,
	})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	web.RegisterRoutes(r, web.NewPages(renderer, data.catalog, data.lessons, diag.recorder, log.With("component", "web")))

	return nil
}
