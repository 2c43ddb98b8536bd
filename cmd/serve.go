package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brogergvhs/mangaso/internal/config"
	"github.com/brogergvhs/mangaso/internal/proxy"
	"github.com/brogergvhs/mangaso/internal/ui"
	"github.com/brogergvhs/mangaso/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagListen     string
	flagUpstream   string
	flagUserAgent  string
	flagCloudflare bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the edge relay exposing /api/search, /api/detail and /api/hot",
		RunE:  runServe,
	}

	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (e.g. :8787)")
	serveCmd.Flags().StringVar(&flagUpstream, "upstream", "", "upstream origin (default http://manwaso.cc)")
	serveCmd.Flags().StringVar(&flagUserAgent, "user-agent", "", "override the upstream User-Agent")
	serveCmd.Flags().BoolVar(&flagCloudflare, "cloudflare-bypass", false, "wrap the upstream transport with the Cloudflare bypass")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := loadConfig(config.Options{
		Listen:           flagListen,
		Upstream:         flagUpstream,
		UserAgent:        flagUserAgent,
		CloudflareBypass: flagCloudflare,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("Config file: %s\n", usedPath)

	client := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout,
		UserAgent:        util.PickUserAgent(cfg.UserAgent),
		Referer:          cfg.Upstream,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})

	relay := proxy.New(proxy.Options{
		Upstream: cfg.Upstream,
		Client:   client,
		Log:      logSvc,
	})

	server := &http.Server{
		Handler:           relay,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Listen, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	logSvc.Infof("Relaying %s -> %s\n", ln.Addr(), cfg.Upstream)

	if err := runRelay(ctx, server, ln, logSvc); err != nil {
		return err
	}

	stats := relay.Stats()
	fmt.Println()
	fmt.Println("Relay Summary:")
	fmt.Printf("Relayed:   %d\n", stats.Relayed.Load())
	fmt.Printf("Failed:    %d\n", stats.Failed.Load())
	fmt.Printf("Not found: %d\n", stats.NotFound.Load())
	fmt.Printf("Data:      %s\n", util.Human(stats.Bytes.Load()))
	fmt.Printf("Uptime:    %s\n", time.Since(start).Round(time.Second))

	return nil
}

// runRelay serves on ln until ctx is done. It returns only after Shutdown
// has drained in-flight relays.
func runRelay(ctx context.Context, server *http.Server, ln net.Listener, log proxy.Logger) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Debugf("shutting down relay\n")
		if err := server.Shutdown(context.Background()); err != nil {
			log.Errorf("erroneous shutdown: %v\n", err)
		}
	}()

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("relay stopped: %w", err)
	}

	<-done
	return nil
}
