package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lazypower/nexus/internal/engine"
	"github.com/lazypower/nexus/internal/llm"
	"github.com/lazypower/nexus/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	state, kv, err := openState(cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	var enricher *engine.Enricher
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM not configured (%v), ai routes disabled\n", err)
	} else {
		enricher = engine.New(state, llmClient, time.Duration(cfg.LLM.Timeout)*time.Second)
		fmt.Fprintf(os.Stderr, "  llm: %s\n", cfg.LLM.Provider)
	}

	srv := server.New(state, enricher, VersionString(), cfg.Storage.Driver)
	addr := cfg.ListenAddr()

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		fmt.Fprintf(os.Stderr, "nexus serving on %s\n", addr)
		fmt.Fprintf(os.Stderr, "  store: %s\n", cfg.Storage.Driver)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-done
	fmt.Fprintln(os.Stderr, "\nshutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return httpServer.Shutdown(ctx)
}
