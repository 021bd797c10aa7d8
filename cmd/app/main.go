package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atvirokodosprendimai/recruitdash/internal/app"
	"github.com/urfave/cli/v3"
)

func main() {
	dbFlag := &cli.StringFlag{
		Name:    "db-path",
		Value:   "./recruitdash.sqlite",
		Sources: cli.EnvVars("RECRUITDASH_DB_PATH"),
		Usage:   "SQLite audit database file path",
	}

	cmd := &cli.Command{
		Name:           "recruitdash",
		Usage:          "Recruiting audit dashboard over imported character data",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the dashboard HTTP server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":8080",
						Sources: cli.EnvVars("RECRUITDASH_ADDR"),
						Usage:   "HTTP listen address",
					},
					dbFlag,
				},
				Action: serve,
			},
			{
				Name:  "import",
				Usage: "Import an audit snapshot file into the database",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Required: true,
						Usage:    "Snapshot JSON file to import",
					},
					dbFlag,
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := app.ImportSnapshot(ctx, c.String("db-path"), c.String("file")); err != nil {
						return err
					}
					log.Printf("imported %s", c.String("file"))
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(ctx context.Context, c *cli.Command) error {
	cfg := app.Config{
		Addr:   c.String("addr"),
		DBPath: c.String("db-path"),
	}

	server, closer, err := app.NewServer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	defer func() {
		if closeErr := closer.Close(); closeErr != nil {
			log.Printf("close resources: %v", closeErr)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case sig := <-sigCh:
		log.Printf("received signal %s", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
