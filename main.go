// ABOUTME: Entry point for the CraveKind API server
// ABOUTME: Wires config, store, mailer, seed data, and the HTTP surface
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/cravekind/backend/auth"
	"github.com/cravekind/backend/config"
	"github.com/cravekind/backend/db"
	"github.com/cravekind/backend/mail"
	"github.com/cravekind/backend/seed"
	"github.com/cravekind/backend/web"
)

func main() {
	seedOnly := flag.Bool("seed", false, "Seed starter data and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.DBPath == "" {
		log.Fatal("DATABASE_PATH is required")
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.SeedOnStart || *seedOnly {
		if err := seed.All(database); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}
	if *seedOnly {
		return
	}

	mailer := mail.New(mail.Config{
		SMTPServer: cfg.SMTPServer,
		SMTPPort:   cfg.SMTPPort,
		Username:   cfg.SMTPUser,
		Password:   cfg.SMTPPass,
		FromEmail:  cfg.FromEmail,
		FromName:   cfg.FromName,
		AdminEmail: cfg.AdminEmail,
	})

	server := web.NewServer(database, mailer, auth.NewJWT(cfg.JWTSecret))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.ListenAddr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("Shutting down on %s", sig)
	case err := <-errCh:
		log.Fatalf("Server error: %v", err)
	}
}
