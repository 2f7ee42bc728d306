package main

import (
	"log"
	"net/http"
	"os"

	"game-night/internal/config"
	"game-night/internal/db"
	"game-night/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Printf("running without persistence: %v", err)
		conn = nil
	} else {
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		if err := db.Tune(conn, cfg); err != nil {
			log.Printf("db pool tuning failed: %v", err)
		}
	}

	srv := server.New(conn, cfg)
	if err := srv.RestoreNights(); err != nil {
		log.Printf("restore nights failed: %v", err)
	}
	srv.EnsureDefaultNight()

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}
	log.Printf("game-night server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
