package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "ifjourney/internal/adapter/http"
	"ifjourney/internal/adapter/memory"
	"ifjourney/internal/adapter/postgres"
	"ifjourney/internal/adapter/sqlite"
	"ifjourney/internal/app"
	"ifjourney/internal/domain"
	"ifjourney/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	addr := env("ADDR", ":8080")

	kv, closeKV, err := openKV()
	if err != nil {
		log.Fatalf("store open: %v", err)
	}
	defer closeKV()

	st := store.New(kv)

	authSvc := app.NewAuthService(st, st)
	profileSvc := app.NewProfileService(st)
	fastingSvc := app.NewFastingService(st)
	mealSvc := app.NewMealService(st)
	workoutSvc := app.NewWorkoutService(st)

	oidcCfg, err := adapthttp.NewOIDCConfig(context.Background(),
		os.Getenv("OIDC_ISSUER"),
		os.Getenv("OIDC_CLIENT_ID"),
		os.Getenv("OIDC_CLIENT_SECRET"),
		os.Getenv("OIDC_REDIRECT_URL"),
	)
	if err != nil {
		log.Fatalf("oidc setup: %v", err)
	}
	if !oidcCfg.Enabled {
		log.Println("google sign-in disabled")
	}

	h := adapthttp.New(authSvc, profileSvc, fastingSvc, mealSvc, workoutSvc, oidcCfg).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// openKV picks the key-value backend from STORE_DRIVER. The default is an
// in-process map, which loses everything on restart.
func openKV() (domain.KeyValueStore, func(), error) {
	switch driver := env("STORE_DRIVER", "memory"); driver {
	case "memory":
		return memory.New(), func() {}, nil

	case "postgres":
		connStr := os.Getenv("DATABASE_URL")
		if connStr == "" {
			return nil, nil, errors.New("DATABASE_URL is required for the postgres driver")
		}
		db, err := postgres.Open(connStr)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil

	case "sqlite":
		path := env("SQLITE_PATH", "data/ifjourney.db")
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { _ = db.Close() }, nil

	default:
		return nil, nil, errors.New("unknown STORE_DRIVER: " + driver)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
