package main

import (
	"context"
	"log"

	"membership-be/internal/bootstrap"
	"membership-be/internal/config"
	"membership-be/internal/server"
	"membership-be/internal/tracer"
	"membership-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.Open(database.Options{
		DSN:             cfg.Database.Connection,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
