package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/farhatamiine/restaurent-menu/configs"
	"github.com/farhatamiine/restaurent-menu/events"
	"github.com/farhatamiine/restaurent-menu/middlewares"
	"github.com/farhatamiine/restaurent-menu/routes"
	"github.com/farhatamiine/restaurent-menu/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatal(err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Change feed: websocket hub always on, Kafka sink only when configured.
	hub := ws.NewFeedHub()
	go hub.Run()

	bus := events.NewBus(hub)
	if len(cfg.KafkaBrokers) > 0 {
		sink := events.NewKafkaSink(cfg.KafkaBrokers, "menu_item_events")
		defer sink.Close()
		bus.Add(sink)
		log.Println("kafka sink enabled:", cfg.KafkaBrokers)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg, hub, bus)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
