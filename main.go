package main

import (
	"log"

	"github.com/valyala/fasthttp"

	"paydate-engine/internal/config"
	"paydate-engine/internal/engine"
	"paydate-engine/internal/handler"
	"paydate-engine/internal/holidays"
	"paydate-engine/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}
	logger.Init(cfg)

	calendars, err := holidays.Load(cfg.HolidayCalendarFile)
	if err != nil {
		logger.Log.Fatalf("Could not load holiday calendars: %v", err)
	}
	logger.Log.Infof("Loaded holiday calendars: %v", calendars.Names())

	e := engine.New(cfg.Calculator(), calendars, logger.Get())

	logger.Log.Infof("Paydate engine starting on port %s", cfg.Port)
	if err := fasthttp.ListenAndServe(":"+cfg.Port, handler.New(e, logger.Get())); err != nil {
		logger.Log.Fatalf("Server failed: %v", err)
	}
}
