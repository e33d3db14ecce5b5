package main

import (
	"fmt"
	"os"

	"github.com/saeedne/StatusReportProject/internal/config"
	"github.com/saeedne/StatusReportProject/internal/db"
	"github.com/saeedne/StatusReportProject/internal/excel"
	httphandler "github.com/saeedne/StatusReportProject/internal/http"
	"github.com/saeedne/StatusReportProject/internal/logger"
	"github.com/saeedne/StatusReportProject/internal/repository"
	"github.com/saeedne/StatusReportProject/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	generator := excel.NewGenerator()

	contractService := service.NewContractService(repository.NewContractRepository(database))
	recordService := service.NewRecordService(repository.NewRecordRepository(database), generator)
	surveyService := service.NewSurveyService(repository.NewSurveyRepository(database), generator)

	handler := httphandler.NewHandler(contractService, recordService, surveyService, log)
	router := httphandler.NewRouter(handler, log, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contracts service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
