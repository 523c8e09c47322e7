package main

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/battleship-solo/api"
	"github.com/saeidalz13/battleship-solo/db"
	"github.com/saeidalz13/battleship-solo/db/sqlc"
	"github.com/saeidalz13/battleship-solo/internal"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
	mc "github.com/saeidalz13/battleship-solo/models/connection"
)

func main() {
	cfg := internal.MustLoadConfig()
	log.SetLevel(cfg.LogLevel)
	log.SetReportTimestamp(true)

	var dbManager sqlc.DbManager
	if cfg.DatabaseUrl != "" {
		psqlDb := db.MustConnectToDb(cfg.DatabaseUrl)
		defer psqlDb.Close()
		dbManager = sqlc.NewDbManager(sqlc.New(psqlDb))
	} else {
		log.Warn("DATABASE_URL is not set, analytics disabled")
	}

	sessionManager := mc.NewBattleshipSessionManager()
	gameManager := mb.NewBattleshipGameManager()
	go sessionManager.CleanupPeriodically()

	rp := api.NewRequestProcessor(sessionManager, gameManager, dbManager, api.WithComputerDelay(cfg.ComputerDelay))

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	log.Info("listening", "port", cfg.Port, "stage", cfg.Stage, "server_ip", rp.GetIpNet().IP.String())
	log.Fatal(http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", cfg.Port), mux))
}
