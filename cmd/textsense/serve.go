package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/spacesedan/textsense/config"
	"github.com/spacesedan/textsense/internal/analyzer"
	"github.com/spacesedan/textsense/internal/artifact"
	"github.com/spacesedan/textsense/internal/history"
	"github.com/spacesedan/textsense/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg := config.GetAppConfig()
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = appCfg.Addr
		}

		store := artifact.NewStore(resolveArtifactDir(cmd))
		session, err := analyzer.LoadSession(store)
		if err != nil {
			return err
		}

		var histStore *history.Store
		if appCfg.HistoryDB != "" {
			histStore, err = history.Open(appCfg.HistoryDB)
			if err != nil {
				slog.Warn("[Serve] History disabled",
					slog.String("error", err.Error()))
				histStore = nil
			} else {
				defer histStore.Close()
			}
		}

		api := server.NewAPI(session, histStore)
		defer api.Close()

		router := gin.Default()
		server.SetupRoutes(router, api)

		slog.Info("[Serve] Listening",
			slog.String("addr", addr))
		return router.Run(addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides TEXTSENSE_ADDR)")
}
