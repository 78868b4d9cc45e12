package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/barcart/barcart/internal/browse"
	"github.com/barcart/barcart/internal/catalog"
	"github.com/barcart/barcart/internal/config"
	"github.com/barcart/barcart/internal/db"
	"github.com/barcart/barcart/internal/handler"
	"github.com/barcart/barcart/internal/session"
	"github.com/barcart/barcart/internal/store"
	"github.com/barcart/barcart/internal/upstream"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := session.NewManager(database, cfg.DB.Driver, cfg.SessionLifetime)
			favoriteStore := store.NewFavoriteStore(database)

			client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
			cat := catalog.New(client)
			fetcher := browse.NewLocalFetcher(cat)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				Catalog:        cat,
				Fetcher:        fetcher,
				FavoriteStore:  favoriteStore,
				PageSize:       cfg.Page.Size,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
