package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/auction-network/auctiond/internal/config"
	"github.com/auction-network/auctiond/internal/core/application"
	"github.com/auction-network/auctiond/internal/core/ports"
	dbbadger "github.com/auction-network/auctiond/internal/infrastructure/storage/db/badger"
	"github.com/auction-network/auctiond/internal/infrastructure/storage/db/inmemory"
	httpinterface "github.com/auction-network/auctiond/internal/interfaces/http"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	repoManager, err := openRepoManager()
	if err != nil {
		log.WithError(err).Fatal("error while opening database")
	}
	defer repoManager.Close()

	auctionSvc := application.NewAuctionService(repoManager)
	registrySvc := application.NewRegistryService(repoManager)
	svc := httpinterface.NewService(auctionSvc, registrySvc)

	addr := fmt.Sprintf(":%d", config.GetInt(config.ListeningPortKey))
	server := &http.Server{Addr: addr, Handler: svc.Router()}

	log.Debug("starting daemon")

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		log.Infof("interface is listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-sigChan:
		case <-ctx.Done():
			return nil
		}

		log.Debug("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("daemon exited with error")
	}

	log.Info("exiting")
}

func openRepoManager() (ports.RepoManager, error) {
	if config.GetString(config.DBTypeKey) == application.DBInMemory {
		return inmemory.NewRepoManager(), nil
	}

	dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
	return dbbadger.NewRepoManager(dbDir, nil)
}
