// pifp-indexerd tails a node's contract logs into sqlite and serves the
// indexed events, quorum votes, and prometheus metrics over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pifp_protocol/backend/indexer"
	"pifp_protocol/backend/logging"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := indexer.LoadConfig(*configPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logging.Setup("pifp-indexerd", cfg.Environment)

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		log.Error("open database failed", "path", cfg.DatabasePath, "err", err)
		os.Exit(1)
	}
	store, err := indexer.NewStore(db, cfg.QuorumThreshold)
	if err != nil {
		log.Error("init store failed", "err", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	metrics := indexer.NewMetrics(reg)
	source := indexer.NewHTTPLogSource(cfg.NodeURL, cfg.ContractID)
	ingester := indexer.NewIngester(source, store, metrics, log, cfg.PollInterval)
	api := indexer.NewAPI(store, log, reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Addr: cfg.ListenAddress, Handler: api.Router()}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()
	go func() {
		if err := ingester.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("ingester stopped", "err", err)
		}
	}()

	log.Info("indexer listening", "addr", cfg.ListenAddress, "node", cfg.NodeURL, "contract", cfg.ContractID)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}
