package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"contactscraper/internal/config"
	"contactscraper/internal/monitoring"
	"contactscraper/internal/scraper"
)

func main() {
	state := flag.String("state", "", "target state, e.g. Karnataka")
	city := flag.String("city", "", "target city, e.g. Bangalore")
	profession := flag.String("profession", "", "target profession, e.g. Doctor")
	output := flag.String("output", "", "output CSV path (default: <state>_<city>_<profession>_contacts.csv in the output dir)")
	singleURL := flag.String("url", "", "scrape one URL directly instead of searching")
	maxPages := flag.Int("max-pages", -1, "result pages per query (0 = unlimited up to the hard cap)")
	interactive := flag.Bool("interactive", false, "use the smaller interactive URL budget per page")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}
	if *maxPages >= 0 {
		cfg.MaxPages = *maxPages
	}
	if *interactive {
		cfg.URLsPerPage = 5
	}

	if *state == "" || *city == "" || *profession == "" {
		logger.Fatal("state, city and profession are required")
	}

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	session := scraper.New(cfg, metrics, logger, *state, *city, *profession, *output)

	// An interrupt stops further fetching; whatever has accumulated is
	// still persisted.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *singleURL != "" {
		res := session.ScrapeSingleURL(ctx, *singleURL)
		if res.Err != nil {
			logger.Warn("direct scrape failed", zap.String("url", *singleURL), zap.Error(res.Err))
		} else {
			logger.Info("direct scrape done",
				zap.String("url", *singleURL), zap.Int("records", res.Records))
		}
		if err := session.Persist(); err != nil {
			logger.Fatal("persist failed", zap.Error(err))
		}
		logger.Info("output written", zap.String("path", session.OutputPath()))
		return
	}

	n, err := session.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run finished with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("run finished",
		zap.Int("contacts", n), zap.String("path", session.OutputPath()))
}
