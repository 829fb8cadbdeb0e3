package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"teenpatti-server/internal/config"
	"teenpatti-server/internal/mux"
	"teenpatti-server/pkg/db"
	"teenpatti-server/pkg/teenpatti"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (defaults to the configured listenAddr)")

func main() {
	flag.Parse()
	setupLogger()

	if *addr == "" {
		*addr = config.Instance().ListenAddr
	}

	// build the ranking table before accepting traffic
	start := time.Now()
	teenpatti.Instance()
	logrus.WithField("duration", time.Since(start)).
		WithField("totalHands", teenpatti.TotalHands).
		Info("ranking table ready")

	// run the db migrations
	if config.Instance().HistoryEnabled() {
		db.Migrate()
	}

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
