package main

import (
	"database/sql"
	"teenpatti-server/internal/config"
	"teenpatti-server/pkg/db"
	"time"

	"github.com/sirupsen/logrus"
)

func main() {
	if !config.Instance().HistoryEnabled() {
		logrus.Fatal("pgDsn is not configured")
	}

	waitForDB()
	db.Migrate()
}

func waitForDB() {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
