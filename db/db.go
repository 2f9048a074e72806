package db

import (
	"database/sql"
	"strings"
	"time"

	"github.com/uepb/eventos.go/lib/service"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	sqltrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/database/sql"
	"modernc.org/sqlite"
)

const (
	serviceName  = "eventos.go"
	sqliteDriver = "sqlite"
	// writers wait on the file lock instead of failing with SQLITE_BUSY
	sqliteBusyTimeout = "_pragma=busy_timeout(5000)"
)

// Open returns a bun handle for DATABASE_URI. Postgres URIs go through pgdriver,
// anything else is treated as a SQLite file path or file: URI.
func Open(config *service.Config) (*bun.DB, error) {
	var db *bun.DB
	dsn := config.DatabaseUri
	switch {
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.HasPrefix(dsn, "unix://"):
		var dbConn *sql.DB
		//if Datadog is configured, send sql traces there
		if config.DatadogAgentUrl != "" {
			sqltrace.Register("postgres", pgdriver.Driver{}, sqltrace.WithServiceName(serviceName))
			dbConn = sqltrace.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		} else {
			dbConn = sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		}
		db = bun.NewDB(dbConn, pgdialect.New())
		db.SetMaxOpenConns(config.DatabaseMaxConns)
		db.SetMaxIdleConns(config.DatabaseMaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(config.DatabaseConnMaxLifetime) * time.Second)
	default:
		dsn = SQLiteDSN(dsn)
		var dbConn *sql.DB
		var err error
		if config.DatadogAgentUrl != "" {
			sqltrace.Register(sqliteDriver, &sqlite.Driver{}, sqltrace.WithServiceName(serviceName))
			dbConn, err = sqltrace.Open(sqliteDriver, dsn)
		} else {
			dbConn, err = sql.Open(sqliteDriver, dsn)
		}
		if err != nil {
			return nil, err
		}
		db = bun.NewDB(dbConn, sqlitedialect.New())
		// a single file has a single writer, more connections only trade
		// waiting in the pool for SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	db.AddQueryHook(bundebug.NewQueryHook(
		// disable the hook
		bundebug.WithEnabled(false),
		// BUNDEBUG=1 logs failed queries
		// BUNDEBUG=2 logs all queries
		bundebug.FromEnv("BUNDEBUG"),
	))

	return db, nil
}

// SQLiteDSN strips an optional sqlite:// scheme and adds the busy timeout pragma
// unless the caller already set query parameters.
func SQLiteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	if strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?" + sqliteBusyTimeout
}
