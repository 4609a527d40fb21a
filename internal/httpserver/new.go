package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"todo-me/internal/quickadd"
	"todo-me/internal/recurrence"
	"todo-me/pkg/datemath"
	"todo-me/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	db *sqlx.DB

	// Parsing
	clock           datemath.Clock
	parserDefaults  quickadd.Defaults
	recurrenceCache recurrence.CacheConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// DB backs the project store; it must already be migrated.
	DB *sqlx.DB

	// Clock defaults to datemath.SystemClock.
	Clock           datemath.Clock
	ParserDefaults  quickadd.Defaults
	RecurrenceCache recurrence.CacheConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		clock:           cfg.Clock,
		parserDefaults:  cfg.ParserDefaults,
		recurrenceCache: cfg.RecurrenceCache,
	}
	if srv.clock == nil {
		srv.clock = datemath.SystemClock{}
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
