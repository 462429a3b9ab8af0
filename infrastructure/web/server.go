package web

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cultivarhq/cultivar/sdk/environment"
)

// Server wraps http.Server with its resolved configuration.
type Server struct {
	*http.Server
	Config ServerConfig
}

// ServerConfig holds web server configuration.
type ServerConfig struct {
	Port            string        `env:"PORT" default:":8080"`
	APIRoute        string        `env:"API_ROUTE" default:"/api/v1"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"20s"`
}

// LoadServerConfig reads the server configuration from prefixed environment
// variables.
func LoadServerConfig(prefix string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := environment.ParseEnvTags(prefix, &cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// NewServer builds the http.Server around the given handler.
func NewServer(cfg ServerConfig, handler http.Handler, errorLog *log.Logger) *Server {
	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     errorLog,
	}

	return &Server{Server: server, Config: cfg}
}

// NewServerFromEnv builds a server with configuration from the environment.
func NewServerFromEnv(prefix string, handler http.Handler, errorLog *log.Logger) (*Server, error) {
	cfg, err := LoadServerConfig(prefix)
	if err != nil {
		return nil, fmt.Errorf("parsing webserver config: %w", err)
	}
	return NewServer(cfg, handler, errorLog), nil
}
