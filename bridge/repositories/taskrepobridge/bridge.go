// Package taskrepobridge exposes the task scheduling operations over HTTP.
package taskrepobridge

import (
	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

// bridge provides the HTTP handlers for task operations. Series-aware writes
// go through the scheduling engine; plain reads and status toggles hit the
// repository directly.
type bridge struct {
	log    *logger.Logger
	engine *scheduling.Engine
	repo   *taskrepo.Repository
}

func newBridge(log *logger.Logger, engine *scheduling.Engine, repo *taskrepo.Repository) *bridge {
	return &bridge{
		log:    log,
		engine: engine,
		repo:   repo,
	}
}
