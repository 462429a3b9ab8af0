// Package config carries the assembled application dependencies.
package config

import (
	"github.com/cultivarhq/cultivar/core/repositories/taskrepo"
	"github.com/cultivarhq/cultivar/core/scheduling"
	"github.com/cultivarhq/cultivar/infrastructure/databases/postgresdb"
	"github.com/cultivarhq/cultivar/sdk/logger"
)

// Cultivar holds everything the route registration needs.
type Cultivar struct {
	Build        string
	Logger       *logger.Logger
	DB           *postgresdb.Pool
	Engine       *scheduling.Engine
	Repositories Repositories
}

// Repositories groups the repository handles.
type Repositories struct {
	Task *taskrepo.Repository
}
