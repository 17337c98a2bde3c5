// Package http exposes the agent's local control API. The field UI shell is
// its only intended consumer; the API surfaces the record collection, the
// selection state, the sync status, and triggers for adds, deletes, and
// manual syncs.
package http

import (
	"github.com/geovision-ai/miner-sync/internal/logger"
	"github.com/geovision-ai/miner-sync/internal/service"
	"github.com/geovision-ai/miner-sync/models"
)

type Handler struct {
	services  *service.Services
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
