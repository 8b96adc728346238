package server

import (
	"github.com/ortemap/ortemap/assets"
	"github.com/ortemap/ortemap/internal/config"
	"github.com/ortemap/ortemap/internal/render"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Session   *render.Session
	IndexHTML []byte
	Favicon   []byte
}

// NewServerContext wires the configuration and the completed rendering
// session into the handler context.
func NewServerContext(cfg *config.Config, session *render.Session) *ServerContext {
	log.Info().
		Str("state", session.State().String()).
		Str("dataset", cfg.Dataset).
		Msg("Initializing server context")

	return &ServerContext{
		Config:    cfg,
		Session:   session,
		IndexHTML: assets.Index,
		Favicon:   assets.Favicon,
	}
}
