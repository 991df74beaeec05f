package httpapi

import (
	"jobscout-engine/internal/engine"
	"jobscout-engine/internal/events"

	"go.uber.org/zap"
)

type Deps struct {
	Engine *engine.Engine
	Hub    *events.Hub
	Log    *zap.Logger
}
