package main

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/engine"
)

// logEvents writes one status line per simulation event
func logEvents(logger *zap.Logger, events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EventFire:
			logger.Debug("fire", zap.Float64("x", ev.Position.X), zap.Float64("y", ev.Position.Y))
		case engine.EventBodyDestroyed:
			logger.Info("body destroyed", zap.Int("score", ev.Score))
		case engine.EventFragment:
			logger.Debug("body fragmented", zap.Int("fragments", ev.Count))
		case engine.EventSpawn:
			logger.Debug("bodies spawned", zap.Int("count", ev.Count))
		case engine.EventReset:
			logger.Info("craft destroyed", zap.Int("score", ev.Score), zap.Int("high_score", ev.HighScore))
		}
	}
}
