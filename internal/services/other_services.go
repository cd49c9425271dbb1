// internal/services/other_services.go
// Notification service for draw lifecycle events.

package services

import (
	"log"

	"drawbracket/internal/config"
	"drawbracket/internal/database"
	"drawbracket/internal/draw"
)

// Broadcaster pushes draw lifecycle events to live subscribers. Satisfied by
// *websocket.Hub; kept as an interface here so this package never imports
// websocket (which already imports services for the container it serves).
type Broadcaster interface {
	BroadcastDrawUpdate(drawSeed string, eventType string, data interface{})
}

// NotificationService handles all notification operations
type NotificationService struct {
	db          *database.Connections
	config      *config.Config
	logger      *log.Logger
	broadcaster Broadcaster
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *database.Connections, config *config.Config, logger *log.Logger) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
		logger: logger,
	}
}

// SetBroadcaster wires the live-push transport in after the container is
// built, since the websocket hub is constructed from the container itself.
func (s *NotificationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// NotifyDrawCompleted sends notifications when a draw finishes generating.
func (s *NotificationService) NotifyDrawCompleted(drawSeed string, resp *draw.Response) {
	s.logger.Printf("Draw completed: %s (%d matches, quality=%d)",
		drawSeed, len(resp.Matches), resp.Summary.Quality.Score)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDrawUpdate(drawSeed, "draw.completed", resp)
	}
}

// NotifyDrawFailed logs a rejected draw request; nothing is broadcast.
func (s *NotificationService) NotifyDrawFailed(sport string, reason string) {
	s.logger.Printf("Draw generation failed for %s: %s", sport, reason)
}
