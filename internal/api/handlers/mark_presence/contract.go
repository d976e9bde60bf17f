package mark_presence

import (
	"context"

	"github.com/travelparadise/TP-VisitService/internal/service/tourists/models"
)

type TouristService interface {
	MarkPresence(ctx context.Context, touristID int64, req *models.MarkPresenceRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
