package schedule_visit

import (
	"context"

	scheduleVisit "github.com/travelparadise/TP-VisitService/internal/usecase/schedule_visit"
)

type ScheduleVisitUseCase interface {
	Execute(ctx context.Context, req *scheduleVisit.Request) (*scheduleVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
