package add_tourist

import (
	"context"

	addTourist "github.com/travelparadise/TP-VisitService/internal/usecase/add_tourist"
)

type AddTouristUseCase interface {
	Execute(ctx context.Context, req *addTourist.Request) (*addTourist.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
