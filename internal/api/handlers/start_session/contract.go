package start_session

import (
	"context"

	startSession "github.com/m04kA/SMC-SlotService/internal/usecase/start_session"
)

type StartSessionUseCase interface {
	Execute(ctx context.Context, req *startSession.Request) (*startSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
