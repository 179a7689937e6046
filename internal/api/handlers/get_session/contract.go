package get_session

import (
	"context"

	getSession "github.com/m04kA/SMC-SlotService/internal/usecase/get_session"
)

type GetSessionUseCase interface {
	Execute(ctx context.Context, req *getSession.Request) (*getSession.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
