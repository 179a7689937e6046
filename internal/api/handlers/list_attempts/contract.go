package list_attempts

import (
	"context"

	listAttempts "github.com/m04kA/SMC-SlotService/internal/usecase/list_attempts"
)

type ListAttemptsUseCase interface {
	Execute(ctx context.Context, req *listAttempts.Request) (*listAttempts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
