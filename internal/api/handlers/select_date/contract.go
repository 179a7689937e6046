package select_date

import (
	"context"

	selectDate "github.com/m04kA/SMC-SlotService/internal/usecase/select_date"
)

type SelectDateUseCase interface {
	Execute(ctx context.Context, req *selectDate.Request) (*selectDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
