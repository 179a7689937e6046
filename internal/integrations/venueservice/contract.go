package venueservice

import "time"

// Metrics метрики вызовов бэкенда
type Metrics interface {
	RecordBackendRequest(operation, result string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
