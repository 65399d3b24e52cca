package gateway

import "time"

// Metrics интерфейс для сбора метрик вызовов
type Metrics interface {
	ObserveGateway(gateway, operation, result string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
