package logging

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// WarningDequeueEmpty извлечение из пустой очереди. Ошибкой это не является,
	// но обычно говорит о рассинхронизации с вызывающей стороной.
	WarningDequeueEmpty()
	// DebugEnqueue отладочное логирование добавления в очередь с её новой длиной.
	DebugEnqueue(length int)
	// DebugDequeue отладочное логирование извлечения из очереди с оставшейся длиной.
	DebugDequeue(length int)
}

// Nop логгер который ничего не делает.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) WarningDequeueEmpty() {}

func (nopLogger) DebugEnqueue(int) {}

func (nopLogger) DebugDequeue(int) {}
