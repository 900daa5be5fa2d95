package queue

import "github.com/sirkon/zmeika/internal/logging"

// Option определение опции очереди.
type Option func(o *queueOptions, _ optionRestriction)

type optionRestriction struct{}

type queueOptions struct {
	logger logging.Logger
}

// WithLogger установка логгера очереди. По-умолчанию используется logging.Nop.
func WithLogger(logger logging.Logger) Option {
	return func(o *queueOptions, _ optionRestriction) {
		if logger == nil {
			return
		}

		o.logger = logger
	}
}
