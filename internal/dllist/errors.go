package dllist

import "github.com/sirkon/errors"

const (
	// ErrorOutOfBounds позиционная вставка с индексом которому не соответствует
	// ни один узел списка.
	ErrorOutOfBounds errors.Const = "index out of bounds"
)

func errOutOfBounds(index int, op string) error {
	return errors.Wrap(ErrorOutOfBounds, op).Int("index", index)
}
