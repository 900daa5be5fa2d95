package dllist

import (
	"fmt"
	"io"

	"github.com/sirkon/errors"
)

// Dump вывод содержимого списка в человекочитаемом виде.
// Формат для каждого узла:
//
//	node <индекс>:
//	  payload: <значение>
//	  prev:    <значение предыдущего узла или nil>
//	  next:    <значение следующего узла или nil>
//	-------------------
//
// Для пустого списка после заголовка выводится строка "list is empty".
func (l *DLList[T]) Dump(dst io.Writer) error {
	if _, err := io.WriteString(dst, "list dump:\n"); err != nil {
		return errors.Wrap(err, "write dump header")
	}

	var i int
	for cur := l.first; cur != nil; cur = cur.next {
		if err := dumpNode(dst, i, cur); err != nil {
			return errors.Wrap(err, "dump node").
				Int("node-index", i).
				Str("node-value", fmt.Sprint(cur.value))
		}
		i++
	}

	if i == 0 {
		if _, err := io.WriteString(dst, "list is empty\n"); err != nil {
			return errors.Wrap(err, "write empty list marker")
		}
	}

	return nil
}

func dumpNode[T any](dst io.Writer, index int, n *Node[T]) error {
	_, err := fmt.Fprintf(
		dst,
		"node %d:\n  payload: %v\n  prev:    %s\n  next:    %s\n-------------------\n",
		index,
		n.value,
		neighbourValue(n.prev),
		neighbourValue(n.next),
	)

	return err
}

func neighbourValue[T any](n *Node[T]) string {
	if n == nil {
		return "nil"
	}

	return fmt.Sprint(n.value)
}
