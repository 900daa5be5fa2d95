package queue

import (
	"io"

	"github.com/sirkon/zmeika/internal/dllist"
	"github.com/sirkon/zmeika/internal/logging"
)

// Queue FIFO очередь поверх двусвязного списка: самое старое значение
// в начале списка, самое новое в конце. Узлы списка наружу не отдаются.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type Queue[T any] struct {
	list   *dllist.DLList[T]
	logger logging.Logger
}

// New конструктор пустой очереди с данными опциями.
func New[T any](opts ...Option) *Queue[T] {
	o := queueOptions{
		logger: logging.Nop,
	}
	for _, opt := range opts {
		opt(&o, optionRestriction{})
	}

	return &Queue[T]{
		list:   dllist.New[T](),
		logger: o.logger,
	}
}

// Enqueue добавление значения в конец очереди.
func (q *Queue[T]) Enqueue(v T) {
	q.list.Push(v)

	if q.logger != logging.Nop {
		q.logger.DebugEnqueue(q.list.Len())
	}
}

// Dequeue извлечение значения из начала очереди. Для пустой очереди
// возвращается нулевое значение и false, это не ошибка.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	v, ok = q.list.First()
	q.list.DeleteFirst()

	if q.logger == logging.Nop {
		return v, ok
	}

	if !ok {
		q.logger.WarningDequeueEmpty()
	} else {
		q.logger.DebugDequeue(q.list.Len())
	}

	return v, ok
}

// Peek значение в начале очереди без извлечения.
func (q *Queue[T]) Peek() (v T, ok bool) {
	return q.list.First()
}

// IsEmpty проверка на пустоту.
func (q *Queue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// Len длина очереди.
func (q *Queue[T]) Len() int {
	return q.list.Len()
}

// Traverse вызов action для каждого значения от самого старого к самому новому.
// Изменять очередь внутри action нельзя.
func (q *Queue[T]) Traverse(action func(v T)) {
	q.list.Each(action)
}

// Dump вывод содержимого очереди в человекочитаемом виде.
func (q *Queue[T]) Dump(dst io.Writer) error {
	return q.list.Dump(dst)
}
