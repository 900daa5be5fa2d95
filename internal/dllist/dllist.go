package dllist

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список произвольных значений.
// Нулевое значение является пустым списком.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first *Node[T]
	last  *Node[T]
}

// Push добавление нового значения в конец списка с возвратом созданного узла.
func (l *DLList[T]) Push(v T) *Node[T] {
	n := &Node[T]{
		next:  nil,
		prev:  l.last,
		value: v,
	}

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// PushFirst добавление нового значения в начало списка с возвратом созданного узла.
func (l *DLList[T]) PushFirst(v T) *Node[T] {
	n := &Node[T]{
		next:  l.first,
		prev:  nil,
		value: v,
	}

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.first.prev = n
	l.first = n

	return n
}

// DeleteFirst удаление первого элемента списка.
func (l *DLList[T]) DeleteFirst() {
	if l.first == nil {
		return
	}

	f := l.first
	l.first = f.next
	if f.next == nil {
		// в списке был только один элемент
		l.last = nil
	} else {
		f.next.prev = nil
	}

	f.next = nil // для упрощения работы GC
}

// DeleteLast удаление последнего элемента списка.
func (l *DLList[T]) DeleteLast() {
	if l.last == nil {
		return
	}

	t := l.last
	l.last = t.prev
	if t.prev == nil {
		l.first = nil
	} else {
		t.prev.next = nil
	}

	t.prev = nil
}

// Delete удаление данного узла из списка. Принадлежность узла
// этому списку не проверяется, за это отвечает вызывающий.
// Для узла единственного в списке срабатывает ветка удаления
// первого элемента.
func (l *DLList[T]) Delete(n *Node[T]) {
	if n == nil {
		return
	}

	switch n {
	case l.first:
		l.DeleteFirst()
		return
	case l.last:
		l.DeleteLast()
		return
	}

	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}

	n.cleanup()
}

// InsertBeforeNode вставка значения перед данным узлом. Узел ищется
// в списке по идентичности, если его нет, то ничего не происходит
// и возвращается nil. Для пустого списка вставки тоже не происходит.
func (l *DLList[T]) InsertBeforeNode(v T, existing *Node[T]) *Node[T] {
	if l.first == nil {
		return nil
	}
	if existing == l.first {
		return l.PushFirst(v)
	}

	for cur := l.first; cur != nil; cur = cur.next {
		if cur != existing {
			continue
		}

		n := &Node[T]{
			prev:  cur.prev,
			next:  cur,
			value: v,
		}
		if cur.prev != nil {
			cur.prev.next = n
		}
		cur.prev = n

		return n
	}

	return nil
}

// InsertAfterNode вставка значения после данного узла, симметрично InsertBeforeNode.
func (l *DLList[T]) InsertAfterNode(v T, existing *Node[T]) *Node[T] {
	if l.first == nil {
		return nil
	}
	if existing == l.last {
		return l.Push(v)
	}

	for cur := l.first; cur != nil; cur = cur.next {
		if cur != existing {
			continue
		}

		n := &Node[T]{
			prev:  cur,
			next:  cur.next,
			value: v,
		}
		if cur.next != nil {
			cur.next.prev = n
		}
		cur.next = n

		return n
	}

	return nil
}

// Swap обмен позиций двух узлов в списке. Ничего не делает если
// один из узлов nil или они совпадают. Принадлежность узлов списку
// не проверяется.
func (l *DLList[T]) Swap(a, b *Node[T]) {
	if a == nil || b == nil || a == b {
		return
	}

	switch {
	case a.next == b:
		swapAdjacent(a, b)
	case b.next == a:
		swapAdjacent(b, a)
	default:
		ap, an := a.prev, a.next
		bp, bn := b.prev, b.next

		a.prev, a.next = bp, bn
		b.prev, b.next = ap, an

		if ap != nil {
			ap.next = b
		}
		if an != nil {
			an.prev = b
		}
		if bp != nil {
			bp.next = a
		}
		if bn != nil {
			bn.prev = a
		}
	}

	if l.first == a {
		l.first = b
	} else if l.first == b {
		l.first = a
	}

	if l.last == a {
		l.last = b
	} else if l.last == b {
		l.last = a
	}
}

// swapAdjacent меняет местами x и y при x.next == y.
func swapAdjacent[T any](x, y *Node[T]) {
	p, n := x.prev, y.next

	y.prev, y.next = p, x
	x.prev, x.next = y, n

	if p != nil {
		p.next = y
	}
	if n != nil {
		n.prev = x
	}
}

// First получение значения первого элемента списка.
func (l *DLList[T]) First() (v T, ok bool) {
	if l.first == nil {
		return v, false
	}

	return l.first.value, true
}

// Last получение значения последнего элемента списка.
func (l *DLList[T]) Last() (v T, ok bool) {
	if l.last == nil {
		return v, false
	}

	return l.last.value, true
}

// FirstNode первый узел списка.
func (l *DLList[T]) FirstNode() *Node[T] {
	return l.first
}

// LastNode последний узел списка.
func (l *DLList[T]) LastNode() *Node[T] {
	return l.last
}

// IsEmpty проверка на пустоту.
func (l *DLList[T]) IsEmpty() bool {
	return l.first == nil
}

// Clear сброс списка. Узлы по цепочке не обходятся, их подберёт GC.
func (l *DLList[T]) Clear() {
	l.first = nil
	l.last = nil
}
