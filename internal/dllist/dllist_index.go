package dllist

// NodeAt узел с данным индексом, считая от начала списка с нуля.
// Возвращает nil для отрицательного индекса и для индекса за концом списка.
func (l *DLList[T]) NodeAt(index int) *Node[T] {
	if index < 0 {
		return nil
	}

	cur := l.first
	for i := 0; cur != nil && i < index; i++ {
		cur = cur.next
	}

	return cur
}

// Get значение с данным индексом.
func (l *DLList[T]) Get(index int) (v T, ok bool) {
	n := l.NodeAt(index)
	if n == nil {
		return v, false
	}

	return n.value, true
}

// IndexFunc индекс первого значения удовлетворяющего предикату или -1.
func (l *DLList[T]) IndexFunc(f func(v T) bool) int {
	var i int
	for cur := l.first; cur != nil; cur = cur.next {
		if f(cur.value) {
			return i
		}
		i++
	}

	return -1
}

// IndexOf индекс первого значения равного v или -1.
func IndexOf[T comparable](l *DLList[T], v T) int {
	return l.IndexFunc(func(x T) bool {
		return x == v
	})
}

// InsertBefore вставка значения перед элементом с данным индексом.
// Нулевой индекс и пустой список означают вставку в начало.
// Возвращает ErrorOutOfBounds для отрицательного индекса и для
// индекса за концом списка.
func (l *DLList[T]) InsertBefore(index int, v T) error {
	if index < 0 {
		return errOutOfBounds(index, "insert before negative index")
	}

	if index == 0 || l.first == nil {
		l.PushFirst(v)
		return nil
	}

	n := l.NodeAt(index)
	if n == nil {
		return errOutOfBounds(index, "insert before missing node")
	}

	l.InsertBeforeNode(v, n)
	return nil
}

// InsertAfter вставка значения после элемента с данным индексом.
// Возвращает ErrorOutOfBounds если такого элемента нет.
func (l *DLList[T]) InsertAfter(index int, v T) error {
	if index < 0 {
		return errOutOfBounds(index, "insert after negative index")
	}

	n := l.NodeAt(index)
	if n == nil {
		return errOutOfBounds(index, "insert after missing node")
	}

	l.InsertAfterNode(v, n)
	return nil
}

// Remove удаление элемента с данным индексом, если он есть.
func (l *DLList[T]) Remove(index int) {
	l.Delete(l.NodeAt(index))
}

// Each вызов f для каждого значения от начала к концу.
// Изменять список внутри f нельзя.
func (l *DLList[T]) Each(f func(v T)) {
	for cur := l.first; cur != nil; cur = cur.next {
		f(cur.value)
	}
}

// Values значения списка по порядку.
func (l *DLList[T]) Values() []T {
	var res []T
	l.Each(func(v T) {
		res = append(res, v)
	})

	return res
}

// Len длина списка. Вычисляется обходом.
func (l *DLList[T]) Len() int {
	var res int
	for cur := l.first; cur != nil; cur = cur.next {
		res++
	}

	return res
}
