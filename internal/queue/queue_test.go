package queue_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"github.com/sirkon/zmeika/internal/extmocks"
	"github.com/sirkon/zmeika/internal/queue"
	"github.com/sirkon/zmeika/internal/types"
)

func ExampleQueue() {
	q := queue.New[types.Position]()
	q.Enqueue(types.NewPosition(7, 16))
	q.Enqueue(types.NewPosition(7, 17))
	q.Enqueue(types.NewPosition(7, 16))

	head, _ := q.Dequeue()
	fmt.Println(head)

	if err := q.Dump(os.Stdout); err != nil {
		panic(errors.Wrap(err, "dump queue"))
	}

	// Output:
	// {row:7,col:16}
	// list dump:
	// node 0:
	//   payload: {row:7,col:17}
	//   prev:    nil
	//   next:    {row:7,col:16}
	// -------------------
	// node 1:
	//   payload: {row:7,col:16}
	//   prev:    {row:7,col:17}
	//   next:    nil
	// -------------------
}

func values[T any](q *queue.Queue[T]) []T {
	var res []T
	q.Traverse(func(v T) {
		res = append(res, v)
	})
	return res
}

func TestQueueFIFO(t *testing.T) {
	q := queue.New[string]()
	for _, v := range []string{"a", "b", "c"} {
		q.Enqueue(v)
	}

	if v, ok := q.Peek(); !ok || v != "a" {
		t.Errorf("peek: expected a, got %q (present %t)", v, ok)
	}
	if q.Len() != 3 {
		t.Errorf("peek must not change length, got %d", q.Len())
	}

	var got []string
	for i := 0; i < 3; i++ {
		v, ok := q.Dequeue()
		if !ok {
			t.Fatalf("dequeue %d: value expected", i)
		}
		got = append(got, v)
	}

	if !deepequal.Equal([]string{"a", "b", "c"}, got) {
		t.Error("dequeue order mismatch")
		deepequal.SideBySide(t, "dequeued", []string{"a", "b", "c"}, got)
	}
	if !q.IsEmpty() {
		t.Error("queue must be empty")
	}
}

func TestQueueEmpty(t *testing.T) {
	q := queue.New[types.Position]()

	for i := 0; i < 2; i++ {
		v, ok := q.Dequeue()
		if ok {
			t.Errorf("dequeue %d from empty queue must be absent", i)
		}
		if v != (types.Position{}) {
			t.Errorf("dequeue %d from empty queue must return zero value, got %s", i, v)
		}
		if !q.IsEmpty() {
			t.Errorf("queue must stay empty after dequeue %d", i)
		}
	}

	if _, ok := q.Peek(); ok {
		t.Error("peek into empty queue must be absent")
	}

	var calls int
	q.Traverse(func(types.Position) { calls++ })
	if calls != 0 {
		t.Errorf("traverse over empty queue must not call action, got %d calls", calls)
	}
}

func TestQueueOccupancy(t *testing.T) {
	q := queue.New[types.Position]()
	q.Enqueue(types.NewPosition(7, 16))
	q.Enqueue(types.NewPosition(7, 17))
	q.Enqueue(types.NewPosition(7, 16))

	v, ok := q.Dequeue()
	if !ok || v != types.NewPosition(7, 16) {
		t.Fatalf("expected {row:7,col:16}, got %s (present %t)", v, ok)
	}

	expected := []types.Position{
		types.NewPosition(7, 17),
		types.NewPosition(7, 16),
	}
	if got := values(q); !deepequal.Equal(expected, got) {
		t.Error("remaining positions mismatch")
		deepequal.SideBySide(t, "positions", expected, got)
	}

	occupied := func(p types.Position) bool {
		var res bool
		q.Traverse(func(v types.Position) {
			if v == p {
				res = true
			}
		})
		return res
	}
	if !occupied(types.NewPosition(7, 17)) {
		t.Error("{row:7,col:17} must be occupied")
	}
	if occupied(types.NewPosition(8, 16)) {
		t.Error("{row:8,col:16} must not be occupied")
	}
}

func TestQueueLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := extmocks.NewLoggerMock(ctrl)
	gomock.InOrder(
		logger.EXPECT().DebugEnqueue(1),
		logger.EXPECT().DebugEnqueue(2),
		logger.EXPECT().DebugDequeue(1),
		logger.EXPECT().DebugDequeue(0),
		logger.EXPECT().WarningDequeueEmpty(),
	)

	q := queue.New[int](queue.WithLogger(logger))
	q.Enqueue(1)
	q.Enqueue(2)
	for i := 0; i < 3; i++ {
		q.Dequeue()
	}
}

func TestQueueNilLogger(t *testing.T) {
	q := queue.New[int](queue.WithLogger(nil))
	q.Enqueue(1)
	if v, ok := q.Dequeue(); !ok || v != 1 {
		t.Errorf("expected 1, got %d (present %t)", v, ok)
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("dequeue from empty queue must be absent")
	}
}
