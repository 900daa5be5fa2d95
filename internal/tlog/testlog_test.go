package tlog_test

import (
	stderrs "errors"
	"testing"

	"github.com/sirkon/errors"
	"github.com/sirkon/zmeika/internal/tlog"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("index", 12).Any("values", []string{
			"a", "b",
		}).Str("op", "insert before"))
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must not be reported")
		}
	})

	t.Run("expect-is", func(t *testing.T) {
		const sentinel errors.Const = "sentinel"
		err := errors.Wrap(sentinel, "wrapped").Int("index", -1)
		if !tlog.ExpectIs(t, err, sentinel) {
			t.Error("wrapped sentinel must be recognized")
		}
	})
}
