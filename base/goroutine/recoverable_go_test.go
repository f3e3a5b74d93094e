package goroutine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRecoverableGoPanic(t *testing.T) {
	res := []string{}

	err := <-RecoverableGo(
		func() error {
			res = append(res, "run task")
			panic("boom")
		},
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"boom",
	}, res)
	panicErr := &PanicError{}
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "boom", panicErr.Panic)
	assert.NotEmpty(t, panicErr.Stack)
}

func TestRecoverableGoError(t *testing.T) {
	boom := errors.New("failed")
	done := RecoverableGo(func() error { return boom })

	assert.Equal(t, boom, <-done)
	_, open := <-done
	assert.False(t, open)
}

func TestRecoverableGoSuccess(t *testing.T) {
	ran := false
	err := <-RecoverableGo(func() error {
		ran = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, ran)
}
