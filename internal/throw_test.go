package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type kaboomError struct{}

func (kaboomError) Error() string { return "kaboom" }

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(fn func()) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()
		fn()
		return nil
	}

	t.Run("with fatalf", func(t *testing.T) {
		err := testFn(func() { Fatalf("kaboom %d", 3) })
		assert.EqualError(t, err, "kaboom 3")
	})

	t.Run("with typed throw", func(t *testing.T) {
		err := testFn(func() { Throw(kaboomError{}) })
		assert.EqualError(t, err, "kaboom")
		var target kaboomError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(func() { panic("true panic") })
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(func() {
				var s []int
				_ = s[3]
			})
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(func() {})
		assert.NoError(t, err)
	})
}
