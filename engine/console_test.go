package engine

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	utils "github.com/minaorangina/pyramid/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReadLine(t *testing.T) {
	t.Run("reads lines in order then EOF", func(t *testing.T) {
		c := NewConsole(strings.NewReader("draw\npass\n"), io.Discard)

		for _, want := range []string{"draw", "pass"} {
			line, err := c.ReadLine(context.Background(), 0)
			require.NoError(t, err)
			assert.Equal(t, want, line)
		}
		_, err := c.ReadLine(context.Background(), 0)
		utils.AssertErrorIs(t, err, io.EOF)
	})

	t.Run("times out", func(t *testing.T) {
		r, w := io.Pipe()
		defer w.Close()
		c := NewConsole(r, io.Discard)
		defer c.Close()

		_, err := c.ReadLine(context.Background(), 10*time.Millisecond)
		utils.AssertErrorIs(t, err, ErrTimeout)
	})
}

func TestConsoleClose(t *testing.T) {
	t.Run("stops the reader left waiting after a timeout", func(t *testing.T) {
		t.Log("Given a player who types a line just after their turn timed out")
		r, w := io.Pipe()
		defer w.Close()
		c := NewConsole(r, io.Discard)

		_, err := c.ReadLine(context.Background(), 10*time.Millisecond)
		utils.AssertErrorIs(t, err, ErrTimeout)
		go w.Write([]byte("too late\n")) //nolint:errcheck

		t.Log("When the console is closed")
		require.NoError(t, c.Close())

		t.Log("Then the reader goroutine exits")
		utils.Within(t, time.Second, func() {
			<-c.stopped
		})
	})

	t.Run("stops the reader left waiting after a cancelled read", func(t *testing.T) {
		c := NewConsole(strings.NewReader("one\ntwo\n"), io.Discard)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.ReadLine(ctx, 0)
		utils.AssertErrorIs(t, err, context.Canceled)

		require.NoError(t, c.Close())
		utils.Within(t, time.Second, func() {
			<-c.stopped
		})
	})

	t.Run("reads fail once closed", func(t *testing.T) {
		c := NewConsole(strings.NewReader("draw\n"), io.Discard)
		require.NoError(t, c.Close())
		require.NoError(t, c.Close())

		_, err := c.ReadLine(context.Background(), 0)
		utils.AssertErrorIs(t, err, ErrConsoleClosed)
	})
}
