package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
)

var (
	ErrTimeout       = errors.New("timed out waiting for input")
	ErrConsoleClosed = errors.New("console is closed")
)

// Console is a line-based terminal shared by the players at one keyboard.
// Close it when the match is over to stop the goroutine reading In.
type Console struct {
	In        io.Reader
	Out       io.Writer
	lines     chan string
	done      chan struct{}
	stopped   chan struct{}
	err       error
	once      sync.Once
	closeOnce sync.Once
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		In:      in,
		Out:     out,
		lines:   make(chan string),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

func (c *Console) scan() {
	defer close(c.stopped)

	scanner := bufio.NewScanner(c.In)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-c.done:
			return
		}
	}
	c.err = scanner.Err()
	close(c.lines)
}

// Close stops reading input. A line read but not yet handed out is dropped.
// A Read already blocked on In returns only when In does.
func (c *Console) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// ReadLine waits for the next line of input.
// It gives up with ErrTimeout after timeout (if positive) or when ctx is done.
// io.EOF is returned once the input is exhausted, ErrConsoleClosed after Close.
func (c *Console) ReadLine(ctx context.Context, timeout time.Duration) (string, error) {
	select {
	case <-c.done:
		return "", ErrConsoleClosed
	default:
	}
	c.once.Do(func() { go c.scan() })
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case line, ok := <-c.lines:
		if !ok {
			if c.err != nil {
				return "", c.err
			}
			return "", io.EOF
		}
		return line, nil
	case <-expired:
		return "", ErrTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", ErrConsoleClosed
	}
}

// SendText writes formatted text to the console
func (c *Console) SendText(text string, a ...interface{}) {
	fmt.Fprintf(c.Out, text, a...)
}
