package command

import "sync"

// Completion is the single-shot signal an action uses to report that it has
// finished. Only the first call to Done is delivered.
type Completion struct {
	once sync.Once
	ch   chan error
}

// NewCompletion returns an unsignalled Completion.
func NewCompletion() *Completion {
	return &Completion{ch: make(chan error, 1)}
}

// Done signals completion with an optional failure. It reports false if the
// completion had already been signalled, in which case err is dropped.
func (c *Completion) Done(err error) bool {
	delivered := false
	c.once.Do(func() {
		c.ch <- err
		close(c.ch)
		delivered = true
	})
	return delivered
}

// Wait blocks until Done has been called and returns the error passed to it.
// Later calls return nil immediately.
func (c *Completion) Wait() error {
	return <-c.ch
}
