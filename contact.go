package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Status is the view state of one contact form instance.
type Status int

const (
	StatusIdle Status = iota
	// StatusSubmitting is held while the relay call is outstanding.
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

const defaultResetDelay = 5 * time.Second

var (
	ErrMissingField = errors.New("contact: required field is empty")
	ErrClosed       = errors.New("contact: form instance closed")

	errMissingName    = missingFieldError("name")
	errMissingEmail   = missingFieldError("email")
	errMissingMessage = missingFieldError("message")
)

// FieldError names the required field that was empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return "contact: " + e.Field + " is required"
}

func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}

func missingFieldError(field string) error {
	return &FieldError{Field: field}
}

// ContactRequest carries the visible form fields at submit time.
type ContactRequest struct {
	Name    string
	Email   string
	Message string
}

// Normalize trims surrounding whitespace from every field.
func (r ContactRequest) Normalize() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Message: strings.TrimSpace(r.Message),
	}
}

// Validate reports the first empty required field. Message is checked first since it
// is the field the relay cannot do without.
func (r ContactRequest) Validate() error {
	r = r.Normalize()
	switch {
	case r.Message == "":
		return errMissingMessage
	case r.Name == "":
		return errMissingName
	case r.Email == "":
		return errMissingEmail
	}
	return nil
}

// Snapshot is a consistent read of a controller's view state.
type Snapshot struct {
	Status Status
	Fields ContactRequest
	Seq    uint64
}

// Transition describes one status change, delivered to observers.
type Transition struct {
	From    Status
	To      Status
	Seq     uint64
	Outcome string
	Err     error
	Elapsed time.Duration
}

// Observer is notified after every status change, outside the controller lock.
type Observer func(Transition)

// Stopper is the handle returned by a Scheduler.
type Stopper interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Stopper

func realScheduler(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Option configures a Controller.
type Option func(*Controller)

// WithResetDelay sets how long Success is shown before returning to Idle.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithScheduler replaces time.AfterFunc for the reset timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.schedule = s
		}
	}
}

// WithObserver registers a transition observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

// WithClock replaces time.Now for activity tracking and relay latency.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller drives the contact form of one mounted page. It sends each submission
// through the relay exactly once and exposes the outcome only through its status.
type Controller struct {
	relay      Relay
	resetDelay time.Duration
	schedule   Scheduler
	observers  []Observer
	now        func() time.Time

	mu         sync.Mutex
	status     Status
	fields     ContactRequest
	seq        uint64
	resetTimer Stopper
	closed     bool
	touched    time.Time
}

// NewController mounts a controller in the Idle state with empty fields.
func NewController(relay Relay, opts ...Option) *Controller {
	c := &Controller{
		relay:      relay,
		resetDelay: defaultResetDelay,
		schedule:   realScheduler,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.touched = c.now()
	return c
}

// Submit validates req and sends it through the relay. A request with an empty
// required field returns a *FieldError and never reaches the network. Relay
// outcomes are reported only through Status; a newer Submit supersedes the result
// of an older one that is still in flight.
func (c *Controller) Submit(ctx context.Context, req ContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	req = req.Normalize()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.seq++
	seq := c.seq
	c.stopTimerLocked()
	c.fields = req
	c.touched = c.now()
	from := c.status
	c.status = StatusSubmitting
	c.mu.Unlock()

	c.notify(Transition{From: from, To: StatusSubmitting, Seq: seq})

	start := c.now()
	err := c.relay.Send(ctx, req)
	elapsed := c.now().Sub(start)

	c.mu.Lock()
	if c.closed || seq != c.seq {
		c.mu.Unlock()
		c.notify(Transition{From: StatusSubmitting, To: StatusSubmitting, Seq: seq, Outcome: OutcomeStale, Err: err, Elapsed: elapsed})
		return nil
	}
	t := Transition{From: c.status, Seq: seq, Err: err, Elapsed: elapsed}
	if err != nil {
		c.status = StatusError
		t.Outcome = outcomeFor(err)
	} else {
		c.status = StatusSuccess
		c.fields = ContactRequest{}
		c.resetTimer = c.schedule(c.resetDelay, func() { c.reset(seq) })
		t.Outcome = OutcomeSuccess
	}
	t.To = c.status
	c.touched = c.now()
	c.mu.Unlock()

	c.notify(t)
	return nil
}

// reset returns to Idle unless another submission has started since seq succeeded.
func (c *Controller) reset(seq uint64) {
	c.mu.Lock()
	if c.closed || seq != c.seq || c.status != StatusSuccess {
		c.mu.Unlock()
		return
	}
	c.status = StatusIdle
	c.resetTimer = nil
	c.mu.Unlock()

	c.notify(Transition{From: StatusSuccess, To: StatusIdle, Seq: seq})
}

func (c *Controller) stopTimerLocked() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

// Close unmounts the controller. The pending reset timer is cancelled and any
// outcome still in flight is dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Fields returns the values currently displayed in the form inputs.
func (c *Controller) Fields() ContactRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Status: c.status, Fields: c.fields, Seq: c.seq}
}

// Touch marks the instance as in use so the idle sweep keeps it.
func (c *Controller) Touch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched = c.now()
}

// IdleSince reports when the controller last saw a submission or outcome.
func (c *Controller) IdleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched
}

func (c *Controller) notify(t Transition) {
	for _, o := range c.observers {
		o(t)
	}
}
