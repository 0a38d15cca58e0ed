package review

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/providers"
	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
)

// Options tune how the controller talks to the model client.
type Options struct {
	MaxTokens   int
	Temperature float64
	Guidelines  *Guidelines
}

// Controller owns the request lifecycle. It holds exactly one State at
// a time and guarantees at most one request is in flight; transitions
// are the only way the state changes, and every transition is reported
// to subscribers.
type Controller struct {
	client providers.Client
	opts   Options

	mu       sync.Mutex
	state    State
	inFlight bool
	subs     []func(State)
}

// NewController creates a controller in the Idle state.
func NewController(client providers.Client, opts Options) *Controller {
	return &Controller{
		client: client,
		opts:   opts,
		state:  State{Phase: PhaseIdle},
	}
}

// Subscribe registers fn to be called on every state transition, in
// registration order. Subscribers run synchronously on the goroutine
// that triggered the transition.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Analyze runs one full request lifecycle and returns the terminal
// state. Blank or whitespace-only code fails with EmptyInput before any
// adapter activity. A call made while another request is in flight is
// ignored and returns the current state unchanged; the in-flight
// request's eventual resolution still applies. A new call after a
// terminal state discards the previous result or error wholesale.
func (c *Controller) Analyze(ctx context.Context, lang Language, code string) State {
	c.mu.Lock()
	if c.inFlight {
		s := c.state
		c.mu.Unlock()
		return s
	}

	if strings.TrimSpace(code) == "" {
		return c.transition(State{Phase: PhaseFailed, Err: emptyInputError()})
	}

	c.inFlight = true
	c.transition(State{Phase: PhaseValidating})

	prompt := BuildPrompt(lang, code, c.opts.Guidelines)

	c.mu.Lock()
	c.transition(State{Phase: PhaseInFlight})

	resp, aerr := c.dispatch(ctx, providers.Request{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   prompt,
		Schema:       schema.Review(),
		MaxTokens:    c.opts.MaxTokens,
		Temperature:  c.opts.Temperature,
	})

	var final State
	if aerr != nil {
		final = State{Phase: PhaseFailed, Err: aerr}
	} else if result, perr := ParseResult(resp.Content); perr != nil {
		final = State{Phase: PhaseFailed, Err: perr}
	} else {
		final = State{Phase: PhaseSuccess, Result: result}
	}

	c.mu.Lock()
	c.inFlight = false
	return c.transition(final)
}

// dispatch performs the single adapter call. An adapter error becomes
// TransportFailure; a panic during the call becomes UnknownFailure so
// no fault escapes the controller.
func (c *Controller) dispatch(ctx context.Context, req providers.Request) (resp providers.Response, aerr *AnalysisError) {
	defer func() {
		if r := recover(); r != nil {
			resp = providers.Response{}
			aerr = unknownError(fmt.Sprintf("model call panicked: %v", r))
		}
	}()

	resp, err := c.client.Generate(ctx, req)
	if err != nil {
		return providers.Response{}, transportError(err)
	}
	return resp, nil
}

// transition records st as the current state, releases the lock, and
// notifies subscribers. The caller must hold mu; transition returns
// with mu released.
func (c *Controller) transition(st State) State {
	c.state = st
	subs := make([]func(State), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
	return st
}
