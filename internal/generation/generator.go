package generation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"github.com/rxtech-lab/workspace-mcp/internal/validation"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

var (
	// ErrCancelled is returned when a run is cancelled mid-flight.
	ErrCancelled = errors.New("generation cancelled")
	// ErrInProgress is returned when a run is started while another is active.
	ErrInProgress = errors.New("a generation is already in progress")
)

// NoProjectMessage is the user-facing error when generation is requested
// without an active project.
const NoProjectMessage = "Please create or select a project first."

// Config controls the simulated generation timings.
type Config struct {
	// ValidationDelay is the pause spent in the validating status.
	ValidationDelay time.Duration
	// GenerationDelay is the base pause spent in the generating status.
	GenerationDelay time.Duration
	// GenerationJitter is the upper bound of random extra generating time.
	GenerationJitter time.Duration
	// SuccessResetDelay is how long the success status lingers before the
	// lifecycle returns to idle.
	SuccessResetDelay time.Duration
}

// DefaultConfig mirrors the production timings.
func DefaultConfig() Config {
	return Config{
		ValidationDelay:   500 * time.Millisecond,
		GenerationDelay:   1500 * time.Millisecond,
		GenerationJitter:  time.Second,
		SuccessResetDelay: time.Second,
	}
}

// Result reports the outcome of one generation run.
type Result struct {
	ComponentName string
	Code          string
}

// Generator drives the simulated generation lifecycle against a workspace
// store. At most one run may be active at a time.
type Generator struct {
	store  *workspace.Store
	config Config

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewGenerator(store *workspace.Store, config Config) *Generator {
	return &Generator{
		store:  store,
		config: config,
	}
}

// Generate runs the full lifecycle for a prompt: validate, simulate work,
// pick a catalog component, persist it with its first version and append the
// conversation turns. Failures surface on the store as an error status plus
// a retryable error turn; cancellation resets to idle and appends nothing.
func (g *Generator) Generate(ctx context.Context, prompt string) (*Result, error) {
	runCtx, err := g.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer g.end()

	if result := validation.ValidatePrompt(prompt); !result.IsValid {
		return nil, g.fail(result.Errors[0], false)
	}
	if _, ok := g.store.ActiveProject(); !ok {
		return nil, g.fail(NoProjectMessage, false)
	}

	if _, err := g.store.AddUserMessage(ctx, prompt); err != nil {
		return nil, g.fail(fmt.Sprintf("failed to record prompt: %v", err), true)
	}

	g.store.SetGenerationStatus(models.GenerationStatusValidating)
	g.store.SetGenerationError("")
	if err := g.wait(runCtx, g.config.ValidationDelay); err != nil {
		return nil, g.cancelled()
	}

	g.store.SetGenerationStatus(models.GenerationStatusGenerating)
	delay := g.config.GenerationDelay
	if g.config.GenerationJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(g.config.GenerationJitter)))
	}
	if err := g.wait(runCtx, delay); err != nil {
		return nil, g.cancelled()
	}

	name := RouteComponentName(prompt)
	code, _ := CatalogCode(name)

	if _, err := g.store.AddGeneratedComponent(ctx, name, prompt, code); err != nil {
		return nil, g.fail(fmt.Sprintf("failed to save component: %v", err), true)
	}
	if _, err := g.store.AddAssistantMessage(ctx, successMessage(name), name); err != nil {
		return nil, g.fail(fmt.Sprintf("failed to record response: %v", err), true)
	}

	g.store.SetGenerationStatus(models.GenerationStatusSuccess)
	if g.config.SuccessResetDelay > 0 {
		time.AfterFunc(g.config.SuccessResetDelay, func() {
			if g.store.State().GenerationStatus == models.GenerationStatusSuccess {
				g.store.SetGenerationStatus(models.GenerationStatusIdle)
			}
		})
	} else {
		g.store.SetGenerationStatus(models.GenerationStatusIdle)
	}

	return &Result{ComponentName: name, Code: code}, nil
}

// Cancel aborts the in-flight run, if any. The run ends in the idle status
// with no conversation turns appended.
func (g *Generator) Cancel() {
	g.mu.Lock()
	cancel := g.cancel
	g.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// begin installs the in-flight guard and derives the cancellable run context.
func (g *Generator) begin(ctx context.Context) (context.Context, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		return nil, ErrInProgress
	}
	runCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	return runCtx, nil
}

func (g *Generator) end() {
	g.mu.Lock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.mu.Unlock()
}

// wait sleeps for d unless the run is cancelled first. Cancellation is
// checked before sleeping so an already-cancelled run never waits.
func (g *Generator) wait(ctx context.Context, d time.Duration) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ErrCancelled
	case <-timer.C:
		return nil
	}
}

func (g *Generator) fail(errText string, isRetryable bool) error {
	g.store.SetGenerationStatus(models.GenerationStatusError)
	g.store.SetGenerationError(errText)
	g.store.AddErrorMessage(errText, isRetryable)
	return errors.New(errText)
}

func (g *Generator) cancelled() error {
	g.store.SetGenerationStatus(models.GenerationStatusIdle)
	g.store.SetGenerationError("")
	return ErrCancelled
}

func successMessage(componentName string) string {
	return fmt.Sprintf("I've created a %s component based on your description. The component uses Tailwind CSS for styling and follows best practices for accessibility and performance. You can preview it on the right and copy the code to use in your project.", componentName)
}
