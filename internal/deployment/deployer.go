package deployment

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/rxtech-lab/workspace-mcp/internal/models"
	"github.com/rxtech-lab/workspace-mcp/internal/utils"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

var (
	// ErrCancelled is returned when a deployment is cancelled mid-pipeline.
	ErrCancelled = errors.New("deployment cancelled")
	// ErrInProgress is returned when a deployment is started while another
	// is active.
	ErrInProgress = errors.New("a deployment is already in progress")
)

// CancelledMessage is the error recorded on a cancelled deployment.
const CancelledMessage = "Deployment cancelled"

// BuildFailureMessage is the error recorded when the failure sampler trips.
const BuildFailureMessage = "Build failed: TypeScript error in component"

// Step is one stage of the simulated pipeline.
type Step struct {
	Message  string
	Duration time.Duration
}

// PipelineSteps runs in order; each step logs its message after its duration
// elapses.
func PipelineSteps() []Step {
	return []Step{
		{Message: "Installing dependencies...", Duration: 800 * time.Millisecond},
		{Message: "Building application...", Duration: 1200 * time.Millisecond},
		{Message: "Optimizing assets...", Duration: 600 * time.Millisecond},
		{Message: "Running type checks...", Duration: 500 * time.Millisecond},
		{Message: "Generating static pages...", Duration: 700 * time.Millisecond},
		{Message: "Deploying to edge network...", Duration: 1000 * time.Millisecond},
		{Message: "Configuring CDN...", Duration: 400 * time.Millisecond},
		{Message: "Verifying deployment...", Duration: 300 * time.Millisecond},
	}
}

// FailureSampler decides whether a pipeline run fails after its steps
// complete. Injectable so tests can force either outcome.
type FailureSampler interface {
	ShouldFail() bool
}

// RandomFailureSampler fails a fixed fraction of runs.
type RandomFailureSampler struct {
	Rate float64
}

func (s RandomFailureSampler) ShouldFail() bool {
	return rand.Float64() < s.Rate
}

// Deployer drives the simulated deployment pipeline against a workspace
// store. At most one run may be active at a time.
type Deployer struct {
	store   *workspace.Store
	sampler FailureSampler
	steps   []Step

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewDeployer builds a deployer with the production pipeline. A nil sampler
// defaults to a 10% random failure rate.
func NewDeployer(store *workspace.Store, sampler FailureSampler) *Deployer {
	if sampler == nil {
		sampler = RandomFailureSampler{Rate: 0.1}
	}
	return &Deployer{
		store:   store,
		sampler: sampler,
		steps:   PipelineSteps(),
	}
}

// SetSteps replaces the pipeline steps. Intended for tests.
func (d *Deployer) SetSteps(steps []Step) {
	d.steps = steps
}

// Deploy runs the pipeline for the active project and returns the public URL
// on success. Every step appends a log entry; failure and cancellation mark
// the deployment failed with the specific message before returning.
func (d *Deployer) Deploy(ctx context.Context) (string, error) {
	project, ok := d.store.ActiveProject()
	if !ok {
		return "", workspace.ErrNoActiveProject
	}

	runCtx, err := d.begin(ctx)
	if err != nil {
		return "", err
	}
	defer d.end()

	if _, err := d.store.StartDeployment(ctx); err != nil {
		return "", err
	}
	d.store.AddDeploymentLog(ctx, models.DeploymentLogTypeInfo, "Starting deployment pipeline...")

	for _, step := range d.steps {
		if err := d.wait(runCtx, step.Duration); err != nil {
			d.store.AddDeploymentLog(ctx, models.DeploymentLogTypeWarning, "Deployment cancelled by user")
			if failErr := d.store.FailDeployment(ctx, CancelledMessage); failErr != nil {
				return "", failErr
			}
			return "", ErrCancelled
		}
		d.store.AddDeploymentLog(ctx, models.DeploymentLogTypeInfo, step.Message)
	}

	if d.sampler.ShouldFail() {
		d.store.AddDeploymentLog(ctx, models.DeploymentLogTypeError, BuildFailureMessage)
		if err := d.store.FailDeployment(ctx, BuildFailureMessage); err != nil {
			return "", err
		}
		return "", errors.New(BuildFailureMessage)
	}

	url := utils.DeploymentURL(project.Name)
	d.store.AddDeploymentLog(ctx, models.DeploymentLogTypeSuccess, "Deployment successful!")
	if err := d.store.CompleteDeployment(ctx, url); err != nil {
		return "", err
	}
	return url, nil
}

// Cancel aborts the in-flight deployment, if any.
func (d *Deployer) Cancel() {
	d.mu.Lock()
	cancel := d.cancel
	d.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (d *Deployer) begin(ctx context.Context) (context.Context, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return nil, ErrInProgress
	}
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	return runCtx, nil
}

func (d *Deployer) end() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()
}

// wait sleeps for d unless the run is cancelled first. Cancellation is
// checked before sleeping so an already-cancelled run never waits.
func (d *Deployer) wait(ctx context.Context, duration time.Duration) error {
	if ctx.Err() != nil {
		return ErrCancelled
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ErrCancelled
	case <-timer.C:
		return nil
	}
}
