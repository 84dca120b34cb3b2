package camunda

import (
	"sort"
	"sync"
	"time"

	"assessment-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// HandlerFunc processes one activated job. It must complete, fail or throw
// the job itself.
type HandlerFunc func(client worker.JobClient, job entities.Job)

// WorkerOptions configures one job worker subscription.
type WorkerOptions struct {
	TaskType      string
	Name          string
	MaxJobsActive int
	Timeout       time.Duration
	PollInterval  time.Duration
}

// JobWorkerOpener is the slice of zbc.Client used to open subscriptions.
type JobWorkerOpener interface {
	NewJobWorker() worker.JobWorkerBuilderStep1
}

// Manager owns the job workers opened for this process.
type Manager struct {
	client  JobWorkerOpener
	logger  logger.Logger
	mu      sync.Mutex
	workers map[string]worker.JobWorker
}

var _ JobWorkerOpener = zbc.Client(nil)

func NewManager(client JobWorkerOpener, log logger.Logger) *Manager {
	return &Manager{
		client:  client,
		logger:  log,
		workers: make(map[string]worker.JobWorker),
	}
}

// Start opens a subscription for opts.TaskType. Starting the same task type
// twice is a no-op.
func (m *Manager) Start(opts WorkerOptions, handler HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, running := m.workers[opts.TaskType]; running {
		m.logger.Warn("worker already started", map[string]interface{}{"taskType": opts.TaskType})
		return
	}

	builder := m.client.NewJobWorker().
		JobType(opts.TaskType).
		Handler(worker.JobHandler(handler))

	step := builder.MaxJobsActive(maxInt(opts.MaxJobsActive, 1))
	if opts.Timeout > 0 {
		step = step.Timeout(opts.Timeout)
	}
	if opts.PollInterval > 0 {
		step = step.PollInterval(opts.PollInterval)
	}
	if opts.Name != "" {
		step = step.Name(opts.Name)
	}

	m.workers[opts.TaskType] = step.Open()

	m.logger.Info("worker started", map[string]interface{}{
		"taskType":      opts.TaskType,
		"maxJobsActive": opts.MaxJobsActive,
		"timeout_ms":    opts.Timeout.Milliseconds(),
	})
}

// TaskTypes lists the running subscriptions in sorted order.
func (m *Manager) TaskTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.workers))
	for tt := range m.workers {
		out = append(out, tt)
	}
	sort.Strings(out)
	return out
}

// Stop closes every subscription and waits for in-flight jobs.
func (m *Manager) Stop() {
	m.mu.Lock()
	workers := m.workers
	m.workers = make(map[string]worker.JobWorker)
	m.mu.Unlock()

	for taskType, w := range workers {
		m.logger.Info("stopping worker", map[string]interface{}{"taskType": taskType})
		w.Close()
		w.AwaitClose()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
