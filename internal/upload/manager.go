package upload

import (
	"context"
	"sync"

	"github.com/example/studyshare-platform/internal/store"
)

// Manager tracks the session's upload tasks by id.
type Manager struct {
	sim *Simulator

	mu    sync.RWMutex
	tasks map[string]*Task
}

func NewManager(sim *Simulator) *Manager {
	return &Manager{sim: sim, tasks: make(map[string]*Task)}
}

// Start validates and launches an upload, registering the task.
func (m *Manager) Start(ctx context.Context, req Request) (*Task, error) {
	// Detach from the request context: the task outlives the HTTP call and
	// is cancelled explicitly through Cancel.
	t, err := m.sim.Start(context.WithoutCancel(ctx), req)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.tasks[t.ID] = t
	m.mu.Unlock()
	return t, nil
}

// Get returns a registered task or store.ErrNotFound.
func (m *Manager) Get(taskID string) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[taskID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

// Cancel aborts a registered task. Unknown ids are a no-op, mirroring the
// idempotent delete semantics elsewhere.
func (m *Manager) Cancel(taskID string) {
	m.mu.RLock()
	t, ok := m.tasks[taskID]
	m.mu.RUnlock()
	if ok {
		t.Cancel()
	}
}
