package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/lifecycle"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/skills"
	"github.com/conclave-run/conclave/pkg/store/memstore"
)

// stubAgent is the minimal live-agent implementation the API tests need:
// it boots instantly and terminates on request.
type stubAgent struct {
	snap *models.AgentSnapshot
	done chan struct{}
}

func (a *stubAgent) AgentID() string  { return a.snap.AgentID }
func (a *stubAgent) TaskID() string   { return a.snap.TaskID }
func (a *stubAgent) ParentID() string { return a.snap.ParentID }

func (a *stubAgent) Start(context.Context) {}
func (a *stubAgent) Stop()                 { a.terminate() }
func (a *stubAgent) StopForPause()         { a.terminate() }
func (a *stubAgent) Done() <-chan struct{} { return a.done }

func (a *stubAgent) terminate() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

func (a *stubAgent) State(context.Context) (*models.AgentSnapshot, error) {
	return a.snap.Clone(), nil
}

func (a *stubAgent) PostUserMessage(string)                       {}
func (a *stubAgent) TriggerConsensus()                            {}
func (a *stubAgent) NotifyChildSpawned(string)                    {}
func (a *stubAgent) NotifyChildDismissed(string)                  {}
func (a *stubAgent) NotifySpawnFailed(string, string)             {}
func (a *stubAgent) SetBudget(budget.Budget)                      {}
func (a *stubAgent) CommitBudget(decimal.Decimal)                 {}
func (a *stubAgent) ReleaseBudget(decimal.Decimal, decimal.Decimal) {}
func (a *stubAgent) BeginDismissing()                             {}

type apiProfiles struct{}

func (apiProfiles) Profile(name string) (lifecycle.Profile, bool) {
	if name == "default" {
		return apiProfiles{}.Default(), true
	}
	return lifecycle.Profile{}, false
}

func (apiProfiles) Default() lifecycle.Profile {
	return lifecycle.Profile{Name: "default", ModelPool: []string{"gpt-5"}, CapabilityGroups: []string{"core"}}
}

func newTestServer(t *testing.T) (*httptest.Server, *memstore.Store) {
	t.Helper()
	logger := slog.Default()
	st := memstore.New()
	bus := events.NewBus(st, logger)
	library, err := skills.NewLibrary(t.TempDir(), logger)
	require.NoError(t, err)

	manager := lifecycle.NewManager(lifecycle.Deps{
		Store:    st,
		Registry: registry.New(),
		Bus:      bus,
		Skills:   library,
		Profiles: apiProfiles{},
		Factory: func(snap *models.AgentSnapshot) lifecycle.Agent {
			return &stubAgent{snap: snap, done: make(chan struct{})}
		},
		Logger: logger,
	}, lifecycle.Config{
		PauseGrace: 10 * time.Millisecond,
		PausePoll:  5 * time.Millisecond,
	})
	t.Cleanup(manager.Shutdown)

	server := NewServer(manager, st, events.NewConnectionManager(bus, time.Second, logger), nil, nil, logger)
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateTaskEndpoint(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/tasks", map[string]any{
		"prompt":     "find the memory leak",
		"max_budget": 50.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[models.Task](t, resp)
	assert.Equal(t, models.TaskStatusRunning, task.Status)

	stored, err := st.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "find the memory leak", stored.Prompt)
}

func TestCreateTaskValidation(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/tasks", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/api/tasks", map[string]any{"prompt": "x", "max_budget": -5.0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/api/tasks", map[string]any{"prompt": "x", "profile": "nonexistent"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetTaskEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/tasks", map[string]any{"prompt": "check the queue depth"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[models.Task](t, resp)

	resp2, err := http.Get(ts.URL + "/api/tasks/" + task.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	body := decode[TaskResponse](t, resp2)
	assert.Equal(t, task.ID, body.Task.ID)
	require.Len(t, body.Agents, 1)
	assert.Equal(t, "", body.Agents[0].ParentID)

	resp3, err := http.Get(ts.URL + "/api/tasks/nonexistent")
	require.NoError(t, err)
	resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestMessageWithoutRootConflicts(t *testing.T) {
	ts, st := newTestServer(t)
	require.NoError(t, st.CreateTask(context.Background(), &models.Task{
		ID: "task-empty", Prompt: "p", Status: models.TaskStatusPaused, ProfileName: "default", CreatedAt: time.Now(),
	}))

	resp := postJSON(t, ts.URL+"/api/tasks/task-empty/message", map[string]any{"content": "hello"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestPauseAndRestoreEndpoints(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/tasks", map[string]any{"prompt": "long running audit"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[models.Task](t, resp)

	// Restoring a running task is a conflict.
	resp2 := postJSON(t, ts.URL+"/api/tasks/"+task.ID+"/restore", nil)
	resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)

	resp3 := postJSON(t, ts.URL+"/api/tasks/"+task.ID+"/pause", nil)
	resp3.Body.Close()
	require.Equal(t, http.StatusAccepted, resp3.StatusCode)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		stored, err := st.GetTask(context.Background(), task.ID)
		require.NoError(t, err)
		if stored.Status == models.TaskStatusPaused {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	resp4 := postJSON(t, ts.URL+"/api/tasks/"+task.ID+"/restore", nil)
	resp4.Body.Close()
	assert.Equal(t, http.StatusOK, resp4.StatusCode)
}

func TestDeleteTaskEndpoint(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/tasks", map[string]any{"prompt": "short errand"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[models.Task](t, resp)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/tasks/"+task.ID, nil)
	require.NoError(t, err)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)

	_, err = st.GetTask(context.Background(), task.ID)
	assert.Error(t, err)
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
