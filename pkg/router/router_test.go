package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/masking"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/secrets"
	"github.com/conclave-run/conclave/pkg/shell"
	"github.com/conclave-run/conclave/pkg/skills"
	"github.com/conclave-run/conclave/pkg/store/memstore"
	"github.com/conclave-run/conclave/pkg/web"
)

var allCaps = []string{"core", "delegation", "system", "network", "mcp", "secrets", "skills", "batch"}

type fakeTree struct {
	spawned   []string
	dismissed []string
	adjusted  map[string]decimal.Decimal
	err       error
}

func (f *fakeTree) SpawnChild(_ context.Context, req SpawnRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := "child-of-" + req.ParentID
	f.spawned = append(f.spawned, id)
	return id, nil
}

func (f *fakeTree) DismissChild(_ context.Context, _, childID string) error {
	if f.err != nil {
		return f.err
	}
	f.dismissed = append(f.dismissed, childID)
	return nil
}

func (f *fakeTree) AdjustBudget(_ context.Context, req AdjustRequest) error {
	childID, amount := req.ChildID, req.NewAllocation
	if f.err != nil {
		return f.err
	}
	if f.adjusted == nil {
		f.adjusted = make(map[string]decimal.Decimal)
	}
	f.adjusted[childID] = amount
	return nil
}

type fakePoster struct {
	results chan ActionResult
	subs    chan BatchSubResult
}

func newFakePoster() *fakePoster {
	return &fakePoster{
		results: make(chan ActionResult, 16),
		subs:    make(chan BatchSubResult, 16),
	}
}

func (p *fakePoster) PostActionResult(r ActionResult)     { p.results <- r }
func (p *fakePoster) PostBatchSubResult(r BatchSubResult) { p.subs <- r }

type fakeSink struct {
	handleID string
	from     string
	content  string
}

func (s *fakeSink) AgentID() string  { return s.handleID }
func (s *fakeSink) TaskID() string   { return "t1" }
func (s *fakeSink) ParentID() string { return "" }
func (s *fakeSink) DeliverMessage(from, content string) {
	s.from = from
	s.content = content
}

type fakeLLM struct {
	text string
	cost decimal.Decimal
	err  error
}

func (f *fakeLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Text: f.text, Model: req.Model, Cost: f.cost}, nil
}

func (f *fakeLLM) Provider() string { return "fake" }

type testEnv struct {
	router   *Router
	store    *memstore.Store
	bus      *events.Bus
	agents   *registry.Registry
	tree     *fakeTree
	secrets  *secrets.Store
	scrubber *masking.Scrubber
	llm      *fakeLLM
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.Default()

	st := memstore.New()
	bus := events.NewBus(st, logger)
	agents := registry.New()
	tree := &fakeTree{}
	scrubber := masking.NewScrubber(logger)
	secretStore := secrets.NewStore(scrubber, logger)
	shellSvc := shell.NewService(100*time.Millisecond, nil, logger)
	t.Cleanup(shellSvc.Shutdown)
	library, err := skills.NewLibrary(t.TempDir(), logger)
	require.NoError(t, err)
	fakeModel := &fakeLLM{text: "42"}

	r := New(Deps{
		Actions:  actions.NewRegistry(),
		Agents:   agents,
		Tree:     tree,
		Shell:    shellSvc,
		Fetcher:  web.NewFetcher(2*time.Second, logger),
		API:      web.NewAPIClient(2*time.Second, 0, logger),
		Secrets:  secretStore,
		Skills:   library,
		Scrubber: scrubber,
		LLM:      fakeModel,
		Store:    st,
		Bus:      bus,
	}, Config{ActionTimeout: 5 * time.Second, AnswerModel: "answer-1"}, logger)

	return &testEnv{
		router:   r,
		store:    st,
		bus:      bus,
		agents:   agents,
		tree:     tree,
		secrets:  secretStore,
		scrubber: scrubber,
		llm:      fakeModel,
	}
}

func dispatch(env *testEnv, agentID, parentID string, action actions.Action, poster ResultPoster) ActionResult {
	return env.router.Dispatch(context.Background(), Invocation{
		TaskID:           "t1",
		AgentID:          agentID,
		ParentID:         parentID,
		CapabilityGroups: allCaps,
		Action:           action,
		Poster:           poster,
	})
}

func TestCapabilityDenied(t *testing.T) {
	env := newTestEnv(t)
	res := env.router.Dispatch(context.Background(), Invocation{
		TaskID:           "t1",
		AgentID:          "ag-1",
		CapabilityGroups: []string{"core"},
		Action:           actions.Action{Type: actions.TypeShell, Params: map[string]any{"command": "echo hi"}},
	})
	assert.Equal(t, "capability_denied", res.Reason)
}

func TestSendMessageToUser(t *testing.T) {
	env := newTestEnv(t)
	topic := events.TaskMessagesTopic("t1")
	sub := env.bus.Subscribe(topic)
	defer sub.Close()

	res := dispatch(env, "root", "", actions.Action{
		Type:   actions.TypeSendMessage,
		Params: map[string]any{"content": "all done"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "user", res.Outcome["delivered_to"])

	select {
	case event := <-sub.Events():
		assert.Equal(t, "all done", event.Payload["content"])
	case <-time.After(time.Second):
		t.Fatal("no task message published")
	}
}

func TestSendMessageToAgent(t *testing.T) {
	env := newTestEnv(t)
	sink := &fakeSink{handleID: "sibling"}
	env.agents.Register(sink)

	res := dispatch(env, "ag-1", "root", actions.Action{
		Type:   actions.TypeSendMessage,
		Params: map[string]any{"target_id": "sibling", "content": "status update"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "ag-1", sink.from)
	assert.Equal(t, "status update", sink.content)
}

func TestSendMessageUnknownTarget(t *testing.T) {
	env := newTestEnv(t)
	res := dispatch(env, "ag-1", "root", actions.Action{
		Type:   actions.TypeSendMessage,
		Params: map[string]any{"target_id": "ghost", "content": "hello"},
	}, nil)
	assert.Equal(t, "agent_not_found", res.Reason)
}

func TestSpawnDismissAdjustDelegate(t *testing.T) {
	env := newTestEnv(t)

	res := dispatch(env, "root", "", actions.Action{
		Type:   actions.TypeSpawnChild,
		Params: map[string]any{"task_description": "investigate"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "child-of-root", res.Outcome["child_id"])
	assert.Equal(t, "spawning", res.Outcome["status"])

	res = dispatch(env, "root", "", actions.Action{
		Type:   actions.TypeDismissChild,
		Params: map[string]any{"child_id": "child-of-root"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, []string{"child-of-root"}, env.tree.dismissed)

	res = dispatch(env, "root", "", actions.Action{
		Type:   actions.TypeAdjustBudget,
		Params: map[string]any{"child_id": "child-of-root", "new_allocation": 25.0},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.True(t, env.tree.adjusted["child-of-root"].Equal(decimal.NewFromInt(25)))
}

func TestDismissNotParent(t *testing.T) {
	env := newTestEnv(t)
	env.tree.err = ErrNotParent

	res := dispatch(env, "ag-a", "", actions.Action{
		Type:   actions.TypeDismissChild,
		Params: map[string]any{"child_id": "ag-b"},
	}, nil)
	assert.Equal(t, "not_parent", res.Reason)
	assert.Empty(t, env.tree.dismissed)
}

func TestShellSyncAndContinuation(t *testing.T) {
	env := newTestEnv(t)

	res := dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeShell,
		Params: map[string]any{"command": "echo hello", "mode": "sync"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "completed", res.Outcome["status"])
	assert.Contains(t, res.Outcome["output"], "hello")

	res = dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeShell,
		Params: map[string]any{"check_id": "no-such-command"},
	}, nil)
	assert.Equal(t, "unknown_check_id", res.Reason)
}

func TestShellInvalidWorkingDir(t *testing.T) {
	env := newTestEnv(t)
	res := dispatch(env, "ag-1", "", actions.Action{
		Type: actions.TypeShell,
		Params: map[string]any{
			"command":     "echo hi",
			"working_dir": "/definitely/not/a/dir",
		},
	}, nil)
	assert.Equal(t, "invalid_working_dir", res.Reason)
}

func TestFileWriteReadEdit(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "notes.txt")

	res := dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeFileWrite,
		Params: map[string]any{"path": path, "content": "alpha beta\n"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)

	res = dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeFileRead,
		Params: map[string]any{"path": path},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Contains(t, res.Outcome["content"], "alpha beta")

	res = dispatch(env, "ag-1", "", actions.Action{
		Type: actions.TypeFileWrite,
		Params: map[string]any{
			"path":       path,
			"old_string": "beta",
			"new_string": "gamma",
		},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, 1, res.Outcome["replacements"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha gamma\n", string(data))
}

func TestCallAPIResolvesAndScrubsSecrets(t *testing.T) {
	env := newTestEnv(t)
	env.secrets.Put("API_TOKEN", "tok-S3CRET-value")

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		// Echo the token back so scrubbing has something to catch.
		_, _ = w.Write([]byte("token was tok-S3CRET-value"))
	}))
	defer server.Close()

	res := dispatch(env, "ag-1", "", actions.Action{
		Type: actions.TypeCallAPI,
		Params: map[string]any{
			"url":    server.URL,
			"method": "GET",
			"headers": map[string]any{
				"Authorization": "Bearer {{secret:API_TOKEN}}",
			},
		},
	}, nil)
	require.False(t, res.Failed(), res.Reason)

	// Real value went out on the wire.
	assert.Equal(t, "Bearer tok-S3CRET-value", gotAuth)
	// But never came back to the agent.
	body, _ := res.Outcome["body"].(string)
	assert.NotContains(t, body, "tok-S3CRET-value")
	assert.Contains(t, body, "{{secret:API_TOKEN}}")
}

func TestCallAPIUnknownSecretFails(t *testing.T) {
	env := newTestEnv(t)
	res := dispatch(env, "ag-1", "", actions.Action{
		Type: actions.TypeCallAPI,
		Params: map[string]any{
			"url":  "http://127.0.0.1:1/",
			"body": "key={{secret:NOPE}}",
		},
	}, nil)
	assert.Equal(t, "secret_not_found", res.Reason)
}

func TestGenerateAndSearchSecrets(t *testing.T) {
	env := newTestEnv(t)

	res := dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeGenerateSecret,
		Params: map[string]any{"name": "DB_PASS"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "{{secret:DB_PASS}}", res.Outcome["placeholder"])
	// The value itself never appears in the outcome.
	for _, v := range res.Outcome {
		if s, ok := v.(string); ok {
			assert.False(t, env.secrets.Has(s))
		}
	}

	res = dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeSearchSecrets,
		Params: map[string]any{"query": "db"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, []any{"DB_PASS"}, res.Outcome["names"])
}

func TestAnswerEngineRecordsCost(t *testing.T) {
	env := newTestEnv(t)
	env.llm.text = "the answer"
	env.llm.cost = decimal.RequireFromString("0.003")

	res := dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeAnswerEngine,
		Params: map[string]any{"query": "what is the answer"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "the answer", res.Outcome["answer"])

	total, err := env.store.SumCosts(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.003")))
}

func TestRecordCost(t *testing.T) {
	env := newTestEnv(t)
	res := dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeRecordCost,
		Params: map[string]any{"amount": 1.5, "description": "cloud vm"},
	}, nil)
	require.False(t, res.Failed(), res.Reason)

	total, err := env.store.SumAgentCosts(context.Background(), "t1", "ag-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("1.5")))
}

func TestBatchSyncEarlyTermination(t *testing.T) {
	env := newTestEnv(t)
	poster := newFakePoster()

	res := dispatch(env, "ag-1", "", actions.Action{
		Type: actions.TypeBatchSync,
		Params: map[string]any{
			"actions": []actions.Action{
				{Type: actions.TypeShell, Params: map[string]any{"command": "echo one", "mode": "sync"}},
				{Type: actions.TypeFetchWeb, Params: map[string]any{"url": "http://127.0.0.1:1/"}},
				{Type: actions.TypeTodo, Params: map[string]any{"items": []map[string]any{{"content": "x", "state": "todo"}}}},
			},
		},
	}, poster)

	require.True(t, res.Failed())
	assert.Equal(t, "connection_refused", res.Reason)
	assert.Equal(t, 1, res.Outcome["failed_at"])

	// First success preserved, third action never attempted.
	results, _ := res.Outcome["results"].([]any)
	require.Len(t, results, 1)

	// Two bookkeeping notices: the success and the failure.
	assert.Len(t, poster.subs, 2)
}

func TestBatchAsyncPostsCompletion(t *testing.T) {
	env := newTestEnv(t)
	poster := newFakePoster()

	res := dispatch(env, "ag-1", "", actions.Action{
		Type: actions.TypeBatchAsync,
		Params: map[string]any{
			"actions": []actions.Action{
				{Type: actions.TypeShell, Params: map[string]any{"command": "echo a", "mode": "sync"}},
				{Type: actions.TypeShell, Params: map[string]any{"command": "echo b", "mode": "sync"}},
			},
		},
	}, poster)

	require.False(t, res.Failed(), res.Reason)
	assert.Equal(t, "running", res.Outcome["status"])
	batchID, _ := res.Outcome["batch_id"].(string)
	assert.NotEmpty(t, batchID)

	select {
	case final := <-poster.results:
		assert.Equal(t, batchID, final.ActionID)
		assert.Equal(t, actions.TypeBatchAsync, final.ActionType)
		assert.False(t, final.Failed())
	case <-time.After(5 * time.Second):
		t.Fatal("batch completion never posted")
	}
	assert.Len(t, poster.subs, 2)
}

func TestOutcomeTruncation(t *testing.T) {
	env := newTestEnv(t)
	env.router.cfg.MaxResultBytes = 64

	res := dispatch(env, "ag-1", "", actions.Action{
		Type:   actions.TypeOrient,
		Params: map[string]any{"reflection": strings.Repeat("x", 500)},
	}, nil)
	require.False(t, res.Failed(), res.Reason)
	reflection, _ := res.Outcome["reflection"].(string)
	assert.True(t, strings.HasSuffix(reflection, truncationMarker))
	assert.Less(t, len(reflection), 200)
}

func TestUnknownActionType(t *testing.T) {
	env := newTestEnv(t)
	res := dispatch(env, "ag-1", "", actions.Action{Type: "teleport"}, nil)
	assert.Equal(t, "unknown_action", res.Reason)
}
