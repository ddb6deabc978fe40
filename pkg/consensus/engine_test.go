package consensus

import (
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/actions"
)

// stubEmbedder returns canned vectors keyed by text and charges a fixed
// per-call cost so tests can assert cost accumulation.
type stubEmbedder struct {
	vectors map[string][]float64
	cost    decimal.Decimal
	calls   int
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float64, decimal.Decimal, error) {
	s.calls++
	out := make([][]float64, len(texts))
	for i, t := range texts {
		v, ok := s.vectors[t]
		if !ok {
			v = []float64{1, 0, 0}
		}
		out[i] = v
	}
	return out, s.cost, nil
}

func newEngine(emb Embedder) *Engine {
	return NewEngine(actions.NewRegistry(), emb, slog.Default())
}

func act(t actions.Type, params map[string]any) actions.Action {
	return actions.Action{Type: t, Params: params}
}

func TestTypeSelectionByCount(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeOrient, map[string]any{"reflection": "same"}),
		act(actions.TypeOrient, map[string]any{"reflection": "same"}),
		act(actions.TypeShell, map[string]any{"command": "ls"}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, actions.TypeOrient, res.Action.Type)
}

// On a count tie the lower-priority type wins: wait (1) beats shell (10).
func TestTypeSelectionTiebreakByPriority(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeShell, map[string]any{"command": "rm -rf build"}),
		act(actions.TypeWait, map[string]any{"wait": true}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, actions.TypeWait, res.Action.Type)
}

// Mixed wait votes [false, 30, true, 60] resolve to 45 seconds: booleans
// convert to 0 and 60, and the median of [0, 30, 60, 60] is 45.
func TestWaitMixedVotes(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeWait, map[string]any{"wait": false}),
		act(actions.TypeWait, map[string]any{"wait": float64(30)}),
		act(actions.TypeWait, map[string]any{"wait": true}),
		act(actions.TypeWait, map[string]any{"wait": float64(60)}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, float64(45), res.Action.Params["wait"])
}

func TestWaitBooleanQuorum(t *testing.T) {
	e := newEngine(nil)

	// Unanimous votes pass through.
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeWait, map[string]any{"wait": false}),
		act(actions.TypeWait, map[string]any{"wait": false}),
	})
	require.NoError(t, err)
	assert.Equal(t, false, res.Action.Params["wait"])

	// In a quorum of three or more, a single vote to wait wins.
	res, err = e.Decide(context.Background(), []actions.Action{
		act(actions.TypeWait, map[string]any{"wait": true}),
		act(actions.TypeWait, map[string]any{"wait": false}),
		act(actions.TypeWait, map[string]any{"wait": false}),
	})
	require.NoError(t, err)
	assert.Equal(t, true, res.Action.Params["wait"])

	// Two split votes are no agreement at all.
	res, err = e.Decide(context.Background(), []actions.Action{
		act(actions.TypeWait, map[string]any{"wait": true}),
		act(actions.TypeWait, map[string]any{"wait": false}),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Action)
	assert.Contains(t, res.Disagreement, "wait")
}

func TestWaitNumericMedian(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeWait, map[string]any{"wait": float64(10)}),
		act(actions.TypeWait, map[string]any{"wait": float64(20)}),
		act(actions.TypeWait, map[string]any{"wait": float64(90)}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, float64(20), res.Action.Params["wait"])

	// Even counts round the midpoint to a whole second.
	res, err = e.Decide(context.Background(), []actions.Action{
		act(actions.TypeWait, map[string]any{"wait": float64(10)}),
		act(actions.TypeWait, map[string]any{"wait": float64(15)}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, float64(13), res.Action.Params["wait"])
}

// Identical strings under a semantic rule never hit the embedder.
func TestSemanticIdenticalSkipsEmbedding(t *testing.T) {
	emb := &stubEmbedder{cost: decimal.RequireFromString("0.001")}
	e := newEngine(emb)

	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeSendMessage, map[string]any{"content": "done"}),
		act(actions.TypeSendMessage, map[string]any{"content": "done"}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, 0, emb.calls)
	assert.True(t, res.EmbeddingCost.IsZero())
}

func TestSemanticWithinThreshold(t *testing.T) {
	emb := &stubEmbedder{
		cost: decimal.RequireFromString("0.002"),
		vectors: map[string][]float64{
			"task finished ok": {1, 0.1, 0},
			"the task is done": {1, 0.12, 0},
		},
	}
	e := newEngine(emb)

	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeSendMessage, map[string]any{"content": "task finished ok"}),
		act(actions.TypeSendMessage, map[string]any{"content": "the task is done"}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, "task finished ok", res.Action.Params["content"])
	assert.Equal(t, 1, emb.calls)
	assert.True(t, res.EmbeddingCost.Equal(decimal.RequireFromString("0.002")))
}

func TestSemanticBelowThresholdNoConsensus(t *testing.T) {
	emb := &stubEmbedder{
		cost: decimal.RequireFromString("0.002"),
		vectors: map[string][]float64{
			"deploy to production": {1, 0, 0},
			"delete the database":  {0, 1, 0},
		},
	}
	e := newEngine(emb)

	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeSendMessage, map[string]any{"content": "deploy to production"}),
		act(actions.TypeSendMessage, map[string]any{"content": "delete the database"}),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Action)
	assert.NotEmpty(t, res.Disagreement)
	// The failed round still charges for the embedding it made.
	assert.True(t, res.EmbeddingCost.Equal(decimal.RequireFromString("0.002")))
}

func TestExactMatchDisagreement(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeShell, map[string]any{"command": "ls -la"}),
		act(actions.TypeShell, map[string]any{"command": "ls"}),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Action)
	assert.Contains(t, res.Disagreement, "command")
}

func TestUnionMerge(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeLearnSkills, map[string]any{"names": []string{"git", "docker"}}),
		act(actions.TypeLearnSkills, map[string]any{"names": []string{"docker", "k8s"}}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, []string{"git", "docker", "k8s"}, res.Action.Params["names"])
}

func TestPercentileMedian(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeRecordCost, map[string]any{"amount": float64(10)}),
		act(actions.TypeRecordCost, map[string]any{"amount": float64(20)}),
		act(actions.TypeRecordCost, map[string]any{"amount": float64(90)}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, float64(20), res.Action.Params["amount"])
}

func TestStructuralMerge(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeCallAPI, map[string]any{
			"url":     "https://api.example.com/v1",
			"headers": map[string]any{"Accept": "application/json"},
		}),
		act(actions.TypeCallAPI, map[string]any{
			"url":     "https://api.example.com/v1",
			"headers": map[string]any{"Authorization": "Bearer {{secret:TOKEN}}"},
		}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	headers := res.Action.Params["headers"].(map[string]any)
	assert.Equal(t, "application/json", headers["Accept"])
	assert.Equal(t, "Bearer {{secret:TOKEN}}", headers["Authorization"])
}

func TestModeSelectionFirstOnTie(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeFileRead, map[string]any{"path": "/a", "limit": float64(100)}),
		act(actions.TypeFileRead, map[string]any{"path": "/a", "limit": float64(100)}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, "/a", res.Action.Params["path"])
}

func TestBatchSequenceMerge(t *testing.T) {
	e := newEngine(nil)
	mkBatch := func(cmd string, amount float64) actions.Action {
		return act(actions.TypeBatchSync, map[string]any{
			"actions": []actions.Action{
				act(actions.TypeShell, map[string]any{"command": cmd}),
				act(actions.TypeRecordCost, map[string]any{"amount": amount}),
			},
		})
	}

	res, err := e.Decide(context.Background(), []actions.Action{
		mkBatch("make test", 10),
		mkBatch("make test", 30),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)

	subs := res.Action.Params["actions"].([]actions.Action)
	require.Len(t, subs, 2)
	assert.Equal(t, "make test", subs[0].Params["command"])
	assert.Equal(t, float64(20), subs[1].Params["amount"])
}

func TestBatchSequenceLengthMismatch(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeBatchSync, map[string]any{
			"actions": []actions.Action{
				act(actions.TypeShell, map[string]any{"command": "ls"}),
			},
		}),
		act(actions.TypeBatchSync, map[string]any{
			"actions": []actions.Action{
				act(actions.TypeShell, map[string]any{"command": "ls"}),
				act(actions.TypeOrient, map[string]any{"reflection": "hm"}),
			},
		}),
	})
	require.NoError(t, err)
	assert.Nil(t, res.Action)
}

// Same candidates, same decision, every time.
func TestDeterminism(t *testing.T) {
	e := newEngine(nil)
	candidates := []actions.Action{
		act(actions.TypeSpawnChild, map[string]any{
			"task_description": "summarize the report",
			"budget":           float64(10),
		}),
		act(actions.TypeSpawnChild, map[string]any{
			"task_description": "summarize the report",
			"budget":           float64(30),
		}),
		act(actions.TypeWait, map[string]any{"wait": true}),
	}

	first, err := e.Decide(context.Background(), candidates)
	require.NoError(t, err)
	require.NotNil(t, first.Action)

	for i := 0; i < 10; i++ {
		again, err := e.Decide(context.Background(), candidates)
		require.NoError(t, err)
		require.NotNil(t, again.Action)
		assert.Equal(t, first.Action, again.Action)
	}
}

func TestSingleCandidatePassesThrough(t *testing.T) {
	e := newEngine(nil)
	res, err := e.Decide(context.Background(), []actions.Action{
		act(actions.TypeOrient, map[string]any{"reflection": "alone"}),
	})
	require.NoError(t, err)
	require.NotNil(t, res.Action)
	assert.Equal(t, "alone", res.Action.Params["reflection"])
}
