package batch

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

func docs(texts ...string) []*ingestion.Document {
	out := make([]*ingestion.Document, len(texts))
	for i, text := range texts {
		out[i] = &ingestion.Document{Path: text + ".txt", Text: text}
	}
	return out
}

func echoParse(_ context.Context, raw string) (*types.ExtractionRecord, error) {
	return &types.ExtractionRecord{UniqueID: raw, RawText: raw}, nil
}

func TestRun_PreservesInputOrder(t *testing.T) {
	items, err := Run(context.Background(), docs("a", "b", "c"), 2, echoParse, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Record.RawText)
	assert.Equal(t, "b", items[1].Record.RawText)
	assert.Equal(t, "c", items[2].Record.RawText)
}

func TestRun_DocumentFailureIsIsolated(t *testing.T) {
	failing := func(ctx context.Context, raw string) (*types.ExtractionRecord, error) {
		if strings.Contains(raw, "bad") {
			return nil, errors.New("unparseable")
		}
		return echoParse(ctx, raw)
	}

	items, err := Run(context.Background(), docs("good", "bad", "fine"), 2, failing, nil)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.NoError(t, items[0].Err)
	assert.Error(t, items[1].Err)
	assert.Nil(t, items[1].Record)
	assert.NoError(t, items[2].Err)

	records := Records(items)
	require.Len(t, records, 2)
	assert.Equal(t, "good", records[0].RawText)
	assert.Equal(t, "fine", records[1].RawText)
}

func TestRun_RespectsWorkerLimit(t *testing.T) {
	var current, peak atomic.Int32
	gate := make(chan struct{})

	counting := func(ctx context.Context, raw string) (*types.ExtractionRecord, error) {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		<-gate
		current.Add(-1)
		return echoParse(ctx, raw)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Run(context.Background(), docs("a", "b", "c", "d", "e"), 2, counting, nil)
	}()

	// Release all workers once they have had a chance to pile up.
	for i := 0; i < 5; i++ {
		gate <- struct{}{}
	}
	<-done

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, docs("a", "b"), 1, echoParse, nil)
	require.Error(t, err)
}

func TestRun_EmptyInput(t *testing.T) {
	items, err := Run(context.Background(), nil, 4, echoParse, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
