package demo_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/strseq/adapter/contiguous"
	"go.llib.dev/strseq/adapter/linked"
	"go.llib.dev/strseq/internal/demo"
	"go.llib.dev/strseq/port/sequence"
)

const expectedOutput = "[STRING2,STRING3,STRING1,STRING4]\n[STRING2,STRING1,STRING4]\n"

func TestRun(t *testing.T) {
	for _, backend := range []string{demo.BackendContiguous, demo.BackendLinked} {
		t.Run(backend, func(t *testing.T) {
			c := demo.Config{Backend: backend, Capacity: 1, Indexing: string(sequence.LiteralIndexing)}
			var logs bytes.Buffer
			logger := c.Logger(&logs)

			seq, err := c.MakeSequence(logger)
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, demo.Run(context.Background(), seq, &out, logger))
			require.Equal(t, expectedOutput, out.String())
			require.Contains(t, logs.String(), "demo step done")
			require.Equal(t, 0, seq.Len(), "the sequence is closed after the run")
		})
	}
}

func TestRun_canceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	seq := linked.New()
	err := demo.Run(ctx, seq, io.Discard, &logging.Logger{Out: io.Discard})
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, 0, seq.Len())
}

func TestRun_stepFailure(t *testing.T) {
	seq := contiguous.New(1)
	seq.Append("STRING0")

	var logs bytes.Buffer
	logger := &logging.Logger{Out: &logs}
	// removal is forced to fail, every other step runs on the real store
	err := demo.Run(context.Background(), &failingRemove{Sequence: seq}, io.Discard, logger)
	require.Error(t, err)
	require.True(t, errors.Is(err, sequence.ErrNotFound))
	require.Contains(t, logs.String(), "demo step failed")
}

type failingRemove struct{ sequence.Sequence }

func (failingRemove) Remove(string) error { return sequence.ErrNotFound }

func TestConfig_MakeSequence(t *testing.T) {
	c := demo.Config{Backend: demo.BackendContiguous, Capacity: 4}
	seq, err := c.MakeSequence(&logging.Logger{Out: io.Discard})
	require.NoError(t, err)
	arr, ok := seq.(*contiguous.Store)
	require.True(t, ok)
	require.Equal(t, 4, arr.Cap())

	c = demo.Config{Backend: demo.BackendLinked}
	seq, err = c.MakeSequence(&logging.Logger{Out: io.Discard})
	require.NoError(t, err)
	_, ok = seq.(*linked.Store)
	require.True(t, ok)

	c = demo.Config{Backend: "btree"}
	_, err = c.MakeSequence(&logging.Logger{Out: io.Discard})
	require.True(t, errors.Is(err, demo.ErrUnknownBackend))
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := demo.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, demo.BackendContiguous, c.Backend)
		require.Equal(t, 1, c.Capacity)
		require.Equal(t, string(sequence.LiteralIndexing), c.Indexing)
		require.Equal(t, "info", c.LogLevel)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("STRSEQ_BACKEND", "linked")
		t.Setenv("STRSEQ_CAPACITY", "16")
		t.Setenv("STRSEQ_INDEXING", "from-end")
		t.Setenv("STRSEQ_LOG_LEVEL", "debug")

		c, err := demo.LoadConfig()
		require.NoError(t, err)
		require.Equal(t, demo.BackendLinked, c.Backend)
		require.Equal(t, 16, c.Capacity)
		require.Equal(t, string(sequence.FromEndIndexing), c.Indexing)
		require.Equal(t, "debug", c.LogLevel)
	})

	t.Run("invalid backend", func(t *testing.T) {
		t.Setenv("STRSEQ_BACKEND", "btree")

		_, err := demo.LoadConfig()
		require.Error(t, err)
	})
}
