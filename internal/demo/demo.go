// Package demo runs the scripted demonstration of the sequence stores.
package demo

import (
	"context"
	"io"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/strseq/adapter/contiguous"
	"go.llib.dev/strseq/adapter/linked"
	"go.llib.dev/strseq/pkg/seqkit"
	"go.llib.dev/strseq/port/sequence"
)

const ErrUnknownBackend errorkit.Error = "unknown sequence backend"

const (
	BackendContiguous = "contiguous"
	BackendLinked     = "linked"
)

type Config struct {
	Backend  string `env:"STRSEQ_BACKEND" default:"contiguous" enum:"contiguous;linked;"`
	Capacity int    `env:"STRSEQ_CAPACITY" default:"1"`
	Indexing string `env:"STRSEQ_INDEXING" default:"literal" enum:"literal;from-end;"`
	LogLevel string `env:"STRSEQ_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;"`
}

func LoadConfig() (Config, error) {
	var c Config
	return c, env.Load(&c)
}

func (c Config) Logger(out io.Writer) *logging.Logger {
	return &logging.Logger{Out: out, Level: logging.Level(c.LogLevel)}
}

func (c Config) MakeSequence(logger *logging.Logger) (sequence.Sequence, error) {
	opts := []sequence.Option{
		sequence.WithIndexing(sequence.Indexing(c.Indexing)),
		sequence.WithLogger(logger),
	}
	switch c.Backend {
	case BackendContiguous, "":
		return contiguous.New(c.Capacity, opts...), nil
	case BackendLinked:
		return linked.New(opts...), nil
	default:
		return nil, ErrUnknownBackend.F("%q", c.Backend)
	}
}

// Run executes the demonstration script on seq and prints the rendering to out after each phase.
//
//	insert STRING1 at 0, append STRING4, insert STRING2 at 0, insert STRING3 at 1
//	-> [STRING2,STRING3,STRING1,STRING4]
//	remove STRING3
//	-> [STRING2,STRING1,STRING4]
func Run(ctx context.Context, seq sequence.Sequence, out io.Writer, logger *logging.Logger) (rErr error) {
	defer errorkit.Finish(&rErr, seq.Close)

	steps := []struct {
		Name string
		Do   func() error
	}{
		{Name: "insert", Do: func() error { return seq.Insert(0, "STRING1") }},
		{Name: "append", Do: func() error { seq.Append("STRING4"); return nil }},
		{Name: "insert", Do: func() error { return seq.Insert(0, "STRING2") }},
		{Name: "insert", Do: func() error { return seq.Insert(1, "STRING3") }},
		{Name: "print", Do: func() error { return seqkit.Fprint(out, seq) }},
		{Name: "remove", Do: func() error { return seq.Remove("STRING3") }},
		{Name: "print", Do: func() error { return seqkit.Fprint(out, seq) }},
	}

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.Do(); err != nil {
			logger.Error(ctx, "demo step failed",
				logging.Field("step", i),
				logging.Field("op", step.Name),
				logging.ErrField(err))
			return err
		}
		ds := []logging.Detail{
			logging.Field("step", i),
			logging.Field("op", step.Name),
			logging.Field("len", seq.Len()),
		}
		if c, ok := seq.(sequence.Capacitor); ok {
			ds = append(ds, logging.Field("cap", c.Cap()))
		}
		logger.Info(ctx, "demo step done", ds...)
	}
	return nil
}
