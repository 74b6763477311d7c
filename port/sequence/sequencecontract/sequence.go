package sequencecontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/strseq/internal/spechelper"
	"go.llib.dev/strseq/port/sequence"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

type Config struct {
	// MakeValue makes a fresh text value for the tests.
	MakeValue func(testing.TB) string
	// Indexing is the policy the subject was made with.
	// It decides what negative indexes are expected to point at.
	Indexing sequence.Indexing
}

func (c Config) Configure(t *Config) {
	t.MakeValue = zerokit.Coalesce(c.MakeValue, t.MakeValue)
	t.Indexing = zerokit.Coalesce(c.Indexing, t.Indexing)
}

func (c Config) makeValue(tb testing.TB) string {
	return zerokit.Coalesce(c.MakeValue, spechelper.MakeText)(tb)
}

func (c Config) indexing() sequence.Indexing {
	return zerokit.Coalesce(c.Indexing, sequence.DefaultIndexing)
}

type Option option.Option[Config]

// Sequence is the behavioural contract of a sequence.Sequence.
// The Make function must return an empty sequence.
func Sequence(mk contract.Make[sequence.Sequence], opts ...Option) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[Config, Option](opts)

	seq := let.Var(s, func(t *testcase.T) sequence.Sequence {
		subject := mk(t)
		t.Defer(func() { _ = subject.Close() })
		return subject
	})

	values := let.Var(s, func(t *testcase.T) []string {
		return random.Slice(t.Random.IntBetween(3, 7), func() string {
			return c.makeValue(t)
		}, random.UniqueValues)
	})

	withValues := func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) sequence.Sequence {
			subject := seq.Super(t)
			subject.Append(values.Get(t)...)
			return subject
		})
	}

	s.Test("a new sequence is empty", func(t *testcase.T) {
		assert.Equal(t, 0, seq.Get(t).Len())
		assert.Empty(t, collect(seq.Get(t)))
	})

	s.Test("round trip: appended values read back in insertion order", func(t *testcase.T) {
		seq.Get(t).Append(values.Get(t)...)

		for i, exp := range values.Get(t) {
			got, err := seq.Get(t).Read(i)
			assert.NoError(t, err)
			assert.Equal(t, exp, got)
		}
		assert.Equal(t, values.Get(t), collect(seq.Get(t)))
	})

	s.Test("scenario: mixed inserts, appends and a removal", func(t *testcase.T) {
		subject := seq.Get(t)
		assert.NoError(t, subject.Insert(0, "STRING1"))
		subject.Append("STRING4")
		assert.NoError(t, subject.Insert(0, "STRING2"))
		assert.NoError(t, subject.Insert(1, "STRING3"))
		assert.Equal(t, []string{"STRING2", "STRING3", "STRING1", "STRING4"}, collect(subject))

		assert.NoError(t, subject.Remove("STRING3"))
		assert.Equal(t, []string{"STRING2", "STRING1", "STRING4"}, collect(subject))
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) string {
			return c.makeValue(t)
		})
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Append(value.Get(t))
		})

		s.Then("the value becomes the last element", func(t *testcase.T) {
			act(t)

			got, err := seq.Get(t).Read(seq.Get(t).Len() - 1)
			assert.NoError(t, err)
			assert.Equal(t, value.Get(t), got)
		})

		s.Then("length increases by exactly one", func(t *testcase.T) {
			before := seq.Get(t).Len()
			act(t)
			assert.Equal(t, before+1, seq.Get(t).Len())
		})

		s.Test("appending no values changes nothing", func(t *testcase.T) {
			seq.Get(t).Append()
			assert.Equal(t, 0, seq.Get(t).Len())
		})

		s.When("the sequence already has values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("the value is added after the existing ones", func(t *testcase.T) {
				act(t)

				exp := append(append([]string{}, values.Get(t)...), value.Get(t))
				assert.Equal(t, exp, collect(seq.Get(t)))
			})
		})

		s.Test("many values keep their order", func(t *testcase.T) {
			t.Random.Repeat(3, 7, func() {
				v := c.makeValue(t)
				before := seq.Get(t).Len()
				seq.Get(t).Append(v)
				assert.Equal(t, before+1, seq.Get(t).Len())

				got, err := seq.Get(t).Read(before)
				assert.NoError(t, err)
				assert.Equal(t, v, got)
			})
		})
	})

	s.Describe("#Read", func(s *testcase.Spec) {
		index := let.Var[int](s, nil)
		act := let.Act2(func(t *testcase.T) (string, error) {
			return seq.Get(t).Read(index.Get(t))
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("out of range is reported", func(t *testcase.T) {
				got, err := act(t)
				assert.ErrorIs(t, err, sequence.ErrOutOfRange)
				assert.Empty(t, got)
			})
		})

		s.When("the sequence has values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value is returned", func(t *testcase.T) {
					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})

				s.Then("the sequence is not altered", func(t *testcase.T) {
					_, _ = act(t)
					assert.Equal(t, values.Get(t), collect(seq.Get(t)))
				})
			})

			s.And("index is equal to or beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("out of range is reported", func(t *testcase.T) {
					got, err := act(t)
					assert.ErrorIs(t, err, sequence.ErrOutOfRange)
					assert.Empty(t, got)
				})
			})

			s.And("index is minus one", func(s *testcase.Spec) {
				index.LetValue(s, -1)

				s.Then("the value is resolved by the configured indexing", func(t *testcase.T) {
					vs := values.Get(t)
					exp := vs[1]
					if c.indexing() == sequence.FromEndIndexing {
						exp = vs[len(vs)-1]
					}

					got, err := act(t)
					assert.NoError(t, err)
					assert.Equal(t, exp, got)
				})
			})

			s.And("index is the negated length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * len(values.Get(t))
				})

				if c.indexing() == sequence.FromEndIndexing {
					s.Then("the first value is returned", func(t *testcase.T) {
						got, err := act(t)
						assert.NoError(t, err)
						assert.Equal(t, values.Get(t)[0], got)
					})
				} else {
					s.Then("out of range is reported, as the squared index exceeds the length", func(t *testcase.T) {
						got, err := act(t)
						assert.ErrorIs(t, err, sequence.ErrOutOfRange)
						assert.Empty(t, got)
					})
				}
			})

			s.And("index is negative beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * (len(values.Get(t)) + t.Random.IntBetween(1, 42))
				})

				s.Then("out of range is reported", func(t *testcase.T) {
					got, err := act(t)
					assert.ErrorIs(t, err, sequence.ErrOutOfRange)
					assert.Empty(t, got)
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) string {
				return c.makeValue(t)
			})
		)
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Insert(index.Get(t), value.Get(t))
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("the value becomes the only element", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, []string{value.Get(t)}, collect(seq.Get(t)))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("out of range is reported", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), sequence.ErrOutOfRange)
				})

				s.Then("the sequence stays empty", func(t *testcase.T) {
					_ = act(t)
					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})
		})

		s.When("the sequence has values", func(s *testcase.Spec) {
			withValues(s)

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the value can be read back from the index", func(t *testcase.T) {
					assert.NoError(t, act(t))

					got, err := seq.Get(t).Read(index.Get(t))
					assert.NoError(t, err)
					assert.Equal(t, value.Get(t), got)
				})

				s.Then("length increases by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))+1, seq.Get(t).Len())
				})

				s.Then("values before the index stay, values from the index shift by one", func(t *testcase.T) {
					assert.NoError(t, act(t))

					i := index.Get(t)
					vs := values.Get(t)
					exp := append(append(append([]string{}, vs[:i]...), value.Get(t)), vs[i:]...)
					assert.Equal(t, exp, collect(seq.Get(t)))
				})
			})

			s.And("index is equal to the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it behaves as an append", func(t *testcase.T) {
					assert.NoError(t, act(t))

					exp := append(append([]string{}, values.Get(t)...), value.Get(t))
					assert.Equal(t, exp, collect(seq.Get(t)))
				})
			})

			s.And("index is beyond the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("out of range is reported", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), sequence.ErrOutOfRange)
				})

				s.Then("the sequence is not altered", func(t *testcase.T) {
					_ = act(t)
					assert.Equal(t, values.Get(t), collect(seq.Get(t)))
				})
			})

			s.And("index is minus one", func(s *testcase.Spec) {
				index.LetValue(s, -1)

				s.Then("the value is placed where the configured indexing points", func(t *testcase.T) {
					assert.NoError(t, act(t))

					vs := values.Get(t)
					i := 1
					if c.indexing() == sequence.FromEndIndexing {
						i = len(vs) - 1
					}
					exp := append(append(append([]string{}, vs[:i]...), value.Get(t)), vs[i:]...)
					assert.Equal(t, exp, collect(seq.Get(t)))
				})
			})

			s.And("index is the negated length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * len(values.Get(t))
				})

				if c.indexing() == sequence.FromEndIndexing {
					s.Then("the value becomes the first element", func(t *testcase.T) {
						assert.NoError(t, act(t))

						exp := append([]string{value.Get(t)}, values.Get(t)...)
						assert.Equal(t, exp, collect(seq.Get(t)))
					})
				} else {
					s.Then("out of range is reported and the sequence is not altered", func(t *testcase.T) {
						assert.ErrorIs(t, act(t), sequence.ErrOutOfRange)
						assert.Equal(t, values.Get(t), collect(seq.Get(t)))
					})
				}
			})
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		value := let.Var(s, func(t *testcase.T) string {
			return c.makeValue(t)
		})
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Remove(value.Get(t))
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			s.Then("not found is reported", func(t *testcase.T) {
				assert.ErrorIs(t, act(t), sequence.ErrNotFound)
			})
		})

		s.When("the sequence has values", func(s *testcase.Spec) {
			withValues(s)

			s.And("the value is not among them", func(s *testcase.Spec) {
				value.Let(s, func(t *testcase.T) string {
					return random.Unique(func() string { return c.makeValue(t) }, values.Get(t)...)
				})

				s.Then("not found is reported", func(t *testcase.T) {
					assert.ErrorIs(t, act(t), sequence.ErrNotFound)
				})

				s.Then("the sequence is not altered", func(t *testcase.T) {
					_ = act(t)
					assert.Equal(t, values.Get(t), collect(seq.Get(t)))
				})
			})

			s.And("the value is present", func(s *testcase.Spec) {
				position := let.Var(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})
				value.Let(s, func(t *testcase.T) string {
					return values.Get(t)[position.Get(t)]
				})

				s.Then("the value is removed and the order of the rest is kept", func(t *testcase.T) {
					assert.NoError(t, act(t))

					i := position.Get(t)
					vs := values.Get(t)
					exp := append(append([]string{}, vs[:i]...), vs[i+1:]...)
					assert.Equal(t, exp, collect(seq.Get(t)))
				})

				s.Then("length decreases by one", func(t *testcase.T) {
					assert.NoError(t, act(t))
					assert.Equal(t, len(values.Get(t))-1, seq.Get(t).Len())
				})

				s.And("it is present more than once", func(s *testcase.Spec) {
					s.Before(func(t *testcase.T) {
						seq.Get(t).Append(value.Get(t))
					})

					s.Then("only the first occurrence is removed", func(t *testcase.T) {
						assert.NoError(t, act(t))

						i := position.Get(t)
						vs := values.Get(t)
						exp := append(append([]string{}, vs[:i]...), vs[i+1:]...)
						exp = append(exp, value.Get(t))
						assert.Equal(t, exp, collect(seq.Get(t)))
					})
				})
			})

			s.Test("removing every value one by one empties the sequence", func(t *testcase.T) {
				for _, v := range values.Get(t) {
					assert.NoError(t, seq.Get(t).Remove(v))
				}
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.Empty(t, collect(seq.Get(t)))

				v := c.makeValue(t)
				seq.Get(t).Append(v)
				assert.Equal(t, []string{v}, collect(seq.Get(t)))
			})
		})
	})

	s.Describe("#Close", func(s *testcase.Spec) {
		act := let.Act(func(t *testcase.T) error {
			return seq.Get(t).Close()
		})

		s.When("the sequence has values", func(s *testcase.Spec) {
			withValues(s)

			s.Then("every value is released", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
				assert.Empty(t, collect(seq.Get(t)))
			})

			s.Then("closing again is harmless", func(t *testcase.T) {
				assert.NoError(t, act(t))
				assert.NoError(t, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})

			s.Then("the sequence can be filled again after close", func(t *testcase.T) {
				assert.NoError(t, act(t))

				v := c.makeValue(t)
				seq.Get(t).Append(v)
				got, err := seq.Get(t).Read(0)
				assert.NoError(t, err)
				assert.Equal(t, v, got)
			})
		})

		s.When("the sequence is empty", func(s *testcase.Spec) {
			s.Then("it succeeds", func(t *testcase.T) {
				assert.NoError(t, act(t))
			})
		})
	})

	return s.AsSuite("Sequence")
}

func collect(seq sequence.Sequence) []string {
	var vs []string
	for v := range seq.Values() {
		vs = append(vs, v)
	}
	return vs
}
