package seqkit_test

import (
	"bytes"
	"iter"
	"slices"
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/strseq/adapter/contiguous"
	"go.llib.dev/strseq/adapter/linked"
	"go.llib.dev/strseq/internal/spechelper"
	"go.llib.dev/strseq/pkg/seqkit"
	"go.llib.dev/strseq/port/sequence"
	"go.llib.dev/strseq/port/sequence/sequencemock"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func ExampleFormat() {
	arr := contiguous.New(4)
	arr.Append("a", "b", "c")
	_ = seqkit.Print(arr)
	// Output:
	// [a,b,c]
}

func TestFormat(t *testing.T) {
	s := testcase.NewSpec(t)

	ctrl := let.Var(s, func(t *testcase.T) *gomock.Controller {
		c := gomock.NewController(t)
		t.Defer(c.Finish)
		return c
	})
	values := let.Var[[]string](s, nil)
	seq := let.Var(s, func(t *testcase.T) *sequencemock.MockSequence {
		m := sequencemock.NewMockSequence(ctrl.Get(t))
		m.EXPECT().Values().Return(iter.Seq[string](slices.Values(values.Get(t)))).AnyTimes()
		return m
	})
	act := let.Act(func(t *testcase.T) string {
		return seqkit.Format(seq.Get(t))
	})

	s.When("the sequence is empty", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []string { return nil })

		s.Then("empty brackets are rendered", func(t *testcase.T) {
			assert.Equal(t, "[]", act(t))
		})
	})

	s.When("the sequence has a single value", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []string { return []string{"STRING1"} })

		s.Then("no separator is rendered", func(t *testcase.T) {
			assert.Equal(t, "[STRING1]", act(t))
		})
	})

	s.When("the sequence has values", func(s *testcase.Spec) {
		values.Let(s, func(t *testcase.T) []string {
			return []string{"STRING2", "STRING1", "STRING4"}
		})

		s.Then("they are listed in order, comma separated", func(t *testcase.T) {
			assert.Equal(t, "[STRING2,STRING1,STRING4]", act(t))
		})
	})
}

func TestFprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	seq := sequencemock.NewMockSequence(ctrl)
	seq.EXPECT().Values().Return(iter.Seq[string](slices.Values([]string{"a", "b"})))

	var buf bytes.Buffer
	assert.NoError(t, seqkit.Fprint(&buf, seq))
	assert.Equal(t, "[a,b]\n", buf.String())
}

func TestCollect(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("uses ToSlice when the sequence supports it", func(t *testcase.T) {
		values := spechelper.MakeTexts(t, t.Random.IntBetween(1, 5))
		ll := linked.New()
		ll.Append(values...)
		assert.Equal(t, values, seqkit.Collect(ll))
	})

	s.Test("falls back to Values", func(t *testcase.T) {
		ctrl := gomock.NewController(t)
		t.Defer(ctrl.Finish)

		values := spechelper.MakeTexts(t, t.Random.IntBetween(1, 5))
		seq := sequencemock.NewMockSequence(ctrl)
		seq.EXPECT().Len().Return(len(values))
		seq.EXPECT().Values().Return(iter.Seq[string](slices.Values(values)))
		assert.Equal(t, values, seqkit.Collect(seq))
	})
}

func TestIndexOf(t *testing.T) {
	arr := contiguous.New(1)
	arr.Append("a", "b", "a")

	i, ok := seqkit.IndexOf(arr, "a")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = seqkit.IndexOf(arr, "b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = seqkit.IndexOf(arr, "c")
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []string {
		return spechelper.MakeTexts(t, t.Random.IntBetween(1, 7))
	})
	a := let.Var(s, func(t *testcase.T) sequence.Sequence {
		arr := contiguous.New(1)
		arr.Append(values.Get(t)...)
		return arr
	})
	b := let.Var(s, func(t *testcase.T) sequence.Sequence {
		ll := linked.New()
		ll.Append(values.Get(t)...)
		return ll
	})

	s.Test("same values in the same order are equal across backing stores", func(t *testcase.T) {
		assert.True(t, seqkit.Equal(a.Get(t), b.Get(t)))
		assert.True(t, seqkit.Equal(b.Get(t), a.Get(t)))
	})

	s.Test("different length is not equal", func(t *testcase.T) {
		b.Get(t).Append(spechelper.MakeText(t))
		assert.False(t, seqkit.Equal(a.Get(t), b.Get(t)))
	})

	s.Test("different values are not equal", func(t *testcase.T) {
		a.Get(t).Append("x")
		b.Get(t).Append("y")
		assert.False(t, seqkit.Equal(a.Get(t), b.Get(t)))
	})
}
