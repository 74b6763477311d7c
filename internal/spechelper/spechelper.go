package spechelper

import (
	"fmt"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

// MakeText makes a human readable text value for test fixtures.
func MakeText(tb testing.TB) string {
	t := testcase.ToT(&tb)
	return fmt.Sprintf("%s-%s", randomdata.SillyName(), t.Random.StringNC(4, random.CharsetAlpha()))
}

// MakeUniqueText returns a MakeText function that never repeats a value it already made.
func MakeUniqueText() func(testing.TB) string {
	var made []string
	return func(tb testing.TB) string {
		v := random.Unique(func() string { return MakeText(tb) }, made...)
		made = append(made, v)
		return v
	}
}

// MakeTexts makes n text values.
func MakeTexts(tb testing.TB, n int) []string {
	vs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, MakeText(tb))
	}
	return vs
}
