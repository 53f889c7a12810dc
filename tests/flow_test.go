package tests

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ib-77/callchain/pkg/chain"
	"github.com/ib-77/callchain/pkg/chain/capture"

	"github.com/stretchr/testify/assert"
)

type report struct {
	title string
	lines []string
}

func (r *report) addLine(line string) int {
	r.lines = append(r.lines, line)
	return len(r.lines)
}

func (r report) render() string {
	return r.title + "\n" + strings.Join(r.lines, "\n")
}

// TestReportFlow builds a small report through both chaining modes and
// checks the final rendering end to end.
func TestReportFlow(t *testing.T) {
	logged := make([]string, 0, 4)

	built := chain.Start(report{title: "daily"}).
		ChainMut(func(r *report) { r.addLine("first") }).
		ChainMut(func(r *report) { r.addLine("second") }).
		Chain(func(r report) { logged = append(logged, fmt.Sprintf("lines so far: %d", len(r.lines))) })

	assert.Equal(t, []string{"lines so far: 2"}, logged)
	assert.Equal(t, "daily", built.Value().title)

	// result capture picks up the last call's return value
	lineCount := capture.ThenMut(
		capture.StartMut(built.Value(), func(r *report) int { return r.addLine("third") }),
		func(r *report) int { return r.addLine("fourth") },
	)

	assert.Equal(t, 4, lineCount.Result())
	assert.Equal(t, "daily\nfirst\nsecond\nthird\nfourth", lineCount.Value().render())

	// the subject held by the earlier wrapper is untouched
	assert.Len(t, built.Value().lines, 2)
}

func TestApplyFlow(t *testing.T) {
	got := chain.Apply(report{title: "weekly"},
		func(r *report) { r.addLine("one") },
		func(r *report) { r.addLine("two") },
	)

	assert.Equal(t, []string{"one", "two"}, got.lines)
}
