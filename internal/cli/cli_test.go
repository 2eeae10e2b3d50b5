package cli_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqkit/growth"
	"github.com/katalvlaran/seqkit/internal/cli"
	"github.com/katalvlaran/seqkit/internal/seqgen"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, logger *zap.Logger, args ...string) (string, error) {
	t.Helper()
	if logger == nil {
		logger = zap.NewNop()
	}
	cmd := cli.New(cli.WithLogger(logger))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

// TestCommands_Text covers the plain-text output of every subcommand.
func TestCommands_Text(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"Mode", []string{"mode", "1", "3", "2", "3", "4", "1", "3"}, "3\n"},
		{"ModeCommaList", []string{"mode", "1,2,2,1"}, "2\n"},
		{"ModeEmpty", []string{"mode"}, "none\n"},
		{"ModeTopEmpty", []string{"mode", "--top", "2"}, "none\n"},
		{"ModeTop", []string{"mode", "--top", "2", "1", "2", "2", "1", "3"}, "2\t2\n1\t2\n"},
		{"Dedup", []string{"dedup", "4", "5", "4", "6", "5", "7"}, "[4 5 6 7]\n"},
		{"Pairs", []string{"pairs", "--target", "5", "4", "3", "2", "1"}, "[(1, 4) (2, 3)]\n"},
		{"PairsNone", []string{"pairs", "-t", "100", "1", "2"}, "[]\n"},
		{"Grow", []string{"grow", "-n", "6"}, "items=[1 2 3 4 5 6] size=6 capacity=8 resizes=2 copies=6\n"},
		{"GrowZero", []string{"grow", "-n", "0", "--capacity", "3"}, "items=[] size=0 capacity=3 resizes=0 copies=0\n"},
		{"Prefix", []string{"prefix", "1", "2", "3", "4"}, "[1 3 6 10]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, nil, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestDemo replays the canonical examples.
func TestDemo(t *testing.T) {
	out, err := run(t, nil, "demo")
	require.NoError(t, err)
	assert.Equal(t, "P1 Output: 3\n"+
		"P2 Output: [4 5 6 7]\n"+
		"P3 Output: [(1, 4) (2, 3)]\n"+
		"P4 Output: [1 2 3 4 5 6]\n"+
		"P5 Output: [1 3 6 10]\n", out)
}

// TestGrow_LogsResizes checks that each resize is logged at Info level and
// appends only at Debug level.
func TestGrow_LogsResizes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := run(t, zap.New(core), "grow", "-n", "6", "--capacity", "2")
	require.NoError(t, err)

	resizes := logs.FilterMessageSnippet("resize:").All()
	require.Len(t, resizes, 2)
	assert.Equal(t, zapcore.InfoLevel, resizes[0].Level)
	assert.Equal(t, "resize: capacity 2 full, growing to 4 (O(2) copy cost)", resizes[0].Message)
	assert.Equal(t, int64(8), resizes[1].ContextMap()["new_capacity"])

	assert.Equal(t, 6, logs.FilterMessage("append").Len())
	for _, e := range logs.FilterMessage("append").All() {
		assert.Equal(t, zapcore.DebugLevel, e.Level)
	}
}

// TestPairs_WarnsOnRepeats checks the precondition warning.
func TestPairs_WarnsOnRepeats(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	_, err := run(t, zap.New(core), "pairs", "-t", "4", "2", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, logs.Len())
}

// TestOutput_JSON decodes the JSON rendering of mode on empty input.
func TestOutput_JSON(t *testing.T) {
	out, err := run(t, nil, "mode", "-o", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Nil(t, got["mode"], "empty input renders mode as null")
	assert.Equal(t, float64(0), got["count"])
}

// TestOutput_YAML decodes the YAML rendering of grow.
func TestOutput_YAML(t *testing.T) {
	out, err := run(t, nil, "grow", "-n", "3", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		Items    []int `yaml:"items"`
		Capacity int   `yaml:"capacity"`
		Resizes  []struct {
			Size        int `yaml:"size"`
			NewCapacity int `yaml:"new_capacity"`
		} `yaml:"resizes"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	if diff := cmp.Diff([]int{1, 2, 3}, got.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, got.Capacity)
	require.Len(t, got.Resizes, 1)
	assert.Equal(t, 2, got.Resizes[0].Size)
	assert.Equal(t, 4, got.Resizes[0].NewCapacity)
}

// TestRandomInput checks that --random follows the seeded generator.
func TestRandomInput(t *testing.T) {
	out, err := run(t, nil, "prefix", "--random", "5", "--seed", "9", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Input        []int `json:"input"`
		RunningTotal []int `json:"running_total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	want, err := seqgen.Ints(seqgen.FromSeed(9), 5, 0, 5)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got.Input); diff != "" {
		t.Errorf("random input mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, got.RunningTotal, 5)
	assert.Equal(t, got.Input[0], got.RunningTotal[0])
}

// TestErrors covers flag and input validation.
func TestErrors(t *testing.T) {
	_, err := run(t, nil, "mode", "-o", "xml", "1")
	assert.ErrorIs(t, err, cli.ErrUnknownFormat)

	_, err = run(t, nil, "dedup", "--random", "3", "1", "2")
	assert.ErrorIs(t, err, cli.ErrInputConflict)

	_, err = run(t, nil, "prefix", "--random=-1")
	assert.ErrorIs(t, err, cli.ErrBadFlag)

	_, err = run(t, nil, "prefix", "1", "two")
	assert.ErrorIs(t, err, seqgen.ErrBadToken)

	_, err = run(t, nil, "grow", "--capacity", "0")
	assert.ErrorIs(t, err, growth.ErrOptionViolation)

	_, err = run(t, nil, "grow", "-n", "3", "--factor", fmt.Sprint(math.MaxInt))
	assert.ErrorIs(t, err, growth.ErrCapacityOverflow)

	_, err = run(t, nil, "pairs", "1", "2")
	assert.Error(t, err, "--target is required")
}
