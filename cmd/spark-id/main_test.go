package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aexoo-ai/spark-id/sparkid"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestGenerateCommand(t *testing.T) {
	out, err := execRoot(t, "generate", "--prefix", "USER")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^USER_[A-Z2-9]{15}$`, lines[0])
}

func TestGenerateCommandCount(t *testing.T) {
	out, err := execRoot(t, "generate", "-n", "3")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Regexp(t, `^[A-Z2-9]{15}$`, line)
	}
}

func TestGenerateCommandUnique(t *testing.T) {
	out, err := execRoot(t, "generate", "-n", "50", "--unique", "--entropy-bits", "40")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 50)
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		assert.Regexp(t, `^[A-Z2-9]{8}$`, line)
		seen[line] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestGenerateCommandJSON(t *testing.T) {
	out, err := execRoot(t, "generate", "-n", "2", "-p", "ORD", "-f", "json")
	require.NoError(t, err)

	var ids []string
	require.NoError(t, json.Unmarshal([]byte(out), &ids))
	require.Len(t, ids, 2)
	for _, id := range ids {
		assert.Regexp(t, `^ORD_[A-Z2-9]{15}$`, id)
	}
}

func TestGenerateCommandCSV(t *testing.T) {
	out, err := execRoot(t, "generate", "-n", "2", "-f", "csv")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"index", "id"}, records[0])
	assert.Equal(t, "0", records[1][0])
	assert.Equal(t, "1", records[2][0])
	assert.Regexp(t, `^[A-Z2-9]{15}$`, records[1][1])
	assert.Regexp(t, `^[A-Z2-9]{15}$`, records[2][1])
}

func TestGenerateCommandInvalidPrefix(t *testing.T) {
	out, err := execRoot(t, "generate", "--prefix", "has space")
	require.Error(t, err)
	assert.Equal(t, sparkid.CodeInvalidPrefix, sparkid.CodeOf(err))
	assert.Empty(t, out)
}

func TestGenerateCommandCountTooLarge(t *testing.T) {
	_, err := execRoot(t, "generate", "-n", "1001")
	require.Error(t, err)
	assert.Equal(t, sparkid.CodeCountTooLarge, sparkid.CodeOf(err))
}

func TestGenerateCommandEntropyOutOfRange(t *testing.T) {
	_, err := execRoot(t, "generate", "--entropy-bits", "5000")
	require.Error(t, err)
	assert.Equal(t, sparkid.CodeInvalidConfig, sparkid.CodeOf(err))
}

// A flag set to its zero value is still a set flag: it must reach validation
// rather than quietly fall back to the defaults.
func TestGenerateCommandExplicitZeroFlags(t *testing.T) {
	_, err := execRoot(t, "generate", "--entropy-bits", "0")
	require.Error(t, err)
	assert.Equal(t, sparkid.CodeInvalidConfig, sparkid.CodeOf(err))

	_, err = execRoot(t, "generate", "--separator", "")
	require.Error(t, err)
	assert.Equal(t, sparkid.CodeInvalidConfig, sparkid.CodeOf(err))
}

func TestGenerateCommandFlagsStayPerCall(t *testing.T) {
	t.Cleanup(sparkid.ResetConfig)

	out, err := execRoot(t, "generate", "--entropy-bits", "40", "--separator", "-", "--prefix", "job", "--case", "lower")
	require.NoError(t, err)
	assert.Regexp(t, `^job-[a-z2-9]{8}\n$`, out)

	cfg := sparkid.GetConfig()
	assert.Equal(t, sparkid.DefaultEntropyBits, cfg.EntropyBits)
	assert.Equal(t, sparkid.DefaultSeparator, cfg.Separator)
	assert.Equal(t, sparkid.DefaultCase, cfg.Case)
}

func TestParseCommandText(t *testing.T) {
	id, err := sparkid.Generate("USER")
	require.NoError(t, err)

	out, execErr := execRoot(t, "parse", id)
	require.NoError(t, execErr)
	assert.Contains(t, out, "prefix: USER\n")
	assert.Contains(t, out, "full:   "+id+"\n")
}

func TestParseCommandJSON(t *testing.T) {
	id, err := sparkid.Generate("USER")
	require.NoError(t, err)

	out, execErr := execRoot(t, "parse", id, "-f", "json")
	require.NoError(t, execErr)

	var parsed sparkid.Parsed
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, "USER", parsed.Prefix)
	assert.Equal(t, id, parsed.Full)
}

func TestParseCommandUnprefixed(t *testing.T) {
	raw, err := sparkid.GenerateRaw()
	require.NoError(t, err)

	out, execErr := execRoot(t, "parse", raw)
	require.NoError(t, execErr)
	assert.NotContains(t, out, "prefix:")
	assert.Contains(t, out, "id:     "+raw+"\n")
}

func TestParseCommandInvalidID(t *testing.T) {
	_, err := execRoot(t, "parse", "USER_????")
	require.Error(t, err)
	assert.Equal(t, sparkid.CodeInvalidID, sparkid.CodeOf(err))
}

func TestValidateCommand(t *testing.T) {
	id, err := sparkid.Generate("USER")
	require.NoError(t, err)

	out, execErr := execRoot(t, "validate", id)
	require.NoError(t, execErr)
	assert.Equal(t, id+"\tvalid\n", out)
}

func TestValidateCommandMixedInputs(t *testing.T) {
	id, err := sparkid.Generate("USER")
	require.NoError(t, err)

	out, execErr := execRoot(t, "validate", id, "USER_BAD!")
	require.Error(t, execErr)
	assert.Contains(t, execErr.Error(), "1 of 2")

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.Equal(t, id+"\tvalid", lines[0])
	assert.Equal(t, "USER_BAD!\tinvalid", lines[1])
}

func TestStatsCommandJSON(t *testing.T) {
	out, err := execRoot(t, "stats", "-f", "json")
	require.NoError(t, err)

	var stats sparkid.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, sparkid.DefaultEntropyBits, stats.EntropyBits)
	assert.Equal(t, 15, stats.RawLength)
	assert.Equal(t, sparkid.DefaultAlphabet, stats.Alphabet)
}

func TestStatsCommandTextTracksFlags(t *testing.T) {
	out, err := execRoot(t, "stats", "--entropy-bits", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "entropy bits:      40")
	assert.Contains(t, out, "raw length:        8")
}

func TestCheckServerMode(t *testing.T) {
	for _, mode := range []string{gin.DebugMode, gin.ReleaseMode, gin.TestMode} {
		assert.NoError(t, checkServerMode(mode), "mode=%s", mode)
	}

	err := checkServerMode("production")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "production")
}
