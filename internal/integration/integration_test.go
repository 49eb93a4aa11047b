// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnarle/internal/config"
	"dnarle/internal/decodeapp"
	"dnarle/internal/encodeapp"
	"dnarle/internal/output"
	"dnarle/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

type result struct {
	code   int
	stdout string
	stderr string
}

func encode(t *testing.T, argv ...string) result {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	var out, errBuf bytes.Buffer
	code := encodeapp.Run(argv, &out, &errBuf)
	return result{code, out.String(), errBuf.String()}
}

func decode(t *testing.T, argv ...string) result {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	var out, errBuf bytes.Buffer
	code := decodeapp.Run(argv, &out, &errBuf)
	return result{code, out.String(), errBuf.String()}
}

func TestEncodeTSV(t *testing.T) {
	r := encode(t, "-S", "AAAAAAAAAAAT", "-S", "atcg")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t,
		output.ReportTSVHeader+"\n"+
			"seq1\tA11T1\t12\t5\t0.42\tefficient\t11\t1\t0\t0\n"+
			"seq2\tA1T1C1G1\t4\t8\t2.00\tnot efficient\t1\t1\t1\t1\n",
		r.stdout)
}

func TestEncodePrettySample(t *testing.T) {
	r := encode(t, "--sample", "1", "--pretty")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "> sample1\n")
	assert.Contains(t, r.stdout, "Encoded: A4T4G4C4\n")
	assert.Contains(t, r.stdout, "Original Length: 16 | Encoded Length: 8 | Compression Ratio: 0.50\n")
	assert.Contains(t, r.stdout, "Compression efficient\n")
}

func TestEncodeLowRepetitionSample(t *testing.T) {
	r := encode(t, "--sample", "2", "--pretty")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Compression Ratio: 2.00\n")
	assert.Contains(t, r.stdout, "Compression NOT efficient (low repetition)\n")
}

func TestEncodeInvalidBase(t *testing.T) {
	r := encode(t, "-S", "AXTG")
	assert.Equal(t, 2, r.code)
	assert.Empty(t, strings.TrimPrefix(r.stdout, output.ReportTSVHeader+"\n"))
	assert.Contains(t, r.stderr, "error: seq1: invalid base 'X' at position 1")
}

func TestEncodeSkipInvalid(t *testing.T) {
	r := encode(t, "-S", "AXTG", "-S", "GGGG", "--skip-invalid", "--no-header")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "seq2\tG4\t4\t2\t0.50\tefficient\t0\t0\t0\t4\n", r.stdout)
	assert.Contains(t, r.stderr, "WARN: skipping seq1")
	assert.Contains(t, r.stderr, "WARN: skipped 1 invalid input(s)")
}

func TestEncodeEmptySequence(t *testing.T) {
	r := encode(t, "-S", "", "-o", "json", "--verify")
	require.Equal(t, 0, r.code, r.stderr)
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	require.Len(t, got, 1)
	assert.Nil(t, got[0]["ratio"])
	assert.Equal(t, true, got[0]["efficient"])
	assert.Contains(t, r.stderr, "WARN: seq1: empty sequence")

	r = encode(t, "-S", "", "-q", "--no-header")
	require.Equal(t, 0, r.code)
	assert.Equal(t, "seq1\t\t0\t0\tn/a\tefficient\t0\t0\t0\t0\n", r.stdout)
	assert.Empty(t, r.stderr)
}

func TestEncodeFileRecords(t *testing.T) {
	fa := write(t, "reads.fa", ">r1 first read\nAAAA\nCCCC\n; comment\n>r2\nttgg\n")
	r := encode(t, "-o", "jsonl", fa)
	require.Equal(t, 0, r.code, r.stderr)

	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 2)
	var first api.ReportV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "r1", first.ID)
	assert.Equal(t, "A4C4", first.Encoded)
	assert.Equal(t, fa, first.SourceFile)
	assert.Contains(t, lines[1], `"encoded":"T2G2"`)
}

func TestEncodeMsgPack(t *testing.T) {
	r := encode(t, "-S", "AAAAAAAAATTTTTGGGGGGCCCCCC", "-o", "msgpack")
	require.Equal(t, 0, r.code, r.stderr)
	list, err := output.ReadReportsMsgPack(strings.NewReader(r.stdout))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A9T5G6C6", list[0].Encoded)
	require.NotNil(t, list[0].LongestRun)
	assert.Equal(t, api.RunV1{Base: "A", Count: 9}, *list[0].LongestRun)
}

func TestEncodeYAML(t *testing.T) {
	r := encode(t, "-S", "GGGGCC", "-o", "yaml")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "encoded: G4C2")
	assert.Contains(t, r.stdout, "verdict: efficient")
}

func TestNoOutputExitCode(t *testing.T) {
	fa := write(t, "empty.fa", "; nothing here\n")
	r := encode(t, fa)
	assert.Equal(t, 1, r.code)

	r = encode(t, "--no-output-exit-code", "0", fa)
	assert.Equal(t, 0, r.code)
}

func TestMissingFileIsIOError(t *testing.T) {
	r := encode(t, filepath.Join(t.TempDir(), "missing.fa"))
	assert.Equal(t, 3, r.code)
	assert.Contains(t, r.stderr, "error: ")
}

func TestConfigFileDefaults(t *testing.T) {
	cfg := write(t, "dnarle.toml", "output = \"jsonl\"\n\n[decode]\nmax_length = 3\n")

	r := encode(t, "--config", cfg, "-S", "AAAA")
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, `{"id":"seq1"`), r.stdout)

	r = decode(t, "--config", cfg, "-k", "A4")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "malformed token stream")

	r = decode(t, "--config", cfg, "--max-length", "0", "-k", "A4", "-o", "text", "--no-header")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "tokens1\t4\t1\tAAAA\n", r.stdout)
}

func TestDecodeHugeCountFailsCleanly(t *testing.T) {
	r := decode(t, "-k", "A281474976710656")
	assert.Equal(t, 2, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "error: tokens1: malformed token stream: too long at offset 0 (limit 1073741824)")

	r = decode(t, "--skip-invalid", "-k", "A281474976710656", "-k", "C2", "--no-header")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "tokens2\t2\t1\tCC\n", r.stdout)
}

func TestDecodeTokens(t *testing.T) {
	r := decode(t, "-k", "a3 t2", "-k", "G1", "-o", "json", "--show-tokens")
	require.Equal(t, 0, r.code, r.stderr)
	var got []api.DecodedV1
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &got))
	assert.Equal(t, []api.DecodedV1{
		{ID: "tokens1", Sequence: "AAATT", Length: 5, Runs: 2, Tokens: "A3T2"},
		{ID: "tokens2", Sequence: "G", Length: 1, Runs: 1, Tokens: "G1"},
	}, got)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]string{
		"3A":  "leading",
		"A":   "missing",
		"A0":  "count",
		"XA2": "invalid",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			r := decode(t, "-k", in)
			assert.Equal(t, 2, r.code)
			assert.Contains(t, r.stderr, "error: tokens1: malformed token stream")
			assert.Contains(t, strings.ToLower(r.stderr), want)
		})
	}
}

func TestDecodeRejectsMsgPack(t *testing.T) {
	r := decode(t, "-k", "A1", "-o", "msgpack")
	assert.Equal(t, 2, r.code)
	assert.NotEmpty(t, r.stderr)
}

func TestFASTARoundTrip(t *testing.T) {
	long := strings.Repeat("ACGT", 40) + strings.Repeat("G", 120)
	fa := write(t, "in.fa", ">a\nAAAAAAAAAAAT\n>b\n"+long+"\n>c\nTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT\n")

	enc := encode(t, "-o", "fasta", fa)
	require.Equal(t, 0, enc.code, enc.stderr)
	assert.True(t, strings.HasPrefix(enc.stdout, ">a len=12 encoded_len=5 ratio=0.42\nA11T1\n"), enc.stdout)

	rle := write(t, "in.rle", enc.stdout)
	dec := decode(t, "-o", "jsonl", rle)
	require.Equal(t, 0, dec.code, dec.stderr)

	lines := strings.Split(strings.TrimSpace(dec.stdout), "\n")
	require.Len(t, lines, 3)
	want := map[string]string{
		"a": "AAAAAAAAAAAT",
		"b": long,
		"c": strings.Repeat("T", 51),
	}
	for _, ln := range lines {
		var d api.DecodedV1
		require.NoError(t, json.Unmarshal([]byte(ln), &d))
		assert.Equal(t, want[d.ID], d.Sequence, d.ID)
		assert.Equal(t, rle, d.SourceFile)
	}
}

func TestHeaderlessFileUsesFileName(t *testing.T) {
	fn := write(t, "plain.rle", "A2C2\n")
	r := decode(t, "--no-header", fn)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "plain\t4\t2\tAACC\n", r.stdout)
}

func TestHelpVersionExamples(t *testing.T) {
	r := encode(t)
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "Usage:")

	r = decode(t, "--version")
	assert.Equal(t, 0, r.code)
	assert.True(t, strings.HasPrefix(r.stdout, "dnarle-decode version "))

	r = encode(t, "--examples")
	assert.Equal(t, 0, r.code)
	assert.Contains(t, r.stdout, "A11T1")

	r = encode(t, "--bogus")
	assert.Equal(t, 2, r.code)
}

func TestCancelledContextExit130(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	fa := write(t, "big.fa", ">chr1\n"+strings.Repeat("ACGT\n", 1000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := encodeapp.RunContext(ctx, []string{"-S", "AAAA", fa}, &out, &errBuf)
	assert.Equal(t, 130, code)

	code = decodeapp.RunContext(ctx, []string{"-k", "A4"}, &out, &errBuf)
	assert.Equal(t, 130, code)
}

func TestParallelMatchesSerial(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, ">r%d\n%s%s\n", i, strings.Repeat("A", i%17+1), strings.Repeat("CGT", i%5))
	}
	fa := write(t, "many.fa", b.String())

	run := func(threads int) string {
		r := encode(t, "--threads", fmt.Sprint(threads), "-o", "jsonl", fa)
		require.Equal(t, 0, r.code, r.stderr)
		return r.stdout
	}
	serial := run(1)
	for _, threads := range []int{4, 0} {
		if d := cmp.Diff(serial, run(threads)); d != "" {
			t.Fatalf("threads=%d output differs from serial (-serial +parallel):\n%s", threads, d)
		}
	}
	assert.Equal(t, 200, strings.Count(serial, "\n"))
}

func TestNegativeThreadsIsUsageError(t *testing.T) {
	r := decode(t, "-t", "-1", "-k", "A1")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "--threads")
}

func TestStructuredOutputMatchesSchema(t *testing.T) {
	fa := write(t, "in.fa", ">a\nAAAAAAAAAAAT\n>b\nATCG\n>c\n\n")

	r := encode(t, "-o", "json", "--show-input", fa)
	require.Equal(t, 0, r.code, r.stderr)
	assert.NoError(t, api.ValidateReportJSON([]byte(r.stdout)))

	r = encode(t, "-o", "jsonl", "-S", "GGGGGGCA", "--sample", "3")
	require.Equal(t, 0, r.code, r.stderr)
	for _, ln := range strings.Split(strings.TrimSpace(r.stdout), "\n") {
		assert.NoError(t, api.ValidateReportJSON([]byte(ln)), ln)
	}

	r = decode(t, "-o", "json", "--show-tokens", "-k", "A11T1", "-k", "")
	require.Equal(t, 0, r.code, r.stderr)
	assert.NoError(t, api.ValidateDecodedJSON([]byte(r.stdout)))
}

func TestPrintSchema(t *testing.T) {
	r := encode(t, "--schema")
	require.Equal(t, 0, r.code)
	assert.Equal(t, string(api.ReportV1Schema), r.stdout)

	r = decode(t, "--schema")
	require.Equal(t, 0, r.code)
	assert.Equal(t, string(api.DecodedV1Schema), r.stdout)
}
