package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/intervals/pkg/worksheet"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	constructJSON, identifyJSON, tableJSON, gradeJSON = false, false, false, false
	exportOutput, exportPair = "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCLI_Construct(t *testing.T) {
	assert.Equal(t, "F#\n", run(t, "construct", "P5", "B"))
	assert.Equal(t, "Abb\n", run(t, "construct", "M3", "Cb", "dsc"))

	var a answer
	require.NoError(t, json.Unmarshal([]byte(run(t, "construct", "--json", "m2", "Bb", "dsc")), &a))
	assert.Equal(t, "A", a.Result)
	assert.Equal(t, "construct", a.Op)
}

func TestCLI_Identify(t *testing.T) {
	assert.Equal(t, "M2\n", run(t, "identify", "C", "D"))
	assert.Equal(t, "P4\n", run(t, "identify", "G#", "D#", "dsc"))
}

func TestCLI_Table(t *testing.T) {
	out := run(t, "table")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "P8")

	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(run(t, "table", "--json")), &list))
	assert.Len(t, list, 11)
}

func TestCLI_Grade(t *testing.T) {
	dir := t.TempDir()
	sheet := worksheet.Sheet{
		Title: "cli",
		Exercises: []worksheet.Exercise{
			{Op: worksheet.OpConstruct, Args: []string{"M7", "G", "asc"}, Expect: "F#"},
			{Op: worksheet.OpIdentify, Args: []string{"C", "C"}, Error: "unidentifiable"},
		},
	}
	require.NoError(t, worksheet.Save(filepath.Join(dir, "cli.yaml"), sheet))

	out := run(t, "grade", dir)
	assert.Contains(t, out, "2 passed, 0 failed")

	var report worksheet.Report
	require.NoError(t, json.Unmarshal([]byte(run(t, "grade", "--json", dir)), &report))
	assert.True(t, report.OK())
	assert.Equal(t, 2, report.Passed)
}

func TestCLI_GradeWorkersAndStats(t *testing.T) {
	dir := t.TempDir()
	sheet := worksheet.Sheet{Exercises: []worksheet.Exercise{
		{Op: worksheet.OpConstruct, Args: []string{"P5", "B"}, Expect: "F#"},
	}}
	require.NoError(t, worksheet.Save(filepath.Join(dir, "fifths.json"), sheet))

	var out, errOut bytes.Buffer
	gradeJSON, gradeStats, gradeWorkers = false, true, 3
	defer func() { gradeStats, gradeWorkers = false, 0 }()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"grade", dir})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "1 passed, 0 failed")

	var stats map[string]any
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &stats))
	assert.EqualValues(t, 3, stats["workers"])
	assert.EqualValues(t, 1, stats["constructions"])
}

func TestCLI_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "drill.yaml")
	sheet := worksheet.Sheet{Exercises: []worksheet.Exercise{
		{Op: worksheet.OpIdentify, Args: []string{"C", "D"}, Expect: "M2"},
	}}
	require.NoError(t, worksheet.Save(path, sheet))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	defer rootCmd.SetContext(context.Background())

	// Keep touching the sheet until the command has regraded it at least once.
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = worksheet.Save(path, sheet)
			}
		}
	}()

	var out syncBuffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"watch", dir})
	require.NoError(t, rootCmd.ExecuteContext(ctx))

	assert.GreaterOrEqual(t, strings.Count(out.String(), "1 passed, 0 failed"), 2)
}

func TestCLI_Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifth.mid")
	out := run(t, "export", "P5", "B", "-o", path)
	assert.Contains(t, out, "P5 B asc = F# written to")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestCLI_Version(t *testing.T) {
	assert.Contains(t, run(t, "version"), "intervals version 0.1.0")
}

// syncBuffer guards a bytes.Buffer written by the command while the test
// goroutine may read it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
