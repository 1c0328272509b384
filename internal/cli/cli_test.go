package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:01,000
First line

2
00:00:01,000 --> 00:00:02,000
Second line
continued

3
00:00:02,000 --> 00:00:03,000
Third line
`

const secondCueEmptied = `1
00:00:00,000 --> 00:00:01,000
First line

2
00:00:01,000 --> 00:00:02,000

3
00:00:02,000 --> 00:00:03,000
Third line
`

// flags keep their values between Execute calls on the shared command tree
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	missingConfig := filepath.Join(t.TempDir(), "none.toml")
	rootCmd.SetArgs(append([]string{"--config", missingConfig}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.srt")
	if err := os.WriteFile(path, []byte(sampleSRT), 0644); err != nil {
		t.Fatalf("failed to write sample: %v", err)
	}
	return path
}

func TestDurationCommand(t *testing.T) {
	out, err := runCLI(t, "duration", writeSample(t))
	if err != nil {
		t.Fatalf("duration returned error: %v", err)
	}
	if out != "3.000\n" {
		t.Errorf("duration output = %q, want %q", out, "3.000\n")
	}
}

func TestDurationCommandRejectsOtherFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.vtt")
	if err := os.WriteFile(path, []byte("WEBVTT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := runCLI(t, "duration", path); err == nil {
		t.Error("expected error for .vtt input")
	}
}

func TestStripCommand(t *testing.T) {
	out, err := runCLI(t, "strip", writeSample(t), "--at", "00:00:01,000")
	if err != nil {
		t.Fatalf("strip returned error: %v", err)
	}
	if out != secondCueEmptied {
		t.Errorf("strip output =\n%s\nwant\n%s", out, secondCueEmptied)
	}
}

func TestClearCommand(t *testing.T) {
	out, err := runCLI(t, "clear", writeSample(t),
		"--from", "00:00:01,000",
		"--to", "00:00:02,000",
	)
	if err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if out != secondCueEmptied {
		t.Errorf("clear output =\n%s\nwant\n%s", out, secondCueEmptied)
	}
}

func TestClearCommandRejectsReversedRange(t *testing.T) {
	_, err := runCLI(t, "clear", writeSample(t),
		"--from", "00:00:02,000",
		"--to", "00:00:01,000",
	)
	if err == nil {
		t.Error("expected error when --to is before --from")
	}
}

func TestClearCommandWritesOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nested", "edited.srt")

	out, err := runCLI(t, "clear", writeSample(t),
		"--from", "00:00:01,000",
		"--to", "00:00:02,000",
		"-o", output,
	)
	if err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if out != "" {
		t.Errorf("expected nothing on stdout, got %q", out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != secondCueEmptied {
		t.Errorf("output file =\n%s\nwant\n%s", data, secondCueEmptied)
	}
}

func TestCutCommand(t *testing.T) {
	out, err := runCLI(t, "cut", writeSample(t),
		"--first-end", "00:00:01,000",
		"--second-start", "00:00:02,000",
	)
	if err != nil {
		t.Fatalf("cut returned error: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:01,000\nFirst line\n\n" +
		"2\n00:00:01,000 --> 00:00:01,000\n\n" +
		"3\n00:00:01,000 --> 00:00:02,000\nThird line\n"
	if out != want {
		t.Errorf("cut output =\n%s\nwant\n%s", out, want)
	}
}

func TestTrimCommand(t *testing.T) {
	out, err := runCLI(t, "trim", writeSample(t), "--start", "1")
	if err != nil {
		t.Fatalf("trim returned error: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:01,000\nSecond line\ncontinued\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nThird line\n"
	if out != want {
		t.Errorf("trim output =\n%s\nwant\n%s", out, want)
	}
}

func TestInsertCommand(t *testing.T) {
	out, err := runCLI(t, "insert", writeSample(t),
		"--at", "0",
		"--start", "00:00:00,000",
		"--end", "00:00:00,500",
		"--text", "Intro",
	)
	if err != nil {
		t.Fatalf("insert returned error: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:00,500\nIntro\n\n" +
		"2\n00:00:00,000 --> 00:00:01,000\nFirst line\n\n" +
		"3\n00:00:01,000 --> 00:00:02,000\nSecond line\ncontinued\n\n" +
		"4\n00:00:02,000 --> 00:00:03,000\nThird line\n"
	if out != want {
		t.Errorf("insert output =\n%s\nwant\n%s", out, want)
	}
}

func TestListCommandJSON(t *testing.T) {
	out, err := runCLI(t, "list", writeSample(t), "--format", "json")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}

	var rows []cueRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("list output is not JSON: %v\n%s", err, out)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].Text != "Second line continued" {
		t.Errorf("row 2 text = %q", rows[1].Text)
	}
	if rows[2].Start != "00:00:02,000" || rows[2].Seconds != 1 {
		t.Errorf("row 3 = %+v", rows[2])
	}
}

func TestListCommandTableAndYAML(t *testing.T) {
	path := writeSample(t)

	table, err := runCLI(t, "list", path)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	for _, want := range []string{"Start", "00:00:01,000", "Second line continued"} {
		if !strings.Contains(table, want) {
			t.Errorf("table output missing %q:\n%s", want, table)
		}
	}

	yamlOut, err := runCLI(t, "list", path, "--format", "yaml")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(yamlOut, "text: Third line") {
		t.Errorf("yaml output missing third cue:\n%s", yamlOut)
	}

	if _, err := runCLI(t, "list", path, "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "captioncut.toml")

	if _, err := runCLI(t, "config", "init", path); err != nil {
		t.Fatalf("config init returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := runCLI(t, "config", "init", path); err == nil {
		t.Error("expected error when config already exists")
	}
	if _, err := runCLI(t, "config", "init", path, "--force"); err != nil {
		t.Errorf("config init --force returned error: %v", err)
	}
}

func TestTimestampFlagRejectsGarbage(t *testing.T) {
	_, err := runCLI(t, "strip", writeSample(t), "--at", "soon")
	if err == nil {
		t.Error("expected error for unparsable timestamp")
	}
}

func TestRenderStreamsEmpty(t *testing.T) {
	if got := renderStreams(nil); got != "No subtitle streams found\n" {
		t.Errorf("renderStreams(nil) = %q", got)
	}
}
