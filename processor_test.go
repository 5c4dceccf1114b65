package untag_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/tdehart/untag"
)

func TestProcessorOptionNilValues(t *testing.T) {
	// nil options must not clobber the defaults
	p := untag.NewProcessor(
		untag.WithLocation(nil),
		untag.WithLogger(nil),
		untag.WithMaxDepth(0),
	)

	if _, err := p.Transform(strings.NewReader(`{"a": {"S": "x"}}`)); err != nil {
		t.Errorf("Transform with defaulted options: %v", err)
	}
}

func TestProcessorWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := untag.NewProcessor(
		untag.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)

	res, err := p.Transform(strings.NewReader(
		`{"bad": "plain", "tag": {"X": "1"}, "list": {"L": [42, {"S": "a"}]}}`,
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 {
		t.Fatalf("got %d results, want 1", len(res))
	}

	logged := buf.String()
	for _, want := range []string{
		"skipping malformed tagged value",
		"skipping unknown type tag",
		"skipping malformed list element",
	} {
		if !strings.Contains(logged, want) {
			t.Errorf("log output missing %q:\n%s", want, logged)
		}
	}
}

func TestProcessorSilentByDefault(t *testing.T) {
	// without a configured logger the decode emits nothing, it only
	// omits
	res, err := untag.NewProcessor().Transform(strings.NewReader(
		`{"bad": "plain", "ok": {"S": "x"}}`,
	))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 {
		t.Fatalf("got %d results, want 1", len(res))
	}

	want := untag.Map([]untag.Field{{Key: "ok", Value: untag.String("x")}})
	if !res[0].Equal(want) {
		t.Errorf("got %v, want %v", res[0], want)
	}
}

func TestProcessorLocationApplied(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	res, err := untag.NewProcessor(untag.WithLocation(loc)).
		Transform(strings.NewReader(`{"t": {"S": "2021-06-01T12:00:00Z"}}`))
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2021, 6, 1, 12, 0, 0, 0, loc).Unix()
	got := res[0].Fields()[0].Value
	if got.Kind() != untag.KindInt || got.Int() != want {
		t.Errorf("got %v, want %d", got, want)
	}
}
