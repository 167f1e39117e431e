package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"gridclip/src/clipboard"
	"gridclip/src/matrix"
	"gridclip/src/view"
)

//memorySink records every write
type memorySink struct {
	writes []string
	err    error
}

func (s *memorySink) Write(text string) error {
	if s.err != nil {
		return s.err
	}
	s.writes = append(s.writes, text)
	return nil
}

func TestRun_Default(t *testing.T) {
	want, err := ioutil.ReadFile("view/testdata/seed13213.golden")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	sink := &memorySink{}
	if err := run(&EnvOptions{}, matrix.DefaultOptions, sink, nil, &out); err != nil {
		t.Fatal(err)
	}
	if len(sink.writes) != 1 || sink.writes[0] != string(want) {
		t.Errorf("got writes %q", sink.writes)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRun_SinkUnavailable(t *testing.T) {
	sink := &memorySink{err: fmt.Errorf("%w: no clipboard utility found on linux", clipboard.ErrUnavailable)}
	err := run(&EnvOptions{}, matrix.DefaultOptions, sink, nil, ioutil.Discard)
	if !errors.Is(err, clipboard.ErrUnavailable) {
		t.Fatalf("got %v, want ErrUnavailable", err)
	}
	if len(sink.writes) != 0 {
		t.Errorf("got writes %q", sink.writes)
	}
}

func TestRun_PrintVerbose(t *testing.T) {
	var out bytes.Buffer
	sink := &memorySink{}
	eo := &EnvOptions{print: true, verbose: true, noColor: true}
	if err := run(eo, matrix.DefaultOptions, sink, nil, &out); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, view.Render(matrix.Generate(nil))) {
		t.Error("printed output does not contain the matrix")
	}
	for _, s := range []string{"Seed: 13213", "Live cells: 160", "Copied: true"} {
		if !strings.Contains(got, s) {
			t.Errorf("output does not contain %q", s)
		}
	}
}

func TestRun_Preview(t *testing.T) {
	tests := []struct {
		name       string
		confirmed  bool
		previewErr error
		wantWrites int
		wantErr    bool
	}{
		{"confirmed", true, nil, 1, false},
		{"declined", false, nil, 0, false},
		{"failed", false, errors.New("no terminal"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &memorySink{}
			calls := 0
			preview := func(m matrix.Matrix, o matrix.Options) (bool, error) {
				calls++
				if m.LiveCells() != 160 || o.Seed != matrix.DefSeed {
					t.Errorf("preview got seed %v, %v live cells", o.Seed, m.LiveCells())
				}
				return tt.confirmed, tt.previewErr
			}
			err := run(&EnvOptions{}, matrix.DefaultOptions, sink, preview, ioutil.Discard)
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v", err)
			}
			if calls != 1 || len(sink.writes) != tt.wantWrites {
				t.Errorf("got %v previews, %v writes", calls, len(sink.writes))
			}
		})
	}
}

func BenchmarkRun(b *testing.B) {
	sink := &memorySink{}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink.writes = sink.writes[:0]
		if err := run(&EnvOptions{}, matrix.DefaultOptions, sink, nil, ioutil.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
