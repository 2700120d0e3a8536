package benchmark

import (
	"path/filepath"
	"testing"
	"time"

	"cstr-go/pkg/cstr"
)

func smallOpts(c Component) *Options {
	opts := DefaultOptions()
	opts.Component = c
	opts.Iterations = 10
	opts.Lines = []*cstr.CString{
		cstr.FromString("the quick brown fox"),
		cstr.FromString("a,b,c,d"),
	}
	return opts
}

func TestRunEachComponent(t *testing.T) {
	for _, c := range Components {
		res, err := Run(smallOpts(c))
		if err != nil {
			t.Fatalf("Run(%s) failed: %v", c, err)
		}
		if res.Iterations != 10 {
			t.Errorf("%s: iterations = %d, want 10", c, res.Iterations)
		}
		if res.MinLatency > res.MaxLatency {
			t.Errorf("%s: min %v exceeds max %v", c, res.MinLatency, res.MaxLatency)
		}
	}
}

func TestRunSyntheticCorpus(t *testing.T) {
	opts := DefaultOptions()
	opts.Iterations = 5
	opts.LineSize = 64
	res, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.TotalTime <= 0 {
		t.Error("total time not recorded")
	}
}

func TestSummarizePercentiles(t *testing.T) {
	samples := make([]time.Duration, 100)
	for i := range samples {
		samples[i] = time.Duration(i+1) * time.Microsecond
	}
	res := summarize(samples)
	if res.MinLatency != time.Microsecond {
		t.Errorf("min = %v", res.MinLatency)
	}
	if res.MaxLatency != 100*time.Microsecond {
		t.Errorf("max = %v", res.MaxLatency)
	}
	if res.P95Latency < res.MedianLatency {
		t.Error("p95 below median")
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	res, err := Run(smallOpts(ComponentHash))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := WriteCSV(path, []*Results{res}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	// Appending a second batch must not fail either.
	if err := WriteCSV(path, []*Results{res}); err != nil {
		t.Fatalf("WriteCSV append failed: %v", err)
	}
}
