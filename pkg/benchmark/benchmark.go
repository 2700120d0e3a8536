// Package benchmark measures the latency of the core string operations
// over a corpus of input lines and reports percentile statistics.
package benchmark

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"time"

	"cstr-go/internal/fn"
	"cstr-go/pkg/buffers"
	"cstr-go/pkg/cstr"
	"cstr-go/pkg/log"
)

// Component specifies which operation family to benchmark.
type Component int

const (
	ComponentSearch Component = iota // Find/RFind/Count over a window
	ComponentSplit                   // whitespace and literal splitting
	ComponentJoin                    // builder-backed joining
	ComponentSlice                   // stepped slicing
	ComponentCase                    // predicates and transforms
	ComponentHash                    // lazy hash computation
)

func (c Component) String() string {
	switch c {
	case ComponentSearch:
		return "Search"
	case ComponentSplit:
		return "Split"
	case ComponentJoin:
		return "Join"
	case ComponentSlice:
		return "Slice"
	case ComponentCase:
		return "Case"
	case ComponentHash:
		return "Hash"
	default:
		return "Unknown"
	}
}

// Components lists every benchmarkable component.
var Components = []Component{
	ComponentSearch, ComponentSplit, ComponentJoin,
	ComponentSlice, ComponentCase, ComponentHash,
}

// Options provides configuration for a benchmark run.
type Options struct {
	Component  Component
	Iterations int
	LineSize   int    // synthetic line length when no corpus is given
	Needle     string // substring used by the search component
	Lines      []*cstr.CString
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Component:  ComponentSearch,
		Iterations: 1000,
		LineSize:   1024,
		Needle:     "the",
	}
}

// Results holds the latency statistics of one component run.
type Results struct {
	Component     Component
	Iterations    int
	MinLatency    time.Duration
	MaxLatency    time.Duration
	AvgLatency    time.Duration
	MedianLatency time.Duration
	P95Latency    time.Duration
	P99Latency    time.Duration
	TotalTime     time.Duration
}

// Run executes the benchmark described by opts.
func Run(opts *Options) (*Results, error) {
	lines := opts.Lines
	if len(lines) == 0 {
		lines = syntheticLines(256, opts.LineSize)
		log.Debug().Int("lines", len(lines)).Int("size", opts.LineSize).
			Msg("generated synthetic corpus")
	}
	op, err := operation(opts, lines)
	if err != nil {
		return nil, err
	}

	samples := make([]time.Duration, 0, opts.Iterations)
	start := time.Now()
	for i := 0; i < opts.Iterations; i++ {
		t0 := time.Now()
		op(i)
		samples = append(samples, time.Since(t0))
	}
	total := time.Since(start)

	res := summarize(samples)
	res.Component = opts.Component
	res.Iterations = opts.Iterations
	res.TotalTime = total
	return res, nil
}

// RunAll benchmarks every component with the same options.
func RunAll(opts *Options) ([]*Results, error) {
	var results []*Results
	for _, c := range Components {
		o := *opts
		o.Component = c
		r, err := Run(&o)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// PrintResults writes a human-readable result block to stdout.
func PrintResults(r *Results) {
	fmt.Printf("=== %s ===\n", r.Component)
	fmt.Printf("  iterations: %d (total %v)\n", r.Iterations, r.TotalTime)
	fmt.Printf("  min/avg/max: %v / %v / %v\n", r.MinLatency, r.AvgLatency, r.MaxLatency)
	fmt.Printf("  median/p95/p99: %v / %v / %v\n", r.MedianLatency, r.P95Latency, r.P99Latency)
}

// operation binds one iteration of the chosen component over lines.
func operation(opts *Options, lines []*cstr.CString) (func(int), error) {
	needle := cstr.FromString(opts.Needle)
	sep := cstr.FromString(",")
	reverse := cstr.SliceSpec{Step: -1}

	pick := func(i int) *cstr.CString { return lines[i%len(lines)] }

	switch opts.Component {
	case ComponentSearch:
		return func(i int) {
			s := pick(i)
			s.Find(needle, 0, cstr.End)
			s.RFind(needle, 0, cstr.End)
			s.Count(needle, 0, cstr.End)
		}, nil
	case ComponentSplit:
		return func(i int) {
			s := pick(i)
			s.Split(nil, -1)
			s.Split(sep, -1)
		}, nil
	case ComponentJoin:
		return func(i int) {
			s := pick(i)
			// Split with a nil separator cannot fail.
			cstr.JoinStrings(sep, fn.Must(s.Split(nil, -1)))
		}, nil
	case ComponentSlice:
		return func(i int) {
			s := pick(i)
			s.Slice(reverse)
			s.Slice(cstr.SliceSpec{Step: 2})
		}, nil
	case ComponentCase:
		return func(i int) {
			s := pick(i)
			s.IsAlnum()
			s.Lower()
			s.SwapCase()
		}, nil
	case ComponentHash:
		return func(i int) {
			// Fresh copy each round so the lazy cache never short-circuits.
			pick(i).Copy().Hash()
		}, nil
	default:
		return nil, fmt.Errorf("unknown component: %d", opts.Component)
	}
}

// syntheticLines builds count pseudo-text lines of about size bytes.
func syntheticLines(count, size int) []*cstr.CString {
	rng := rand.New(rand.NewSource(42))
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog"}

	lines := make([]*cstr.CString, count)
	buf := buffers.PayloadBufferPool.Get()
	defer buffers.PayloadBufferPool.Put(buf)
	for i := range lines {
		line := buf[:0]
		for len(line) < size {
			if len(line) > 0 {
				line = append(line, ' ')
			}
			line = append(line, words[rng.Intn(len(words))]...)
		}
		lines[i] = cstr.FromBytes(line[:size])
	}
	return lines
}

func summarize(samples []time.Duration) *Results {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}

	n := len(sorted)
	return &Results{
		MinLatency:    sorted[0],
		MaxLatency:    sorted[n-1],
		AvgLatency:    sum / time.Duration(n),
		MedianLatency: sorted[n/2],
		P95Latency:    sorted[min(n-1, n*95/100)],
		P99Latency:    sorted[min(n-1, n*99/100)],
	}
}

// WriteCSV appends results to a CSV file, writing a header when the
// file is new.
func WriteCSV(path string, results []*Results) error {
	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	if os.IsNotExist(statErr) {
		if _, err := fmt.Fprintln(f, "component,iterations,min_ns,max_ns,avg_ns,median_ns,p95_ns,p99_ns,total_ns"); err != nil {
			return err
		}
	}
	for _, r := range results {
		_, err := fmt.Fprintf(f, "%s,%d,%d,%d,%d,%d,%d,%d,%d\n",
			r.Component, r.Iterations,
			r.MinLatency.Nanoseconds(), r.MaxLatency.Nanoseconds(),
			r.AvgLatency.Nanoseconds(), r.MedianLatency.Nanoseconds(),
			r.P95Latency.Nanoseconds(), r.P99Latency.Nanoseconds(),
			r.TotalTime.Nanoseconds())
		if err != nil {
			return err
		}
	}
	return nil
}
