package main

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"
)

// Result is the outcome of a single request
type Result struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Err          error
}

// Stats aggregates request outcomes
type Stats struct {
	mu sync.Mutex

	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioCounts     map[string]int
	StatusCounts       map[int]int
}

// NewStats creates empty statistics with a zero count for every scenario
func NewStats(scenarios []Scenario) *Stats {
	s := &Stats{
		ErrorCounts:    make(map[string]int),
		ScenarioCounts: make(map[string]int),
		StatusCounts:   make(map[int]int),
	}
	for _, scenario := range scenarios {
		s.ScenarioCounts[scenario.Name] = 0
	}
	return s
}

// Record adds one outcome
func (s *Stats) Record(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.TotalRequests++
	s.ScenarioCounts[r.Scenario]++
	if r.StatusCode != 0 {
		s.StatusCounts[r.StatusCode]++
	}

	if r.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		msg := "unknown"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		s.ErrorCounts[msg]++
	}

	if r.ResponseTime > 0 {
		s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	}
}

// Percentile returns the p-th percentile response time, p in [0, 100]
func (s *Stats) Percentile(p int) time.Duration {
	s.mu.Lock()
	sorted := slices.Clone(s.ResponseTimes)
	s.mu.Unlock()

	if len(sorted) == 0 {
		return 0
	}
	slices.Sort(sorted)

	i := len(sorted) * p / 100
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

// Average returns the mean response time
func (s *Stats) Average() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ResponseTimes) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s.ResponseTimes {
		total += d
	}
	return total / time.Duration(len(s.ResponseTimes))
}

// Print writes a human readable report
func (s *Stats) Print(w io.Writer) {
	var rps float64
	if s.TotalTime > 0 {
		rps = float64(s.SuccessfulRequests) / s.TotalTime.Seconds()
	}

	fmt.Fprintln(w, "\n================= TEST RESULTS =================")
	fmt.Fprintf(w, "Total Requests:      %d\n", s.TotalRequests)
	fmt.Fprintf(w, "Successful Requests: %d (%.1f%%)\n", s.SuccessfulRequests, share(s.SuccessfulRequests, s.TotalRequests))
	fmt.Fprintf(w, "Failed Requests:     %d (%.1f%%)\n", s.FailedRequests, share(s.FailedRequests, s.TotalRequests))
	fmt.Fprintf(w, "Total Test Time:     %.2f seconds\n", s.TotalTime.Seconds())
	fmt.Fprintf(w, "Throughput:          %.2f successful requests/second\n", rps)

	fmt.Fprintln(w, "\n----------------- RESPONSE TIMES -----------------")
	fmt.Fprintf(w, "Average Response:    %v\n", s.Average())
	fmt.Fprintf(w, "Minimum Response:    %v\n", s.Percentile(0))
	fmt.Fprintf(w, "P50 Response:        %v\n", s.Percentile(50))
	fmt.Fprintf(w, "P90 Response:        %v\n", s.Percentile(90))
	fmt.Fprintf(w, "P99 Response:        %v\n", s.Percentile(99))
	fmt.Fprintf(w, "Maximum Response:    %v\n", s.Percentile(100))

	fmt.Fprintln(w, "\n----------------- SCENARIO DISTRIBUTION -----------------")
	for _, name := range sortedKeys(s.ScenarioCounts) {
		fmt.Fprintf(w, "%-15s: %d requests (%.1f%%)\n", name, s.ScenarioCounts[name], share(s.ScenarioCounts[name], s.TotalRequests))
	}

	fmt.Fprintln(w, "\n----------------- STATUS CODES -----------------")
	for _, code := range sortedKeys(s.StatusCounts) {
		fmt.Fprintf(w, "%d: %d\n", code, s.StatusCounts[code])
	}

	if s.FailedRequests > 0 {
		fmt.Fprintln(w, "\n----------------- ERROR DISTRIBUTION -----------------")
		for _, msg := range sortedKeys(s.ErrorCounts) {
			fmt.Fprintf(w, "%-40s: %d (%.1f%%)\n", msg, s.ErrorCounts[msg], share(s.ErrorCounts[msg], s.TotalRequests))
		}
	}
	fmt.Fprintln(w, "================================================")
}

func share(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func sortedKeys[K int | string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
