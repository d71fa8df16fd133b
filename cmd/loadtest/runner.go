package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// moneyFlowPayload mirrors the create and update request bodies
type moneyFlowPayload struct {
	ID           uint64 `json:"id,omitempty"`
	Title        string `json:"title"`
	Amount       int64  `json:"amount"`
	OccurredDate string `json:"occurred_date"`
	Kind         string `json:"kind,omitempty"`
}

// Scenario is one kind of request the runner can issue
type Scenario struct {
	Name   string
	Weight int
	build  func(r *Runner) (*http.Request, error)
}

// RunnerConfig controls the shape of a load test
type RunnerConfig struct {
	BaseURL       string
	Concurrency   int
	TotalRequests int
	Delay         time.Duration
	Timeout       time.Duration
}

// Runner issues requests from a pool of workers and records the outcomes
type Runner struct {
	config    RunnerConfig
	client    *http.Client
	scenarios []Scenario

	mu         sync.Mutex
	createdIDs []uint64
}

// NewRunner creates a runner with the default scenario mix
func NewRunner(config RunnerConfig) *Runner {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}

	return &Runner{
		config:    config,
		client:    &http.Client{Timeout: config.Timeout},
		scenarios: defaultScenarios(),
	}
}

func defaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Create Expense", Weight: 4, build: func(r *Runner) (*http.Request, error) {
			return r.jsonRequest(http.MethodPost, "/money_flows", randomPayload("expense"))
		}},
		{Name: "Create Income", Weight: 2, build: func(r *Runner) (*http.Request, error) {
			return r.jsonRequest(http.MethodPost, "/money_flows", randomPayload("income"))
		}},
		{Name: "List All", Weight: 2, build: func(r *Runner) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, r.config.BaseURL+"/money_flows", nil)
		}},
		{Name: "List Income", Weight: 1, build: func(r *Runner) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, r.config.BaseURL+"/money_flows?kind=income", nil)
		}},
		{Name: "Get One", Weight: 2, build: func(r *Runner) (*http.Request, error) {
			return http.NewRequest(http.MethodGet, r.config.BaseURL+"/money_flows/"+strconv.FormatUint(r.pickID(), 10), nil)
		}},
		{Name: "Update", Weight: 1, build: func(r *Runner) (*http.Request, error) {
			payload := randomPayload("")
			payload.ID = r.pickID()
			return r.jsonRequest(http.MethodPut, "/money_flows", payload)
		}},
		{Name: "Delete", Weight: 1, build: func(r *Runner) (*http.Request, error) {
			return r.jsonRequest(http.MethodDelete, "/money_flows", map[string]uint64{"id": r.takeID()})
		}},
	}
}

func randomPayload(kind string) moneyFlowPayload {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rand.IntN(60))
	return moneyFlowPayload{
		Title:        fmt.Sprintf("load-%d", rand.IntN(1_000_000)),
		Amount:       rand.Int64N(100_000),
		OccurredDate: day.Format("2006-01-02T15:04:05"),
		Kind:         kind,
	}
}

// Run executes the configured number of requests and returns the aggregated statistics
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	stats := NewStats(r.scenarios)
	jobs := make(chan Scenario)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < r.config.TotalRequests; i++ {
			select {
			case jobs <- r.pickScenario():
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	start := time.Now()
	for i := 0; i < r.config.Concurrency; i++ {
		g.Go(func() error {
			for scenario := range jobs {
				if r.config.Delay > 0 {
					select {
					case <-time.After(r.config.Delay):
					case <-gctx.Done():
						return gctx.Err()
					}
				}
				stats.Record(r.execute(gctx, scenario))
			}
			return nil
		})
	}

	err := g.Wait()
	stats.TotalTime = time.Since(start)
	return stats, err
}

func (r *Runner) execute(ctx context.Context, scenario Scenario) Result {
	result := Result{Scenario: scenario.Name}

	req, err := scenario.build(r)
	if err != nil {
		result.Err = err
		return result
	}
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := r.client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	// 422 is the documented answer for unknown IDs, which random picks produce
	result.Success = resp.StatusCode < 300 || resp.StatusCode == http.StatusUnprocessableEntity
	if !result.Success {
		result.Err = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}

	if req.Method == http.MethodPost && resp.StatusCode == http.StatusOK {
		var created moneyFlowPayload
		if err := json.NewDecoder(resp.Body).Decode(&created); err == nil && created.ID > 0 {
			r.remember(created.ID)
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return result
}

func (r *Runner) jsonRequest(method, path string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(method, r.config.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (r *Runner) pickScenario() Scenario {
	total := 0
	for _, s := range r.scenarios {
		total += s.Weight
	}
	n := rand.IntN(total)
	for _, s := range r.scenarios {
		if n < s.Weight {
			return s
		}
		n -= s.Weight
	}
	return r.scenarios[0]
}

func (r *Runner) remember(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createdIDs = append(r.createdIDs, id)
}

// pickID returns a previously created ID, or 1 when nothing was created yet
func (r *Runner) pickID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.createdIDs) == 0 {
		return 1
	}
	return r.createdIDs[rand.IntN(len(r.createdIDs))]
}

// takeID removes and returns a previously created ID so it is deleted only once
func (r *Runner) takeID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.createdIDs) == 0 {
		return 1
	}
	i := rand.IntN(len(r.createdIDs))
	id := r.createdIDs[i]
	r.createdIDs[i] = r.createdIDs[len(r.createdIDs)-1]
	r.createdIDs = r.createdIDs[:len(r.createdIDs)-1]
	return id
}
