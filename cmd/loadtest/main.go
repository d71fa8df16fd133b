// Command loadtest drives a running money flow API with a mix of create, list, update and delete requests
// and prints latency statistics.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8000/api/v1", "Base URL of the API")
	delayMs := flag.Int("delay", 100, "Delay between requests of one worker in milliseconds")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-request timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := NewRunner(RunnerConfig{
		BaseURL:       *baseURL,
		Concurrency:   *concurrency,
		TotalRequests: *totalRequests,
		Delay:         time.Duration(*delayMs) * time.Millisecond,
		Timeout:       *timeout,
	})

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Scenarios: %d, concurrency: %d, requests: %d, delay: %d ms\n",
		len(runner.scenarios), *concurrency, *totalRequests, *delayMs)

	stats, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Load test aborted: %v\n", err)
		os.Exit(1)
	}

	stats.Print(os.Stdout)
}
