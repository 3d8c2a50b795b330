// Package main runs the solver backends over a directory of problem
// instances and collects timing and cost metrics.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/config"
	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
	"github.com/elektrokombinacija/ricochet-research/internal/solver"
)

// BenchmarkResult stores results from a single solver run.
type BenchmarkResult struct {
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash"`
	GoVersion  string  `json:"go_version"`
	OS         string  `json:"os"`
	Arch       string  `json:"arch"`
	Instance   string  `json:"instance"`
	BoardSize  int     `json:"board_size"`
	Goal       string  `json:"goal"`
	Solver     string  `json:"solver"`
	RuntimeMs  float64 `json:"runtime_ms"`
	Success    bool    `json:"success"`
	Cost       int     `json:"cost"`
	Error      string  `json:"error,omitempty"`
}

// SolverMetrics holds per-solver aggregated metrics.
type SolverMetrics struct {
	Name           string
	TotalRuns      int
	Successes      int
	TotalRuntimeMs float64
	TotalCost      int
}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func loadProblem(path string) (*board.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(data)
	return encoding.Decode(text, encoding.Sniff(text))
}

func runSolver(s solver.Solver, p *board.Problem, name string, timeout time.Duration) *BenchmarkResult {
	result := &BenchmarkResult{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		CommitHash: getGitCommit(),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Instance:   name,
		BoardSize:  p.Board.Size(),
		Goal:       p.Goal.String(),
		Solver:     s.Name(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	moves, err := s.Solve(ctx, p)
	result.RuntimeMs = float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Success = true
	result.Cost = moves.Cost()
	return result
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"timestamp", "commit_hash", "go_version", "os", "arch",
		"instance", "board_size", "goal", "solver",
		"runtime_ms", "success", "cost", "error",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			r.Instance, fmt.Sprintf("%d", r.BoardSize), r.Goal, r.Solver,
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%t", r.Success),
			fmt.Sprintf("%d", r.Cost), r.Error,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(results []*BenchmarkResult, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func printSummary(results []*BenchmarkResult) {
	metrics := make(map[string]*SolverMetrics)
	for _, r := range results {
		m, ok := metrics[r.Solver]
		if !ok {
			m = &SolverMetrics{Name: r.Solver}
			metrics[r.Solver] = m
		}
		m.TotalRuns++
		if r.Success {
			m.Successes++
			m.TotalRuntimeMs += r.RuntimeMs
			m.TotalCost += r.Cost
		}
	}

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-10s %8s %8s %12s %8s\n", "Solver", "Runs", "Success", "Avg Time(ms)", "AvgCost")
	fmt.Println(strings.Repeat("-", 50))

	var names []string
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := metrics[name]
		avgTime := 0.0
		avgCost := 0.0
		if m.Successes > 0 {
			avgTime = m.TotalRuntimeMs / float64(m.Successes)
			avgCost = float64(m.TotalCost) / float64(m.Successes)
		}
		fmt.Printf("%-10s %8d %8d %12.2f %8.2f\n", m.Name, m.TotalRuns, m.Successes, avgTime, avgCost)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing problem instances")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "Output CSV file")
	cfgPath := flag.String("config", "", "Solver configuration file")
	timeout := flag.Duration("timeout", 5*time.Minute, "Timeout per solver run")
	solverFilter := flag.String("solver", "asp,pddl,ricli", "Solvers to run (comma-separated)")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	var files []string
	for _, pattern := range []string{"*.lp", "*.pddl", "*.txt"} {
		matches, err := filepath.Glob(filepath.Join(*inputDir, pattern))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding instance files: %v\n", err)
			os.Exit(1)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No instance files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_instances first: go run ./tools/gen_instances -count 10 -output %s\n", *inputDir)
		os.Exit(1)
	}

	var backends []solver.Solver
	for _, name := range strings.Split(*solverFilter, ",") {
		s, err := solver.New(strings.TrimSpace(name), cfg, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		backends = append(backends, s)
	}

	var results []*BenchmarkResult
	totalRuns := len(files) * len(backends)
	currentRun := 0

	fmt.Printf("Running benchmarks: %d instances x %d solvers = %d runs\n",
		len(files), len(backends), totalRuns)
	fmt.Printf("Timeout per run: %v\n\n", *timeout)

	for _, file := range files {
		p, err := loadProblem(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}

		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		for _, s := range backends {
			currentRun++
			if *verbose {
				fmt.Printf("[%d/%d] %s / %s ... ", currentRun, totalRuns, name, s.Name())
			} else {
				fmt.Printf("\r[%d/%d] Running...", currentRun, totalRuns)
			}

			result := runSolver(s, p, name, *timeout)
			results = append(results, result)

			if *verbose {
				if result.Success {
					fmt.Printf("OK (%.2fms, cost=%d)\n", result.RuntimeMs, result.Cost)
				} else {
					fmt.Printf("FAILED (%s)\n", result.Error)
				}
			}
		}
	}

	fmt.Println()

	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	jsonFile := strings.TrimSuffix(*outputFile, filepath.Ext(*outputFile)) + ".json"
	if err := writeJSON(results, jsonFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s and %s\n", *outputFile, jsonFile)

	printSummary(results)
}
