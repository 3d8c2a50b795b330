// Package main generates random Ricochet Robots problem instances.
// Generation is deterministic for a given seed so benchmark suites can
// be reproduced.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/elektrokombinacija/ricochet-research/internal/board"
	"github.com/elektrokombinacija/ricochet-research/internal/encoding"
)

// InstanceParams defines parameters for instance generation.
type InstanceParams struct {
	Seed     int64  `json:"seed"`
	Size     int    `json:"size"`
	Walls    int    `json:"walls"`
	Center   bool   `json:"center"`
	Wildcard bool   `json:"wildcard"`
	Format   string `json:"format"`
}

// IndexEntry describes one generated instance in the suite index.
type IndexEntry struct {
	Name   string         `json:"name"`
	File   string         `json:"file"`
	Params InstanceParams `json:"params"`
	Goal   string         `json:"goal"`
}

// Index is written alongside the instances.
type Index struct {
	Generated string       `json:"generated"`
	Instances []IndexEntry `json:"instances"`
}

// generateInstance builds one random problem. Walls are placed on
// interior edges only; robots and the target all land on distinct
// cells.
func generateInstance(params InstanceParams) (*board.Problem, error) {
	rng := rand.New(rand.NewSource(params.Seed))

	b, err := board.NewBoard(params.Size)
	if err != nil {
		return nil, err
	}

	occupied := make(map[board.Pos]bool)
	if params.Center {
		if err := b.EncloseCenter(); err != nil {
			return nil, err
		}
		for _, c := range b.CenterCells() {
			occupied[c] = true
		}
	}

	placed := 0
	for attempts := 0; placed < params.Walls && attempts < params.Walls*20; attempts++ {
		cell := board.Pos{X: rng.Intn(params.Size), Y: rng.Intn(params.Size)}
		dir := board.South
		if rng.Intn(2) == 0 {
			dir = board.East
		}
		if b.WallBetween(cell, dir) {
			continue
		}
		if err := b.SetWall(cell, dir); err != nil {
			continue
		}
		placed++
	}

	randomFree := func() board.Pos {
		for {
			p := board.Pos{X: rng.Intn(params.Size), Y: rng.Intn(params.Size)}
			if !occupied[p] {
				occupied[p] = true
				return p
			}
		}
	}

	var robots board.RobotPositions
	for _, c := range board.Colors {
		robots[c] = randomFree()
	}

	goal := board.Goal{Cell: randomFree()}
	if params.Wildcard {
		goal.Any = true
	} else {
		goal.Color = board.Colors[rng.Intn(len(board.Colors))]
	}

	return board.NewProblem(b, robots, goal)
}

func extension(format string) string {
	switch format {
	case encoding.FormatASP:
		return ".lp"
	case encoding.FormatPDDL:
		return ".pddl"
	default:
		return ".txt"
	}
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	size := flag.Int("size", 16, "Board size")
	walls := flag.Int("walls", 12, "Number of interior walls")
	center := flag.Bool("center", true, "Enclose the central 2x2 block like the physical boards")
	count := flag.Int("count", 1, "Number of instances to generate")
	wildcard := flag.Bool("wildcard", false, "Generate wildcard targets instead of colored ones")
	format := flag.String("format", encoding.FormatASP, "Output format: asp, pddl or compact")
	outputDir := flag.String("output", "testdata", "Output directory")

	flag.Parse()

	if *wildcard && *format == encoding.FormatCompact {
		fmt.Fprintln(os.Stderr, "Error: the compact format has no wildcard target notation")
		os.Exit(1)
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	index := Index{Generated: time.Now().UTC().Format(time.RFC3339)}

	for i := 0; i < *count; i++ {
		params := InstanceParams{
			Seed:     *seed + int64(i),
			Size:     *size,
			Walls:    *walls,
			Center:   *center,
			Wildcard: *wildcard,
			Format:   *format,
		}

		p, err := generateInstance(params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating instance %d: %v\n", i, err)
			os.Exit(1)
		}

		text, err := encoding.Encode(p, *format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding instance %d: %v\n", i, err)
			os.Exit(1)
		}

		name := fmt.Sprintf("ricochet_%dx%d_s%d", *size, *size, params.Seed)
		filename := filepath.Join(*outputDir, name+extension(*format))
		if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", filename, err)
			os.Exit(1)
		}

		index.Instances = append(index.Instances, IndexEntry{
			Name:   name,
			File:   filepath.Base(filename),
			Params: params,
			Goal:   p.Goal.String(),
		})
		fmt.Printf("Generated: %s (%d walls, goal %v)\n", filename, *walls, p.Goal)
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling index: %v\n", err)
		os.Exit(1)
	}
	indexPath := filepath.Join(*outputDir, "index.json")
	if err := os.WriteFile(indexPath, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing index: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Index written to: %s\n", indexPath)
}
