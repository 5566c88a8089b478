// Package main prints the plan preview the intake form would show for a
// given profile.
//
// Usage:
//
//	go run ./cmd/preview --goal=strength --days=3 [--experience=beginner] [--equipment=dumbbells] [--text]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hasunakalanka/Forma.Ai/internal/preview"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	goal := fs.String("goal", "", "fat_loss | muscle_gain | strength | general_fitness")
	days := fs.String("days", "", "training days per week (2-6)")
	experience := fs.String("experience", "", "beginner | intermediate | advanced")
	equipment := fs.String("equipment", "", "full_gym | home_gym | dumbbells | bodyweight")
	text := fs.Bool("text", false, "print plain text instead of JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	plan := preview.Resolve(preview.Input{
		Goal:       *goal,
		Days:       preview.ParseDays(*days),
		Experience: *experience,
		Equipment:  *equipment,
	})

	if *text {
		fmt.Fprintln(stdout, plan.Summary)
		fmt.Fprintln(stdout)
		for _, d := range plan.Schedule {
			fmt.Fprintf(stdout, "%-6s %s\n", d.Day, d.Focus)
		}
		return 0
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		fmt.Fprintf(stderr, "encode preview: %v\n", err)
		return 1
	}
	return 0
}
