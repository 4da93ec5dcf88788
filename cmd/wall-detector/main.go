// cmd/wall-detector/main.go
//
// Interactive capture of wall segments. Each line typed is x1 y1 x2 y2 in
// whole millimetres; q ends the session, Ctrl+C or Esc abandons it without
// saving. Walls longer than 100mm that run close to horizontal or vertical
// are written to walls.json for planmorph to draw.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/planmorph/internal/detector"
	"github.com/kingrea/planmorph/internal/walls"
)

func main() {
	d := detector.New()

	// Run blocks until the user types q
	if err := detector.Run(d); err != nil {
		if errors.Is(err, detector.ErrAborted) {
			fmt.Fprintf(os.Stderr, "Aborted, %s left unchanged\n", walls.DefaultFile)
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error running prompt: %v\n", err)
		os.Exit(1)
	}

	n, err := d.Save(walls.DefaultFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %d walls to %s\n", n, walls.DefaultFile)

	heading := lipgloss.NewStyle().Bold(true)
	fmt.Println()
	fmt.Println(heading.Render("Valid walls:"))
	valid := d.Valid()
	if len(valid) == 0 {
		fmt.Println("No valid walls found.")
		return
	}
	for _, s := range valid {
		fmt.Printf("Wall: %s\n", s)
	}
}
