// This defines a basic executable for generating a maze, optionally
// solving it, and saving the result as a PNG image.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/BartekFo/maze-lab/render"
)

func run() int {
	var width, height, scale int
	var randomSeed int64
	var showSolution bool
	var outFilename string
	flag.IntVar(&width, "width", 31,
		"The width of the maze, in grid cells.")
	flag.IntVar(&height, "height", 31,
		"The height of the maze, in grid cells.")
	flag.IntVar(&scale, "scale", 0,
		"Pixels per grid cell. Non-positive uses the default.")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use.")
	flag.BoolVar(&showSolution, "show_solution", false,
		"If set, solves the maze and draws the path.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.Parse()
	if outFilename == "" {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}

	m, e := maze.New(width, height, &maze.Options{Seed: randomSeed})
	if e != nil {
		fmt.Printf("Failed creating maze: %s\n", e)
		return 1
	}

	start := time.Now()
	m.Generate()
	fmt.Printf("Generated %dx%d maze (seed %d) in %.4f seconds.\n", width,
		height, m.Seed(), time.Since(start).Seconds())

	if showSolution {
		start = time.Now()
		path := maze.NewSolver().Solve(m)
		if path == nil {
			fmt.Println("No path between entrance and exit.")
			return 1
		}
		fmt.Printf("Solved maze in %.4f seconds, path length %d.\n",
			time.Since(start).Seconds(), len(path))
	}

	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	if e := render.EncodePNG(f, m, scale); e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func main() {
	os.Exit(run())
}
