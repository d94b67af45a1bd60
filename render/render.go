// Package render rasterizes mazes to images. Cell states map to fixed
// colors: walls black, passages white, visited cells light blue, the
// solved path green, the entrance red and the exit orange.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/yalue/image_utils"
)

// DefaultScale is the edge length of a cell in pixels when the caller does
// not pick one.
const DefaultScale = 9

// Width of the white margin EncodePNG draws around the maze.
const borderPixels = 4

var (
	wallColor     = color.RGBA{A: 255}
	passageColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	visitedColor  = color.RGBA{R: 179, G: 179, B: 255, A: 255}
	pathColor     = color.RGBA{G: 255, A: 255}
	entranceColor = color.RGBA{R: 255, A: 255}
	exitColor     = color.RGBA{R: 255, G: 128, A: 255}
)

// MazeImage adapts a maze to image.Image, drawing each cell as a square
// block of scale×scale pixels. Create using NewMazeImage.
type MazeImage struct {
	m     *maze.GridMaze
	scale int
}

// NewMazeImage wraps the maze in an image view. Non-positive scales fall
// back to DefaultScale.
func NewMazeImage(m *maze.GridMaze, scale int) *MazeImage {
	if scale < 1 {
		scale = DefaultScale
	}
	return &MazeImage{m: m, scale: scale}
}

func (mi *MazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (mi *MazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, mi.m.Width()*mi.scale, mi.m.Height()*mi.scale)
}

func (mi *MazeImage) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= mi.m.Width()*mi.scale || y >= mi.m.Height()*mi.scale {
		return color.Transparent
	}
	pos := maze.CellPosition{Row: y / mi.scale, Col: x / mi.scale}
	switch pos {
	case mi.m.Entrance():
		return entranceColor
	case mi.m.Exit():
		return exitColor
	}
	switch mi.m.StateAt(pos) {
	case maze.Passage:
		return passageColor
	case maze.Visited:
		return visitedColor
	case maze.OnPath:
		return pathColor
	}
	return wallColor
}

// EncodePNG writes the maze to w as a PNG with a white margin around it.
func EncodePNG(w io.Writer, m *maze.GridMaze, scale int) error {
	pic := image_utils.ToRGBA(NewMazeImage(m, scale))
	return png.Encode(w, image_utils.AddImageBorder(pic, color.White, borderPixels))
}
