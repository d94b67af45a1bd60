package mazeapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/BartekFo/maze-lab/maze"
	"github.com/BartekFo/maze-lab/render"
	"github.com/BartekFo/maze-lab/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze lifecycle operations over HTTP.
type MazeController struct {
	mazeService i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(svc i.MazeManager) (*MazeController, error) {
	return &MazeController{mazeService: svc}, nil
}

// RegisterRoutes registers the maze routes.
func (mc *MazeController) RegisterRoutes(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.byID)
		mazes.POST("/:ID/solve", mc.solve)
		mazes.GET("/:ID/image", mc.image)
		mazes.DELETE("/:ID", mc.remove)
	}
}

// create handles maze creation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Create(ctx, request.Width, request.Height, request.Seed)
	if err != nil {
		if errors.Is(err, maze.ErrInvalidDimensions) || errors.Is(err, i.ErrDimensionTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record.ID, record.Maze, record.Duration))
}

// byID retrieves a stored maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	m, ok := mc.loadMaze(ctx, id)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(id, m, 0))
}

// solve runs the shortest-path search on a stored maze.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	result, err := mc.mazeService.Solve(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}

	if len(result.Path) == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no path between entrance and exit"})
		return
	}

	response := &SolveMazeResponse{
		Path:     make([]PositionResponse, 0, len(result.Path)),
		Length:   len(result.Path),
		SolvedMS: float64(result.Duration.Microseconds()) / 1000,
	}
	for _, pos := range result.Path {
		response.Path = append(response.Path, newPositionResponse(pos))
	}

	ctx.JSON(http.StatusOK, response)
}

// image renders a stored maze as a PNG.
func (mc *MazeController) image(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	m, ok := mc.loadMaze(ctx, id)
	if !ok {
		return
	}

	scale, err := strconv.Atoi(ctx.DefaultQuery("scale", "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "scale must be an integer"})
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, m, scale); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering maze"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

// remove deletes a stored maze.
func (mc *MazeController) remove(ctx *gin.Context) {
	id, ok := mc.mazeID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Remove(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while removing maze"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// mazeID parses the ID path parameter, replying 400 on malformed IDs.
func (mc *MazeController) mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// loadMaze fetches the maze, replying 404 when it is unknown.
func (mc *MazeController) loadMaze(ctx *gin.Context, id uuid.UUID) (*maze.GridMaze, bool) {
	m, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
			return nil, false
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return nil, false
	}
	return m, true
}
