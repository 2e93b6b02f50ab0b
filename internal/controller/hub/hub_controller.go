package hub

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/controller"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/service"
)

// HubController serves the shared resources: video hub, exercises and the
// code editor runner.
type HubController struct {
	videoService    service.VideoService
	exerciseService service.ExerciseService
	codeRunner      service.CodeRunnerService
}

func NewHubController(videoService service.VideoService, exerciseService service.ExerciseService, codeRunner service.CodeRunnerService) *HubController {
	return &HubController{
		videoService:    videoService,
		exerciseService: exerciseService,
		codeRunner:      codeRunner,
	}
}

// ListVideos godoc
// @Summary List hub videos
// @Tags Hub - Videos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.VideoResponse
// @Router /videos [get]
func (c *HubController) ListVideos(ctx *gin.Context) {
	videos, err := c.videoService.ListVideos(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

// AddVideo godoc
// @Summary (Teacher) Add a YouTube video
// @Description Accepts youtu.be, watch?v=, /embed/ and /v/ links. Name defaults to "Video <id>".
// @Tags Hub - Videos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param video body dto.AddVideoRequest true "Video"
// @Success 201 {object} dto.VideoResponse
// @Failure 400 {object} dto.ErrorResponse "Not a YouTube URL"
// @Failure 409 {object} dto.ErrorResponse "Already in the hub"
// @Router /videos [post]
func (c *HubController) AddVideo(ctx *gin.Context) {
	var req dto.AddVideoRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	video, err := c.videoService.AddVideo(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, video)
}

// DeleteVideo godoc
// @Summary (Teacher) Remove a video
// @Tags Hub - Videos
// @Security BearerAuth
// @Param id path int true "Video ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /videos/{id} [delete]
func (c *HubController) DeleteVideo(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.videoService.DeleteVideo(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListExercises godoc
// @Summary List exercises
// @Tags Hub - Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ExerciseResponse
// @Router /exercises [get]
func (c *HubController) ListExercises(ctx *gin.Context) {
	exercises, err := c.exerciseService.ListExercises(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary Get an exercise
// @Tags Hub - Exercises
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 200 {object} dto.ExerciseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exercises/{id} [get]
func (c *HubController) GetExercise(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	exercise, err := c.exerciseService.GetExercise(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exercise)
}

// CreateExercise godoc
// @Summary (Teacher) Create an exercise
// @Tags Hub - Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body dto.ExerciseRequest true "Exercise"
// @Success 201 {object} dto.ExerciseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /exercises [post]
func (c *HubController) CreateExercise(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.ExerciseRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	exercise, err := c.exerciseService.CreateExercise(ctx.Request.Context(), p.UID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, exercise)
}

// UpdateExercise godoc
// @Summary (Teacher) Update one of my exercises
// @Tags Hub - Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Param exercise body dto.ExerciseRequest true "Exercise"
// @Success 200 {object} dto.ExerciseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /exercises/{id} [put]
func (c *HubController) UpdateExercise(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ExerciseRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	exercise, err := c.exerciseService.UpdateExercise(ctx.Request.Context(), id, p.UID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exercise)
}

// DeleteExercise godoc
// @Summary (Teacher) Delete one of my exercises
// @Tags Hub - Exercises
// @Security BearerAuth
// @Param id path int true "Exercise ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /exercises/{id} [delete]
func (c *HubController) DeleteExercise(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.exerciseService.DeleteExercise(ctx.Request.Context(), id, p.UID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// RunCode godoc
// @Summary Compile and run editor code
// @Description Runs on the configured provider. Provider failures come back in the error field with status 200.
// @Tags Hub - Editor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code body dto.RunCodeRequest true "Source code, optional stdin and language (default java)"
// @Success 200 {object} dto.RunCodeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /editor/run [post]
func (c *HubController) RunCode(ctx *gin.Context) {
	var req dto.RunCodeRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.codeRunner.Run(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RegisterRoutes mounts the hub on rg. Mutations additionally pass through
// teacherOnly.
func (c *HubController) RegisterRoutes(rg *gin.RouterGroup, teacherOnly gin.HandlerFunc) {
	rg.GET("/videos", c.ListVideos)
	rg.POST("/videos", teacherOnly, c.AddVideo)
	rg.DELETE("/videos/:id", teacherOnly, c.DeleteVideo)

	rg.GET("/exercises", c.ListExercises)
	rg.GET("/exercises/:id", c.GetExercise)
	rg.POST("/exercises", teacherOnly, c.CreateExercise)
	rg.PUT("/exercises/:id", teacherOnly, c.UpdateExercise)
	rg.DELETE("/exercises/:id", teacherOnly, c.DeleteExercise)

	rg.POST("/editor/run", c.RunCode)
}
