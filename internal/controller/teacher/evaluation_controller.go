package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/controller"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/service"
)

type EvaluationController struct {
	evaluationService service.EvaluationService
}

func NewEvaluationController(evaluationService service.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService}
}

// ListEvaluations godoc
// @Summary (Teacher) List my evaluations
// @Description Evaluations created by the caller, newest first.
// @Tags Teacher - Evaluations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EvaluationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /teacher/evaluations [get]
func (c *EvaluationController) ListEvaluations(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	list, err := c.evaluationService.ListOwnedByTeacher(ctx.Request.Context(), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// CreateEvaluation godoc
// @Summary (Teacher) Create an evaluation
// @Description Needs a topic, a start date before the end date and at least one question with exactly one correct answer. Blank question and answer ids are generated.
// @Tags Teacher - Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param evaluation body dto.EvaluationRequest true "Evaluation content"
// @Success 201 {object} dto.EvaluationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse
// @Router /teacher/evaluations [post]
func (c *EvaluationController) CreateEvaluation(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.EvaluationRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.evaluationService.CreateEvaluation(ctx.Request.Context(), p.UID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetEvaluation godoc
// @Summary (Teacher) Get one of my evaluations
// @Tags Teacher - Evaluations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/evaluations/{id} [get]
func (c *EvaluationController) GetEvaluation(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	resp, err := c.evaluationService.GetEvaluationForTeacher(ctx.Request.Context(), ctx.Param("id"), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateEvaluation godoc
// @Summary (Teacher) Update an evaluation
// @Description Replaces topic, dates and questions. Assigned groups are kept.
// @Tags Teacher - Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Param evaluation body dto.EvaluationRequest true "Evaluation content"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/evaluations/{id} [put]
func (c *EvaluationController) UpdateEvaluation(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.EvaluationRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.evaluationService.UpdateEvaluation(ctx.Request.Context(), ctx.Param("id"), p.UID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteEvaluation godoc
// @Summary (Teacher) Delete an evaluation
// @Description Hard delete. Existing submissions are kept.
// @Tags Teacher - Evaluations
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/evaluations/{id} [delete]
func (c *EvaluationController) DeleteEvaluation(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	if err := c.evaluationService.DeleteEvaluation(ctx.Request.Context(), ctx.Param("id"), p.UID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AssignGroups godoc
// @Summary (Teacher) Assign groups to an evaluation
// @Description Replaces the assigned group list; it is not merged with the previous one.
// @Tags Teacher - Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Param groups body dto.AssignGroupsRequest true "Group IDs"
// @Success 200 {object} dto.EvaluationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/evaluations/{id}/groups [put]
func (c *EvaluationController) AssignGroups(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.AssignGroupsRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.evaluationService.AssignGroups(ctx.Request.Context(), ctx.Param("id"), p.UID, req.GroupIDs)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSubmissions godoc
// @Summary (Teacher) Results of an evaluation
// @Description Submissions ordered by score, then student name.
// @Tags Teacher - Evaluations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/evaluations/{id}/submissions [get]
func (c *EvaluationController) ListSubmissions(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	list, err := c.evaluationService.ListSubmissionsForEvaluation(ctx.Request.Context(), ctx.Param("id"), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

func (c *EvaluationController) RegisterRoutes(rg *gin.RouterGroup) {
	evaluations := rg.Group("/evaluations")
	evaluations.GET("", c.ListEvaluations)
	evaluations.POST("", c.CreateEvaluation)
	evaluations.GET("/:id", c.GetEvaluation)
	evaluations.PUT("/:id", c.UpdateEvaluation)
	evaluations.DELETE("/:id", c.DeleteEvaluation)
	evaluations.PUT("/:id/groups", c.AssignGroups)
	evaluations.GET("/:id/submissions", c.ListSubmissions)
}
