package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/controller"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/service"
	"github.com/rs/zerolog/log"
)

type EvaluationController struct {
	evaluationService service.EvaluationService
}

func NewEvaluationController(evaluationService service.EvaluationService) *EvaluationController {
	return &EvaluationController{evaluationService: evaluationService}
}

// ListEvaluations godoc
// @Summary (Student) Available evaluations and history
// @Description Evaluations open right now that the caller has not submitted, plus the caller's past submissions (newest first).
// @Tags Student - Evaluations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StudentDashboardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /student/evaluations [get]
func (c *EvaluationController) ListEvaluations(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	resp, err := c.evaluationService.ListAvailableForStudent(ctx.Request.Context(), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetEvaluation godoc
// @Summary (Student) Open an evaluation
// @Description Questions and options without the answer key. Only while the window is open and before submitting.
// @Tags Student - Evaluations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Success 200 {object} dto.StudentEvaluationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Closed or already submitted"
// @Router /student/evaluations/{id} [get]
func (c *EvaluationController) GetEvaluation(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	resp, err := c.evaluationService.GetEvaluationForStudent(ctx.Request.Context(), ctx.Param("id"), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitEvaluation godoc
// @Summary (Student) Submit answers
// @Description Every question must be answered. Graded on the spot from 1 to 5; one submission per evaluation.
// @Tags Student - Evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evaluation ID"
// @Param submission body dto.SubmitAttemptRequest true "Selected answer per question id"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Incomplete attempt"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Closed or already submitted"
// @Router /student/evaluations/{id}/submissions [post]
func (c *EvaluationController) SubmitEvaluation(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.SubmitAttemptRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	evaluationID := ctx.Param("id")
	log.Info().Str("evaluationID", evaluationID).Str("studentID", p.UID).Int("answerCount", len(req.SelectedAnswers)).Msg("Received evaluation submission")

	resp, err := c.evaluationService.SubmitForEvaluation(ctx.Request.Context(), p.UID, p.DisplayName(), evaluationID, req.SelectedAnswers)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSubmission godoc
// @Summary (Student) Result of one of my submissions
// @Tags Student - Evaluations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/submissions/{id} [get]
func (c *EvaluationController) GetSubmission(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	resp, err := c.evaluationService.GetSubmission(ctx.Request.Context(), ctx.Param("id"), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *EvaluationController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/evaluations", c.ListEvaluations)
	rg.GET("/evaluations/:id", c.GetEvaluation)
	rg.POST("/evaluations/:id/submissions", c.SubmitEvaluation)
	rg.GET("/submissions/:id", c.GetSubmission)
}
