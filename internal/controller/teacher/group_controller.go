package teacher

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/classroom-portal/internal/controller"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/service"
)

type GroupController struct {
	groupService service.GroupService
}

func NewGroupController(groupService service.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// ListGroups godoc
// @Summary (Teacher) List my groups
// @Tags Teacher - Groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GroupResponse
// @Router /teacher/groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	groups, err := c.groupService.ListGroups(ctx.Request.Context(), p.UID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// CreateGroup godoc
// @Summary (Teacher) Create a group
// @Tags Teacher - Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body dto.CreateGroupRequest true "Group name"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /teacher/groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.CreateGroupRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	group, err := c.groupService.CreateGroup(ctx.Request.Context(), p.UID, req.Name)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, group)
}

// ListStudents godoc
// @Summary (Teacher) Roster of a group
// @Description Students with their grade book and attendance, sorted by name.
// @Tags Teacher - Groups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Success 200 {array} dto.GroupStudentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/groups/{id}/students [get]
func (c *GroupController) ListStudents(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	students, err := c.groupService.ListStudents(ctx.Request.Context(), p.UID, ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// AddStudent godoc
// @Summary (Teacher) Add a student to a group
// @Tags Teacher - Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param student body dto.AddStudentRequest true "Student name"
// @Success 201 {object} dto.GroupStudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/groups/{id}/students [post]
func (c *GroupController) AddStudent(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.AddStudentRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	student, err := c.groupService.AddStudent(ctx.Request.Context(), p.UID, ctx.Param("id"), req.Name)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, student)
}

// SetGrade godoc
// @Summary (Teacher) Set one grade
// @Description Writes slot index (0-2) of momento m1, m2 or m3. Values go from 0 to 10; null clears the slot.
// @Tags Teacher - Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param student_id path string true "Student ID"
// @Param grade body dto.SetGradeRequest true "Grade"
// @Success 200 {object} dto.GroupStudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/groups/{id}/students/{student_id}/grades [put]
func (c *GroupController) SetGrade(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.SetGradeRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	student, err := c.groupService.SetGrade(ctx.Request.Context(), p.UID, ctx.Param("id"), ctx.Param("student_id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// SaveAttendance godoc
// @Summary (Teacher) Save a day's attendance
// @Description Stores present, absent or excused for each listed student under the given yyyy-MM-dd date, all in one batch.
// @Tags Teacher - Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Group ID"
// @Param attendance body dto.SaveAttendanceRequest true "Attendance records"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /teacher/groups/{id}/attendance [put]
func (c *GroupController) SaveAttendance(ctx *gin.Context) {
	p, ok := controller.Principal(ctx)
	if !ok {
		return
	}
	var req dto.SaveAttendanceRequest
	if !controller.BindJSON(ctx, &req) {
		return
	}
	if err := c.groupService.SaveAttendance(ctx.Request.Context(), p.UID, ctx.Param("id"), req); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Attendance saved"})
}

func (c *GroupController) RegisterRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups")
	groups.GET("", c.ListGroups)
	groups.POST("", c.CreateGroup)
	groups.GET("/:id/students", c.ListStudents)
	groups.POST("/:id/students", c.AddStudent)
	groups.PUT("/:id/students/:student_id/grades", c.SetGrade)
	groups.PUT("/:id/attendance", c.SaveAttendance)
}
