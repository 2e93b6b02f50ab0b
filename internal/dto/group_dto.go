package dto

import "time"

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

type GroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeacherID string    `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddStudentRequest struct {
	Name string `json:"name" binding:"required,notblank"`
}

type GradesDTO struct {
	M1 [3]*float64 `json:"m1"`
	M2 [3]*float64 `json:"m2"`
	M3 [3]*float64 `json:"m3"`
}

type GroupStudentResponse struct {
	ID         string            `json:"id"`
	GroupID    string            `json:"group_id"`
	Name       string            `json:"name"`
	Grades     GradesDTO         `json:"grades"`
	Attendance map[string]string `json:"attendance"`
}

// SetGradeRequest writes one grade slot. A null value clears it.
type SetGradeRequest struct {
	Momento string   `json:"momento" binding:"required,oneof=m1 m2 m3"`
	Index   *int     `json:"index" binding:"required,min=0,max=2"`
	Value   *float64 `json:"value" binding:"omitempty,min=0,max=10"`
}

type SaveAttendanceRequest struct {
	Date    string            `json:"date" binding:"required,datetime=2006-01-02"`
	Records map[string]string `json:"records" binding:"required,dive,keys,required,endkeys,oneof=present absent excused"`
}
