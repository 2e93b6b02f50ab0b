package dto

import "time"

type AddVideoRequest struct {
	Name       string `json:"name"`
	YoutubeURL string `json:"youtube_url" binding:"required,notblank"`
}

type VideoResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	YoutubeURL   string    `json:"youtube_url"`
	VideoID      string    `json:"video_id"`
	ThumbnailURL string    `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type ExerciseRequest struct {
	Title       string   `json:"title" binding:"required,notblank"`
	Description string   `json:"description"`
	HTMLContent string   `json:"html_content"`
	Difficulty  string   `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Tags        []string `json:"tags"`
}

type ExerciseResponse struct {
	ID          uint      `json:"id"`
	TeacherID   string    `json:"teacher_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	HTMLContent string    `json:"html_content,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type RunCodeRequest struct {
	SourceCode string `json:"source_code" binding:"required,notblank"`
	Stdin      string `json:"stdin"`
	Language   string `json:"language"`
}

// RunCodeResponse shares one channel for program output and provider errors.
type RunCodeResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}
