package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

type ExerciseService interface {
	CreateExercise(ctx context.Context, teacherID string, req dto.ExerciseRequest) (*dto.ExerciseResponse, error)
	UpdateExercise(ctx context.Context, id uint, teacherID string, req dto.ExerciseRequest) (*dto.ExerciseResponse, error)
	DeleteExercise(ctx context.Context, id uint, teacherID string) error
	ListExercises(ctx context.Context) ([]dto.ExerciseResponse, error)
	GetExercise(ctx context.Context, id uint) (*dto.ExerciseResponse, error)
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) CreateExercise(ctx context.Context, teacherID string, req dto.ExerciseRequest) (*dto.ExerciseResponse, error) {
	exercise, err := buildExercise(req)
	if err != nil {
		return nil, err
	}
	exercise.TeacherID = teacherID
	if err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, storeError(err, "create exercise", teacherID)
	}
	log.Info().Uint("exerciseID", exercise.ID).Str("teacherID", teacherID).Msg("Exercise created")
	return toExerciseResponse(*exercise)
}

func (s *exerciseService) UpdateExercise(ctx context.Context, id uint, teacherID string, req dto.ExerciseRequest) (*dto.ExerciseResponse, error) {
	exercise, err := buildExercise(req)
	if err != nil {
		return nil, err
	}
	exercise.ID = id
	exercise.TeacherID = teacherID
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, storeError(err, "update exercise", fmt.Sprint(id))
	}
	return s.GetExercise(ctx, id)
}

func (s *exerciseService) DeleteExercise(ctx context.Context, id uint, teacherID string) error {
	if err := s.exerciseRepo.Delete(ctx, id, teacherID); err != nil {
		return storeError(err, "delete exercise", fmt.Sprint(id))
	}
	return nil
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]dto.ExerciseResponse, error) {
	exercises, err := s.exerciseRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err, "list exercises", "")
	}
	resp := make([]dto.ExerciseResponse, 0, len(exercises))
	for _, e := range exercises {
		item, err := toExerciseResponse(e)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *exerciseService) GetExercise(ctx context.Context, id uint) (*dto.ExerciseResponse, error) {
	exercise, err := s.exerciseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "get exercise", fmt.Sprint(id))
	}
	return toExerciseResponse(*exercise)
}

func buildExercise(req dto.ExerciseRequest) (*model.Exercise, error) {
	verr := &ValidationError{}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		verr.add("title", "must not be blank")
	}
	difficulty := strings.TrimSpace(req.Difficulty)
	if difficulty != "" && !validDifficulty(difficulty) {
		verr.add("difficulty", "must be one of "+strings.Join(model.ExerciseDifficulties, ", "))
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	tags := datatypes.JSONSlice[string]{}
	for _, t := range req.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return &model.Exercise{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		HTMLContent: req.HTMLContent,
		Difficulty:  difficulty,
		Tags:        tags,
	}, nil
}

func validDifficulty(d string) bool {
	for _, v := range model.ExerciseDifficulties {
		if v == d {
			return true
		}
	}
	return false
}

func toExerciseResponse(e model.Exercise) (*dto.ExerciseResponse, error) {
	var resp dto.ExerciseResponse
	if err := copier.Copy(&resp, &e); err != nil {
		return nil, err
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return &resp, nil
}
