package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/model"
	"github.com/lshigami/classroom-portal/internal/repository"
	"github.com/lshigami/classroom-portal/internal/youtube"
	"github.com/rs/zerolog/log"
)

type VideoService interface {
	ListVideos(ctx context.Context) ([]dto.VideoResponse, error)
	AddVideo(ctx context.Context, req dto.AddVideoRequest) (*dto.VideoResponse, error)
	DeleteVideo(ctx context.Context, id uint) error
}

type videoService struct {
	videoRepo repository.VideoRepository
}

func NewVideoService(videoRepo repository.VideoRepository) VideoService {
	return &videoService{videoRepo: videoRepo}
}

func (s *videoService) ListVideos(ctx context.Context) ([]dto.VideoResponse, error) {
	videos, err := s.videoRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err, "list videos", "")
	}
	resp := make([]dto.VideoResponse, 0, len(videos))
	for _, v := range videos {
		item, err := toVideoResponse(v)
		if err != nil {
			return nil, err
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// AddVideo stores a YouTube link. The name defaults to "Video <id>" and a
// video id can only be stored once.
func (s *videoService) AddVideo(ctx context.Context, req dto.AddVideoRequest) (*dto.VideoResponse, error) {
	videoID, ok := youtube.ExtractVideoID(req.YoutubeURL)
	if !ok {
		log.Warn().Str("url", req.YoutubeURL).Msg("AddVideo: not a YouTube video URL")
		return nil, newValidationError("youtube_url", "is not a valid YouTube video URL")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Video " + videoID
	}
	video := model.Video{
		Name:       name,
		YoutubeURL: strings.TrimSpace(req.YoutubeURL),
		VideoID:    videoID,
	}
	if err := s.videoRepo.Create(ctx, &video); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("video %s already exists in the hub: %w", videoID, ErrDuplicate)
		}
		return nil, storeError(err, "add video", videoID)
	}
	log.Info().Uint("id", video.ID).Str("videoID", videoID).Msg("Video added to hub")

	resp, err := toVideoResponse(video)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, id uint) error {
	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return storeError(err, "delete video", fmt.Sprint(id))
	}
	return nil
}

func toVideoResponse(v model.Video) (dto.VideoResponse, error) {
	var resp dto.VideoResponse
	if err := copier.Copy(&resp, &v); err != nil {
		return resp, err
	}
	resp.ThumbnailURL = youtube.ThumbnailURL(v.VideoID, youtube.QualityDefault)
	return resp, nil
}
