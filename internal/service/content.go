package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"SiteModels/internal/cache"
	"SiteModels/internal/model"
	"SiteModels/internal/repo"
)

// DisclaimerService — CRUD юридических дисклеймеров.
type DisclaimerService struct {
	disclaimers repo.DisclaimerRepository
	cache       *cache.ListCache
	logger      *zap.SugaredLogger
}

// NewDisclaimerService создаёт сервис дисклеймеров.
func NewDisclaimerService(r repo.DisclaimerRepository, c *cache.ListCache, logger *zap.SugaredLogger) *DisclaimerService {
	return &DisclaimerService{disclaimers: r, cache: c, logger: logger}
}

func (s *DisclaimerService) Create(ctx context.Context, description string) (*model.Disclaimer, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: disDescription is required", ErrValidation)
	}
	d := &model.Disclaimer{ID: uuid.New().String(), DisDescription: description}
	if err := s.disclaimers.Create(ctx, d); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagDisclaimer)
	return d, nil
}

func (s *DisclaimerService) List(ctx context.Context, f repo.ListFilter) ([]model.Disclaimer, int64, error) {
	return listThrough(ctx, s.cache, cache.TagDisclaimer, f, s.disclaimers.List)
}

func (s *DisclaimerService) Get(ctx context.Context, id string) (*model.Disclaimer, error) {
	return s.disclaimers.GetByID(ctx, id)
}

func (s *DisclaimerService) Update(ctx context.Context, id, description string) (*model.Disclaimer, error) {
	updates := map[string]any{}
	if strings.TrimSpace(description) != "" {
		updates["dis_description"] = description
	}
	d, err := s.disclaimers.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagDisclaimer)
	return d, nil
}

func (s *DisclaimerService) Delete(ctx context.Context, id string) error {
	if err := s.disclaimers.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TagDisclaimer)
	return nil
}

// TrainingVideoService — CRUD обучающих видео.
type TrainingVideoService struct {
	videos repo.TrainingVideoRepository
	cache  *cache.ListCache
	logger *zap.SugaredLogger
}

// NewTrainingVideoService создаёт сервис обучающих видео.
func NewTrainingVideoService(r repo.TrainingVideoRepository, c *cache.ListCache, logger *zap.SugaredLogger) *TrainingVideoService {
	return &TrainingVideoService{videos: r, cache: c, logger: logger}
}

// TrainingVideoInput — форма создания/обновления видео.
type TrainingVideoInput struct {
	Title    string `json:"title"`
	VideoURL string `json:"videoUrl"`
}

func (s *TrainingVideoService) Create(ctx context.Context, in TrainingVideoInput) (*model.TrainingVideo, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.VideoURL) == "" {
		return nil, fmt.Errorf("%w: title and videoUrl are required", ErrValidation)
	}
	v := &model.TrainingVideo{ID: uuid.New().String(), Title: in.Title, VideoURL: in.VideoURL}
	if err := s.videos.Create(ctx, v); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagTrainingVideo)
	return v, nil
}

func (s *TrainingVideoService) List(ctx context.Context, f repo.ListFilter) ([]model.TrainingVideo, int64, error) {
	return listThrough(ctx, s.cache, cache.TagTrainingVideo, f, s.videos.List)
}

func (s *TrainingVideoService) Get(ctx context.Context, id string) (*model.TrainingVideo, error) {
	return s.videos.GetByID(ctx, id)
}

func (s *TrainingVideoService) Update(ctx context.Context, id string, in TrainingVideoInput) (*model.TrainingVideo, error) {
	updates := map[string]any{}
	if strings.TrimSpace(in.Title) != "" {
		updates["title"] = in.Title
	}
	if strings.TrimSpace(in.VideoURL) != "" {
		updates["video_url"] = in.VideoURL
	}
	v, err := s.videos.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TagTrainingVideo)
	return v, nil
}

func (s *TrainingVideoService) Delete(ctx context.Context, id string) error {
	if err := s.videos.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TagTrainingVideo)
	return nil
}
