package podcasts

import (
	"context"
	"errors"
	"fmt"

	"github.com/killallgit/podcast-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the gorm backed store for podcasts and their episodes
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePodcast creates a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// GetPodcastByID retrieves a podcast with its episodes
func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	err := r.db.WithContext(ctx).
		Preload("Episodes", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&podcast, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// ListPodcasts returns every podcast ordered by id
func (r *Repository) ListPodcasts(ctx context.Context) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&podcasts).Error; err != nil {
		return nil, fmt.Errorf("listing podcasts: %w", err)
	}
	return podcasts, nil
}

// UpdatePodcast saves the podcast columns. Episodes are left untouched.
func (r *Repository) UpdatePodcast(ctx context.Context, podcast *models.Podcast) error {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Save(podcast)
	if result.Error != nil {
		return fmt.Errorf("updating podcast: %w", result.Error)
	}
	return nil
}

// DeletePodcast removes a podcast and its episodes
func (r *Repository) DeletePodcast(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("podcast_id = ?", id).Delete(&models.Episode{}).Error; err != nil {
			return fmt.Errorf("deleting episodes of podcast %d: %w", id, err)
		}
		result := tx.Delete(&models.Podcast{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting podcast: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CreateEpisode creates a new episode
func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// UpdateEpisode saves an existing episode
func (r *Repository) UpdateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Save(episode).Error; err != nil {
		return fmt.Errorf("updating episode: %w", err)
	}
	return nil
}

// DeleteEpisode removes an episode by id
func (r *Repository) DeleteEpisode(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
