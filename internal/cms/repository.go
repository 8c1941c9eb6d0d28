package cms

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
	"github.com/pyperpy/pyper-backend/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePage(ctx context.Context, page *models.CMSPage) (*models.CMSPage, error) {
	if err := r.db.WithContext(ctx).Create(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

func (r *repository) UpdatePage(ctx context.Context, page *models.CMSPage) (*models.CMSPage, error) {
	if err := r.db.WithContext(ctx).Save(page).Error; err != nil {
		return nil, err
	}
	return page, nil
}

func (r *repository) DeletePage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CMSPage{}).Error
}

func (r *repository) FindPageByID(ctx context.Context, id uuid.UUID) (*models.CMSPage, error) {
	var page models.CMSPage
	if err := r.db.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// FindPageBySlug serves the public route; hidden pages read as missing.
func (r *repository) FindPageBySlug(ctx context.Context, slug string) (*models.CMSPage, error) {
	var page models.CMSPage
	if err := r.db.WithContext(ctx).First(&page, "slug = ? AND active = ?", slug, true).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *repository) ListPages(ctx context.Context) ([]models.CMSPage, error) {
	var rows []models.CMSPage
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

func (r *repository) CreateBlog(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *repository) UpdateBlog(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (r *repository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BlogPost{}).Error
}

func (r *repository) FindBlogByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) FindBlogBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).First(&post, "slug = ? AND active = ?", slug, true).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) ListBlogs(ctx context.Context) ([]models.BlogPost, error) {
	var rows []models.BlogPost
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error
	return rows, err
}

// ListPublishedBlogs pages through active posts, newest publication first.
func (r *repository) ListPublishedBlogs(ctx context.Context, query BlogListInput) (*BlogListResult, error) {
	pageSize := pagination.NormalizeLimit(query.Pagination.Limit)
	limitWithBuffer := pagination.LimitWithBuffer(query.Pagination.Limit)
	if limitWithBuffer <= pageSize {
		limitWithBuffer = pageSize + 1
	}

	cursor, err := pagination.ParseCursor(query.Pagination.Cursor)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("active = ?", true)
	if query.Category != "" {
		qb = qb.Where("category = ?", query.Category)
	}
	if cursor != nil {
		qb = qb.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.BlogPost
	err = qb.Order("created_at DESC").Order("id DESC").Limit(limitWithBuffer).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	nextCursor := ""
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		last := rows[len(rows)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	return &BlogListResult{Posts: rows, NextCursor: nextCursor}, nil
}
