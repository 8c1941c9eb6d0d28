package cms

import (
	"context"

	"github.com/google/uuid"

	"github.com/pyperpy/pyper-backend/pkg/db/models"
)

// Repository defines persistence operations for CMS pages and blog posts.
type Repository interface {
	CreatePage(ctx context.Context, page *models.CMSPage) (*models.CMSPage, error)
	UpdatePage(ctx context.Context, page *models.CMSPage) (*models.CMSPage, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	FindPageByID(ctx context.Context, id uuid.UUID) (*models.CMSPage, error)
	FindPageBySlug(ctx context.Context, slug string) (*models.CMSPage, error)
	ListPages(ctx context.Context) ([]models.CMSPage, error)

	CreateBlog(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	UpdateBlog(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
	FindBlogByID(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	FindBlogBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListBlogs(ctx context.Context) ([]models.BlogPost, error)
	ListPublishedBlogs(ctx context.Context, query BlogListInput) (*BlogListResult, error)
}
