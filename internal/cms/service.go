package cms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pyperpy/pyper-backend/internal/seo"
	"github.com/pyperpy/pyper-backend/pkg/db/models"
	pkgerrors "github.com/pyperpy/pyper-backend/pkg/errors"
	"github.com/pyperpy/pyper-backend/pkg/pagination"
)

// Service exposes CMS page and blog management plus the public read paths.
type Service interface {
	SavePage(ctx context.Context, id *uuid.UUID, input PageInput) (*models.CMSPage, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
	GetPage(ctx context.Context, id uuid.UUID) (*models.CMSPage, error)
	ListPages(ctx context.Context) ([]models.CMSPage, error)
	RenderPage(ctx context.Context, slug string) (*PageView, error)

	SaveBlog(ctx context.Context, id *uuid.UUID, input BlogInput) (*models.BlogPost, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
	GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	ListBlogs(ctx context.Context) ([]models.BlogPost, error)
	ListPublished(ctx context.Context, input BlogListInput) (*BlogListResult, error)
	RenderBlog(ctx context.Context, slug string) (*BlogView, error)
	PreviewBlogSEO(input BlogInput) seo.Result
}

// PageInput is the editor payload for an institutional page.
type PageInput struct {
	Title           string
	Slug            string
	Blocks          []Block
	MetaTitle       *string
	MetaDescription *string
	Active          bool
}

// BlogInput is the editor payload for an article.
type BlogInput struct {
	Title           string
	Slug            string
	Excerpt         string
	Blocks          []Block
	Category        string
	CoverImage      *string
	MetaTitle       *string
	MetaDescription *string
	FocusKeyword    *string
	Active          bool
}

// BlogListInput filters and paginates the public article list.
type BlogListInput struct {
	Category   string
	Pagination pagination.Params
}

// BlogListResult is one page of published posts.
type BlogListResult struct {
	Posts      []models.BlogPost `json:"posts"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// PageView is a page with its content decoded for rendering.
type PageView struct {
	Page   *models.CMSPage `json:"page"`
	Blocks []Block         `json:"blocks"`
}

// BlogView is a post with its content decoded for rendering.
type BlogView struct {
	Post   *models.BlogPost `json:"post"`
	Blocks []Block          `json:"blocks"`
}

type service struct {
	repo Repository
}

// NewService constructs a CMS service instance.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cms repository required")
	}
	return &service{repo: repo}, nil
}

// SavePage creates the page when id is nil, otherwise updates it.
func (s *service) SavePage(ctx context.Context, id *uuid.UUID, input PageInput) (*models.CMSPage, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	content, err := EncodeBlocks(input.Blocks)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "encode content blocks")
	}

	page := &models.CMSPage{}
	if id != nil {
		page, err = s.GetPage(ctx, *id)
		if err != nil {
			return nil, err
		}
	}

	page.Title = input.Title
	page.Slug = strings.TrimSpace(input.Slug)
	if page.Slug == "" {
		page.Slug = seo.Slugify(input.Title)
	}
	page.Content = content
	page.MetaTitle = input.MetaTitle
	page.MetaDescription = input.MetaDescription
	page.Active = input.Active

	if id == nil {
		created, err := s.repo.CreatePage(ctx, page)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert page")
		}
		return created, nil
	}
	updated, err := s.repo.UpdatePage(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update page")
	}
	return updated, nil
}

// DeletePage removes a page.
func (s *service) DeletePage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeletePage(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete page")
	}
	return nil
}

// GetPage loads a page for the admin editor.
func (s *service) GetPage(ctx context.Context, id uuid.UUID) (*models.CMSPage, error) {
	page, err := s.repo.FindPageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "page not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load page")
	}
	return page, nil
}

// ListPages returns every page for the admin grid.
func (s *service) ListPages(ctx context.Context) ([]models.CMSPage, error) {
	rows, err := s.repo.ListPages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pages")
	}
	return rows, nil
}

// RenderPage serves the public slug route with the content decoded, applying
// the legacy plain-text fallback.
func (s *service) RenderPage(ctx context.Context, slug string) (*PageView, error) {
	page, err := s.repo.FindPageBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "page not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load page")
	}
	return &PageView{
		Page:   page,
		Blocks: DecodeBlocks(page.Content, page.Title),
	}, nil
}

// SaveBlog creates the post when id is nil, otherwise updates it. The SEO
// score is recomputed from the final state on every save.
func (s *service) SaveBlog(ctx context.Context, id *uuid.UUID, input BlogInput) (*models.BlogPost, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}

	content, err := EncodeBlocks(input.Blocks)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "encode content blocks")
	}

	post := &models.BlogPost{}
	if id != nil {
		post, err = s.GetBlog(ctx, *id)
		if err != nil {
			return nil, err
		}
	}

	post.Title = input.Title
	post.Slug = strings.TrimSpace(input.Slug)
	if post.Slug == "" {
		post.Slug = seo.Slugify(input.Title)
	}
	post.Excerpt = input.Excerpt
	post.Content = content
	post.Category = input.Category
	if strings.TrimSpace(post.Category) == "" {
		post.Category = "General"
	}
	post.CoverImage = input.CoverImage
	post.MetaTitle = input.MetaTitle
	post.MetaDescription = input.MetaDescription
	post.FocusKeyword = input.FocusKeyword
	post.Active = input.Active
	post.SEOScore = s.scoreBlog(input, post.Slug).Score

	if id == nil {
		created, err := s.repo.CreateBlog(ctx, post)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert blog post")
		}
		return created, nil
	}
	updated, err := s.repo.UpdateBlog(ctx, post)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update blog post")
	}
	return updated, nil
}

// DeleteBlog removes a post.
func (s *service) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteBlog(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete blog post")
	}
	return nil
}

// GetBlog loads a post for the admin editor.
func (s *service) GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	post, err := s.repo.FindBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "blog post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load blog post")
	}
	return post, nil
}

// ListBlogs returns every post for the admin grid.
func (s *service) ListBlogs(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := s.repo.ListBlogs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list blog posts")
	}
	return rows, nil
}

// ListPublished serves the public article index.
func (s *service) ListPublished(ctx context.Context, input BlogListInput) (*BlogListResult, error) {
	result, err := s.repo.ListPublishedBlogs(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list published posts")
	}
	return result, nil
}

// RenderBlog serves the public article route with the content decoded.
func (s *service) RenderBlog(ctx context.Context, slug string) (*BlogView, error) {
	post, err := s.repo.FindBlogBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "blog post not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load blog post")
	}
	return &BlogView{
		Post:   post,
		Blocks: DecodeBlocks(post.Content, post.Title),
	}, nil
}

// PreviewBlogSEO scores a draft without persisting anything.
func (s *service) PreviewBlogSEO(input BlogInput) seo.Result {
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = seo.Slugify(input.Title)
	}
	return s.scoreBlog(input, slug)
}

func (s *service) scoreBlog(input BlogInput, slug string) seo.Result {
	body := input.Excerpt
	if text := PlainText(input.Blocks); text != "" {
		body = body + "\n" + text
	}
	return seo.ScoreBlog(seo.BlogInput{
		FocusKeyword:    derefString(input.FocusKeyword),
		Title:           input.Title,
		Slug:            slug,
		Excerpt:         input.Excerpt,
		MetaDescription: derefString(input.MetaDescription),
		Body:            body,
		BlockCount:      len(input.Blocks),
	})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
