package services

import (
	"context"
	"fmt"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
	"github.com/grupoidi/deptoweb/internal/pkg/logger"
)

// BlogRepository is the persistence surface the blog needs
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetAll(ctx context.Context, tag *string, soloPublicados bool, offset, limit int) ([]*models.BlogPost, error)
	Buscar(ctx context.Context, termino string, offset, limit int) ([]*models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id int64) error
}

// SubscriberEmailLister retrieves the recipient set for notifications
type SubscriberEmailLister interface {
	ListEmails(ctx context.Context) ([]string, error)
}

// Notifier queues a notification for asynchronous delivery
type Notifier interface {
	Enqueue(to, subject, body string)
}

// BlogService manages blog posts and notifies subscribers when a post is
// published. Notification is queued after the post is persisted and never
// affects the outcome of the create.
type BlogService struct {
	blogRepo       BlogRepository
	subscriberRepo SubscriberEmailLister
	notifier       Notifier
}

// NewBlogService creates a new blog service
func NewBlogService(blogRepo BlogRepository, subscriberRepo SubscriberEmailLister, notifier Notifier) *BlogService {
	return &BlogService{
		blogRepo:       blogRepo,
		subscriberRepo: subscriberRepo,
		notifier:       notifier,
	}
}

// CreatePost creates a blog post. Posts are published by default; a
// published post triggers one notification per subscriber.
func (s *BlogService) CreatePost(ctx context.Context, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	now := time.Now().UTC()

	publicado := true
	if req.Publicado != nil {
		publicado = *req.Publicado
	}

	fechaPublicacion := now
	if req.FechaPublicacion != nil {
		fechaPublicacion = *req.FechaPublicacion
	}

	post := &models.BlogPost{
		Titulo:           req.Titulo,
		Contenido:        req.Contenido,
		Resumen:          req.Resumen,
		ImagenURL:        req.ImagenURL,
		Autor:            req.Autor,
		FechaPublicacion: fechaPublicacion,
		Tags:             req.Tags,
		Publicado:        publicado,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.blogRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if post.Publicado {
		s.notifySubscribers(ctx, post)
	}

	return post, nil
}

func (s *BlogService) notifySubscribers(ctx context.Context, post *models.BlogPost) {
	emails, err := s.subscriberRepo.ListEmails(ctx)
	if err != nil {
		logger.Error().Err(err).Int64("post_id", post.ID).Msg("Failed to load subscribers for notification")
		return
	}

	subject := "Nueva entrada en el blog: " + post.Titulo
	resumen := ""
	if post.Resumen != nil {
		resumen = *post.Resumen
	}
	body := fmt.Sprintf("<h1>%s</h1><p>%s</p>", post.Titulo, resumen)

	for _, email := range emails {
		s.notifier.Enqueue(email, subject, body)
	}

	logger.Info().Int64("post_id", post.ID).Int("recipients", len(emails)).Msg("Queued blog notifications")
}

// GetPost retrieves a blog post by ID
func (s *BlogService) GetPost(ctx context.Context, id int64) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.ErrBlogPostNotFound
	}
	return post, nil
}

// ListPosts retrieves blog posts newest first, optionally filtered by tag.
// Public listings pass soloPublicados to hide drafts.
func (s *BlogService) ListPosts(ctx context.Context, tag *string, soloPublicados bool, offset, limit int) ([]*models.BlogPost, error) {
	return s.blogRepo.GetAll(ctx, tag, soloPublicados, offset, limit)
}

// BuscarPosts searches published posts by title or content
func (s *BlogService) BuscarPosts(ctx context.Context, termino string, offset, limit int) ([]*models.BlogPost, error) {
	return s.blogRepo.Buscar(ctx, termino, offset, limit)
}

// UpdatePost applies a partial update to a blog post. Updates never trigger
// notifications, even when they flip a draft to published.
func (s *BlogService) UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.ErrBlogPostNotFound
	}

	if req.Titulo != nil {
		post.Titulo = *req.Titulo
	}
	if req.Contenido != nil {
		post.Contenido = *req.Contenido
	}
	if req.Resumen != nil {
		post.Resumen = req.Resumen
	}
	if req.ImagenURL != nil {
		post.ImagenURL = req.ImagenURL
	}
	if req.Autor != nil {
		post.Autor = req.Autor
	}
	if req.FechaPublicacion != nil {
		post.FechaPublicacion = *req.FechaPublicacion
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Publicado != nil {
		post.Publicado = *req.Publicado
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.blogRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes a blog post
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return apperrors.ErrBlogPostNotFound
	}

	return s.blogRepo.Delete(ctx, id)
}
