package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

type fakeBlogRepo struct {
	posts  map[int64]*models.BlogPost
	nextID int64
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{posts: make(map[int64]*models.BlogPost)}
}

func (f *fakeBlogRepo) Create(_ context.Context, post *models.BlogPost) error {
	f.nextID++
	post.ID = f.nextID
	f.posts[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) GetByID(_ context.Context, id int64) (*models.BlogPost, error) {
	return f.posts[id], nil
}

func (f *fakeBlogRepo) GetAll(_ context.Context, tag *string, soloPublicados bool, offset, limit int) ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		if soloPublicados && !p.Publicado {
			continue
		}
		if tag != nil && (p.Tags == nil || !strings.Contains(*p.Tags, *tag)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeBlogRepo) Buscar(_ context.Context, termino string, offset, limit int) ([]*models.BlogPost, error) {
	out := []*models.BlogPost{}
	for _, p := range f.posts {
		if !p.Publicado {
			continue
		}
		if strings.Contains(p.Titulo, termino) || strings.Contains(p.Contenido, termino) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeBlogRepo) Update(_ context.Context, post *models.BlogPost) error {
	f.posts[post.ID] = post
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id int64) error {
	delete(f.posts, id)
	return nil
}

type fakeEmailLister struct {
	emails []string
}

func (f *fakeEmailLister) ListEmails(_ context.Context) ([]string, error) {
	return f.emails, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	sent []sentMail
}

func (f *fakeNotifier) Enqueue(to, subject, body string) {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
}

func newBlogFixture(t *testing.T, emails ...string) (*BlogService, *fakeBlogRepo, *fakeNotifier) {
	t.Helper()
	blog := newFakeBlogRepo()
	notifier := &fakeNotifier{}
	return NewBlogService(blog, &fakeEmailLister{emails: emails}, notifier), blog, notifier
}

func TestCreatePostDefaultsToPublished(t *testing.T) {
	svc, _, _ := newBlogFixture(t)

	post, err := svc.CreatePost(context.Background(), &dto.CreateBlogPostRequest{
		Titulo:    "Nueva convocatoria",
		Contenido: "Detalles de la convocatoria.",
	})
	require.NoError(t, err)
	assert.True(t, post.Publicado)
	assert.False(t, post.FechaPublicacion.IsZero())
}

func TestCreatePostNotifiesEverySubscriber(t *testing.T) {
	svc, _, notifier := newBlogFixture(t, "ana@example.com", "bruno@example.com")

	post, err := svc.CreatePost(context.Background(), &dto.CreateBlogPostRequest{
		Titulo:    "Nueva convocatoria",
		Contenido: "Detalles de la convocatoria.",
		Resumen:   strPtr("Abre la convocatoria 2026."),
	})
	require.NoError(t, err)
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "ana@example.com", notifier.sent[0].to)
	assert.Equal(t, "Nueva entrada en el blog: "+post.Titulo, notifier.sent[0].subject)
	assert.Contains(t, notifier.sent[0].body, "Abre la convocatoria 2026.")
}

func TestCreateDraftDoesNotNotify(t *testing.T) {
	svc, _, notifier := newBlogFixture(t, "ana@example.com")

	_, err := svc.CreatePost(context.Background(), &dto.CreateBlogPostRequest{
		Titulo:    "Borrador",
		Contenido: "Todavia en edicion.",
		Publicado: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

func TestUpdatePostNeverNotifies(t *testing.T) {
	svc, _, notifier := newBlogFixture(t, "ana@example.com")
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		Titulo:    "Borrador",
		Contenido: "Todavia en edicion.",
		Publicado: boolPtr(false),
	})
	require.NoError(t, err)
	require.Empty(t, notifier.sent)

	// Publishing through an update stays silent.
	updated, err := svc.UpdatePost(ctx, post.ID, &dto.UpdateBlogPostRequest{
		Publicado: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Publicado)
	assert.Empty(t, notifier.sent)
}

func TestListPostsHidesDraftsWhenSoloPublicados(t *testing.T) {
	svc, _, _ := newBlogFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		Titulo:    "Publicada",
		Contenido: "Contenido.",
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		Titulo:    "Borrador",
		Contenido: "Contenido.",
		Publicado: boolPtr(false),
	})
	require.NoError(t, err)

	publicados, err := svc.ListPosts(ctx, nil, true, 0, 100)
	require.NoError(t, err)
	require.Len(t, publicados, 1)
	assert.Equal(t, "Publicada", publicados[0].Titulo)
}

func TestBuscarPostsSkipsDrafts(t *testing.T) {
	svc, _, _ := newBlogFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		Titulo:    "Convocatoria abierta",
		Contenido: "Contenido.",
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, &dto.CreateBlogPostRequest{
		Titulo:    "Convocatoria en borrador",
		Contenido: "Contenido.",
		Publicado: boolPtr(false),
	})
	require.NoError(t, err)

	found, err := svc.BuscarPosts(ctx, "Convocatoria", 0, 100)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestGetPostUnknown(t *testing.T) {
	svc, _, _ := newBlogFixture(t)

	_, err := svc.GetPost(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrBlogPostNotFound)
}
