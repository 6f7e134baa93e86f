package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

type fakePersonalRepo struct {
	personal    map[int64]*models.Personal
	nextID      int64
	softDeleted map[int64]time.Time
}

func newFakePersonalRepo() *fakePersonalRepo {
	return &fakePersonalRepo{
		personal:    make(map[int64]*models.Personal),
		softDeleted: make(map[int64]time.Time),
	}
}

func (f *fakePersonalRepo) Create(_ context.Context, personal *models.Personal) error {
	f.nextID++
	personal.ID = f.nextID
	f.personal[personal.ID] = personal
	return nil
}

func (f *fakePersonalRepo) GetByID(_ context.Context, id int64) (*models.Personal, error) {
	return f.personal[id], nil
}

func (f *fakePersonalRepo) GetAll(_ context.Context, soloActivos bool, offset, limit int) ([]*models.Personal, error) {
	out := make([]*models.Personal, 0, len(f.personal))
	for _, p := range f.personal {
		if soloActivos && p.FechaBaja != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePersonalRepo) Update(_ context.Context, personal *models.Personal) error {
	f.personal[personal.ID] = personal
	return nil
}

func (f *fakePersonalRepo) SoftDeleteWithUnlinks(_ context.Context, id int64, fechaBaja time.Time) error {
	p := f.personal[id]
	p.FechaBaja = &fechaBaja
	f.softDeleted[id] = fechaBaja
	return nil
}

func (f *fakePersonalRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.personal[id]
	return ok, nil
}

func (f *fakePersonalRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, p := range f.personal {
		if p.Email != nil && *p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeExistenceChecker struct {
	ids map[int64]bool
}

func newFakeExistenceChecker(ids ...int64) *fakeExistenceChecker {
	f := &fakeExistenceChecker{ids: make(map[int64]bool)}
	for _, id := range ids {
		f.ids[id] = true
	}
	return f
}

func (f *fakeExistenceChecker) Exists(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

type fakeEdgeRepo struct {
	edges        []*models.PersonalProyecto
	replaceCalls int
}

func (f *fakeEdgeRepo) ListByPersonal(_ context.Context, personalID int64) ([]*models.PersonalProyecto, error) {
	out := []*models.PersonalProyecto{}
	for _, e := range f.edges {
		if e.PersonalID == personalID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEdgeRepo) ListByProyecto(_ context.Context, proyectoID int64) ([]*models.PersonalProyecto, error) {
	out := []*models.PersonalProyecto{}
	for _, e := range f.edges {
		if e.ProyectoID == proyectoID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEdgeRepo) UpsertBatch(_ context.Context, edges []*models.PersonalProyecto) error {
	for _, edge := range edges {
		updated := false
		for _, existing := range f.edges {
			if existing.PersonalID == edge.PersonalID && existing.ProyectoID == edge.ProyectoID {
				existing.Rol = edge.Rol
				updated = true
				break
			}
		}
		if !updated {
			f.edges = append(f.edges, edge)
		}
	}
	return nil
}

func (f *fakeEdgeRepo) ReplaceForProyecto(_ context.Context, proyectoID int64, edges []*models.PersonalProyecto, now time.Time) error {
	f.replaceCalls++
	kept := f.edges[:0]
	for _, e := range f.edges {
		if e.ProyectoID != proyectoID {
			kept = append(kept, e)
		}
	}
	f.edges = kept
	for _, e := range edges {
		e.CreatedAt = now
		f.edges = append(f.edges, e)
	}
	return nil
}

func newPersonalFixture(t *testing.T) (*PersonalService, *fakePersonalRepo, *fakeExistenceChecker, *fakeEdgeRepo) {
	t.Helper()
	personal := newFakePersonalRepo()
	proyectos := newFakeExistenceChecker()
	edges := &fakeEdgeRepo{}
	return NewPersonalService(personal, proyectos, edges), personal, proyectos, edges
}

func TestCreatePersonalDefaultsFechaAlta(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)

	personal, err := svc.CreatePersonal(context.Background(), &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)
	require.NotNil(t, personal.FechaAlta)
	assert.WithinDuration(t, time.Now().UTC(), *personal.FechaAlta, time.Minute)
}

func TestCreatePersonalEmailConflict(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{
		Nombre: "Ana",
		Email:  strPtr("ana@idi.edu.uy"),
	})
	require.NoError(t, err)

	_, err = svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{
		Nombre: "Otra Ana",
		Email:  strPtr("ana@idi.edu.uy"),
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUpdatePersonalKeepingOwnEmail(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)
	ctx := context.Background()

	personal, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{
		Nombre: "Ana",
		Email:  strPtr("ana@idi.edu.uy"),
	})
	require.NoError(t, err)

	// Re-sending the current email is not a conflict.
	updated, err := svc.UpdatePersonal(ctx, personal.ID, &dto.UpdatePersonalRequest{
		Nombre: strPtr("Ana Maria"),
		Email:  strPtr("ana@idi.edu.uy"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Nombre)
}

func TestUpdatePersonalEmailConflict(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)
	ctx := context.Background()

	_, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{
		Nombre: "Ana",
		Email:  strPtr("ana@idi.edu.uy"),
	})
	require.NoError(t, err)

	otro, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{
		Nombre: "Bruno",
		Email:  strPtr("bruno@idi.edu.uy"),
	})
	require.NoError(t, err)

	_, err = svc.UpdatePersonal(ctx, otro.ID, &dto.UpdatePersonalRequest{
		Email: strPtr("ana@idi.edu.uy"),
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestDeletePersonalSoftDeletes(t *testing.T) {
	svc, personal, _, _ := newPersonalFixture(t)
	ctx := context.Background()

	p, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePersonal(ctx, p.ID))
	_, ok := personal.softDeleted[p.ID]
	assert.True(t, ok)

	// The row survives and still resolves by ID.
	kept, err := svc.GetPersonal(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept.FechaBaja)
}

func TestListPersonalSoloActivos(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)
	ctx := context.Background()

	activo, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)
	baja, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Bruno"})
	require.NoError(t, err)
	require.NoError(t, svc.DeletePersonal(ctx, baja.ID))

	activos, err := svc.ListPersonal(ctx, true, 0, 100)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, activo.ID, activos[0].ID)

	todos, err := svc.ListPersonal(ctx, false, 0, 100)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestVincularProyectosRequiresProyectoID(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)
	ctx := context.Background()

	p, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)

	_, err = svc.VincularProyectos(ctx, p.ID, &dto.VincularProyectosRequest{
		Items: []dto.ProyectoVinculo{{Rol: strPtr("Responsable")}},
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingProyectoID)
}

func TestVincularProyectosUnknownProyecto(t *testing.T) {
	svc, _, _, edges := newPersonalFixture(t)
	ctx := context.Background()

	p, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)

	_, err = svc.VincularProyectos(ctx, p.ID, &dto.VincularProyectosRequest{
		Items: []dto.ProyectoVinculo{{ProyectoID: int64Ptr(99)}},
	})
	assert.ErrorIs(t, err, apperrors.ErrProyectoNotFound)
	assert.Empty(t, edges.edges)
}

func TestVincularProyectosDefaultsRol(t *testing.T) {
	svc, _, proyectos, _ := newPersonalFixture(t)
	ctx := context.Background()

	p, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)
	proyectos.ids[10] = true

	result, err := svc.VincularProyectos(ctx, p.ID, &dto.VincularProyectosRequest{
		Items: []dto.ProyectoVinculo{{ProyectoID: int64Ptr(10)}},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Rol)
	assert.Equal(t, DefaultRol, *result[0].Rol)
}

func TestVincularProyectosUpsertsRol(t *testing.T) {
	svc, _, proyectos, _ := newPersonalFixture(t)
	ctx := context.Background()

	p, err := svc.CreatePersonal(ctx, &dto.CreatePersonalRequest{Nombre: "Ana"})
	require.NoError(t, err)
	proyectos.ids[10] = true

	_, err = svc.VincularProyectos(ctx, p.ID, &dto.VincularProyectosRequest{
		Items: []dto.ProyectoVinculo{{ProyectoID: int64Ptr(10)}},
	})
	require.NoError(t, err)

	result, err := svc.VincularProyectos(ctx, p.ID, &dto.VincularProyectosRequest{
		Items: []dto.ProyectoVinculo{{ProyectoID: int64Ptr(10), Rol: strPtr("Responsable")}},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Responsable", *result[0].Rol)
}

func TestVincularProyectosUnknownPersonal(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)

	_, err := svc.VincularProyectos(context.Background(), 42, &dto.VincularProyectosRequest{})
	assert.ErrorIs(t, err, apperrors.ErrPersonalNotFound)
}

func TestListProyectosDePersonalUnknownIsEmpty(t *testing.T) {
	svc, _, _, _ := newPersonalFixture(t)

	result, err := svc.ListProyectosDePersonal(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, result)
}
