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

type fakeProyectoRepo struct {
	proyectos      map[int64]*models.Proyecto
	nextID         int64
	cascadeDeletes []int64
}

func newFakeProyectoRepo() *fakeProyectoRepo {
	return &fakeProyectoRepo{proyectos: make(map[int64]*models.Proyecto)}
}

func (f *fakeProyectoRepo) Create(_ context.Context, proyecto *models.Proyecto) error {
	f.nextID++
	proyecto.ID = f.nextID
	f.proyectos[proyecto.ID] = proyecto
	return nil
}

func (f *fakeProyectoRepo) GetByID(_ context.Context, id int64) (*models.Proyecto, error) {
	return f.proyectos[id], nil
}

func (f *fakeProyectoRepo) GetAll(_ context.Context, offset, limit int) ([]*models.Proyecto, error) {
	out := make([]*models.Proyecto, 0, len(f.proyectos))
	for _, p := range f.proyectos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProyectoRepo) Update(_ context.Context, proyecto *models.Proyecto) error {
	f.proyectos[proyecto.ID] = proyecto
	return nil
}

func (f *fakeProyectoRepo) DeleteWithAsignaciones(_ context.Context, id int64) error {
	delete(f.proyectos, id)
	f.cascadeDeletes = append(f.cascadeDeletes, id)
	return nil
}

func (f *fakeProyectoRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.proyectos[id]
	return ok, nil
}

func newProyectoFixture(t *testing.T) (*ProyectoService, *fakeProyectoRepo, *fakeExistenceChecker, *fakeEdgeRepo) {
	t.Helper()
	proyectos := newFakeProyectoRepo()
	personal := newFakeExistenceChecker()
	edges := &fakeEdgeRepo{}
	return NewProyectoService(proyectos, personal, edges), proyectos, personal, edges
}

func TestCreateProyectoRejectsInvertedDates(t *testing.T) {
	svc, _, _, _ := newProyectoFixture(t)

	inicio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateProyecto(context.Background(), &dto.CreateProyectoRequest{
		Nombre:      "Proyecto X",
		FechaInicio: &inicio,
		FechaFin:    &fin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)
}

func TestCreateProyectoAllowsOpenEndedDates(t *testing.T) {
	svc, _, _, _ := newProyectoFixture(t)

	inicio := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateProyecto(context.Background(), &dto.CreateProyectoRequest{
		Nombre:      "Proyecto X",
		FechaInicio: &inicio,
	})
	assert.NoError(t, err)
}

func TestUpdateProyectoValidatesEffectiveDates(t *testing.T) {
	svc, _, _, _ := newProyectoFixture(t)
	ctx := context.Background()

	inicio := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	proyecto, err := svc.CreateProyecto(ctx, &dto.CreateProyectoRequest{
		Nombre:      "Proyecto X",
		FechaInicio: &inicio,
		FechaFin:    &fin,
	})
	require.NoError(t, err)

	// The patched inicio is checked against the fin that stays.
	_, err = svc.UpdateProyecto(ctx, proyecto.ID, &dto.UpdateProyectoRequest{
		FechaInicio: timePtr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDateRange)

	stored, err := svc.GetProyecto(ctx, proyecto.ID)
	require.NoError(t, err)
	assert.True(t, stored.FechaInicio.Equal(inicio))
}

func TestDeleteProyectoCascadesAsignaciones(t *testing.T) {
	svc, proyectos, _, _ := newProyectoFixture(t)
	ctx := context.Background()

	proyecto, err := svc.CreateProyecto(ctx, &dto.CreateProyectoRequest{Nombre: "Proyecto X"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProyecto(ctx, proyecto.ID))
	assert.Equal(t, []int64{proyecto.ID}, proyectos.cascadeDeletes)
}

func TestAsignarPersonalRequiresPersonalID(t *testing.T) {
	svc, _, _, _ := newProyectoFixture(t)
	ctx := context.Background()

	proyecto, err := svc.CreateProyecto(ctx, &dto.CreateProyectoRequest{Nombre: "Proyecto X"})
	require.NoError(t, err)

	_, err = svc.AsignarPersonal(ctx, proyecto.ID, &dto.AsignarPersonalRequest{
		Items: []dto.PersonalAsignacion{{Rol: strPtr("Responsable")}},
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingPersonalID)
}

func TestAsignarPersonalDefaultsRol(t *testing.T) {
	svc, _, personal, _ := newProyectoFixture(t)
	ctx := context.Background()

	proyecto, err := svc.CreateProyecto(ctx, &dto.CreateProyectoRequest{Nombre: "Proyecto X"})
	require.NoError(t, err)
	personal.ids[5] = true

	result, err := svc.AsignarPersonal(ctx, proyecto.ID, &dto.AsignarPersonalRequest{
		Items: []dto.PersonalAsignacion{{PersonalID: int64Ptr(5)}},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, DefaultRol, *result[0].Rol)
}

func TestReemplazarPersonalValidatesBeforeReplacing(t *testing.T) {
	svc, _, personal, edges := newProyectoFixture(t)
	ctx := context.Background()

	proyecto, err := svc.CreateProyecto(ctx, &dto.CreateProyectoRequest{Nombre: "Proyecto X"})
	require.NoError(t, err)
	personal.ids[5] = true

	_, err = svc.AsignarPersonal(ctx, proyecto.ID, &dto.AsignarPersonalRequest{
		Items: []dto.PersonalAsignacion{{PersonalID: int64Ptr(5)}},
	})
	require.NoError(t, err)

	// One bad member aborts the whole replacement without touching the set.
	_, err = svc.ReemplazarPersonal(ctx, proyecto.ID, &dto.ReemplazarPersonalRequest{
		Items: []dto.PersonalAsignacion{
			{PersonalID: int64Ptr(5)},
			{PersonalID: int64Ptr(99)},
		},
	})
	assert.ErrorIs(t, err, apperrors.ErrPersonalNotFound)
	assert.Zero(t, edges.replaceCalls)

	kept, err := svc.ListPersonalDeProyecto(ctx, proyecto.ID)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestReemplazarPersonalWithEmptySetClears(t *testing.T) {
	svc, _, personal, _ := newProyectoFixture(t)
	ctx := context.Background()

	proyecto, err := svc.CreateProyecto(ctx, &dto.CreateProyectoRequest{Nombre: "Proyecto X"})
	require.NoError(t, err)
	personal.ids[5] = true

	_, err = svc.AsignarPersonal(ctx, proyecto.ID, &dto.AsignarPersonalRequest{
		Items: []dto.PersonalAsignacion{{PersonalID: int64Ptr(5)}},
	})
	require.NoError(t, err)

	result, err := svc.ReemplazarPersonal(ctx, proyecto.ID, &dto.ReemplazarPersonalRequest{
		Items: []dto.PersonalAsignacion{},
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestListPersonalDeProyectoUnknownIsEmpty(t *testing.T) {
	svc, _, _, _ := newProyectoFixture(t)

	result, err := svc.ListPersonalDeProyecto(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, result)
}
