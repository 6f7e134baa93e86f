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

type fakeActividadRepo struct {
	actividades    map[int64]*models.Actividad
	nextID         int64
	cascadeDeletes []int64
}

func newFakeActividadRepo() *fakeActividadRepo {
	return &fakeActividadRepo{actividades: make(map[int64]*models.Actividad)}
}

func (f *fakeActividadRepo) Create(_ context.Context, actividad *models.Actividad) error {
	f.nextID++
	actividad.ID = f.nextID
	f.actividades[actividad.ID] = actividad
	return nil
}

func (f *fakeActividadRepo) GetByID(_ context.Context, id int64) (*models.Actividad, error) {
	return f.actividades[id], nil
}

func (f *fakeActividadRepo) GetAll(_ context.Context, tipo *string, offset, limit int) ([]*models.Actividad, error) {
	out := make([]*models.Actividad, 0, len(f.actividades))
	for _, a := range f.actividades {
		if tipo != nil && (a.Tipo == nil || *a.Tipo != *tipo) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeActividadRepo) Update(_ context.Context, actividad *models.Actividad) error {
	f.actividades[actividad.ID] = actividad
	return nil
}

func (f *fakeActividadRepo) DeleteWithVinculos(_ context.Context, id int64) error {
	delete(f.actividades, id)
	f.cascadeDeletes = append(f.cascadeDeletes, id)
	return nil
}

func (f *fakeActividadRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.actividades[id]
	return ok, nil
}

type fakeActividadEdges struct {
	edges []*models.EquipamientoActividad
}

func (f *fakeActividadEdges) LinkBatch(_ context.Context, edges []*models.EquipamientoActividad, now time.Time) error {
	for _, edge := range edges {
		exists := false
		for _, existing := range f.edges {
			if existing.EquipamientoID == edge.EquipamientoID && existing.ActividadID == edge.ActividadID {
				exists = true
				break
			}
		}
		if !exists {
			edge.CreatedAt = now
			f.edges = append(f.edges, edge)
		}
	}
	return nil
}

func (f *fakeActividadEdges) ListByActividad(_ context.Context, actividadID int64) ([]*models.EquipamientoActividad, error) {
	out := []*models.EquipamientoActividad{}
	for _, e := range f.edges {
		if e.ActividadID == actividadID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeActividadEdges) ListByEquipamiento(_ context.Context, equipamientoID int64) ([]*models.EquipamientoActividad, error) {
	out := []*models.EquipamientoActividad{}
	for _, e := range f.edges {
		if e.EquipamientoID == equipamientoID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeActividadEdges) Unlink(_ context.Context, equipamientoID, actividadID int64) error {
	for i, e := range f.edges {
		if e.EquipamientoID == equipamientoID && e.ActividadID == actividadID {
			f.edges = append(f.edges[:i], f.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

func newActividadFixture(t *testing.T) (*ActividadService, *fakeActividadRepo, *fakeExistenceChecker, *fakeActividadEdges) {
	t.Helper()
	actividades := newFakeActividadRepo()
	equipamientos := newFakeExistenceChecker()
	edges := &fakeActividadEdges{}
	return NewActividadService(actividades, equipamientos, edges), actividades, equipamientos, edges
}

func TestDeleteActividadCascadesVinculos(t *testing.T) {
	svc, actividades, _, _ := newActividadFixture(t)
	ctx := context.Background()

	actividad, err := svc.CreateActividad(ctx, &dto.CreateActividadRequest{Tipo: strPtr("ensayo")})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteActividad(ctx, actividad.ID))
	assert.Equal(t, []int64{actividad.ID}, actividades.cascadeDeletes)
}

func TestVincularEquipamientosUnknownEquipamiento(t *testing.T) {
	svc, _, _, edges := newActividadFixture(t)
	ctx := context.Background()

	actividad, err := svc.CreateActividad(ctx, &dto.CreateActividadRequest{Tipo: strPtr("ensayo")})
	require.NoError(t, err)

	_, err = svc.VincularEquipamientos(ctx, actividad.ID, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{99},
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipamientoNotFound)
	assert.Empty(t, edges.edges)
}

func TestVincularEquipamientosIdempotent(t *testing.T) {
	svc, _, equipamientos, _ := newActividadFixture(t)
	ctx := context.Background()

	actividad, err := svc.CreateActividad(ctx, &dto.CreateActividadRequest{Tipo: strPtr("ensayo")})
	require.NoError(t, err)
	equipamientos.ids[7] = true

	first, err := svc.VincularEquipamientos(ctx, actividad.ID, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{7},
	})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.VincularEquipamientos(ctx, actividad.ID, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{7},
	})
	require.NoError(t, err)
	assert.Len(t, second, 1)
}

func TestVincularEquipamientosUnknownActividad(t *testing.T) {
	svc, _, _, _ := newActividadFixture(t)

	_, err := svc.VincularEquipamientos(context.Background(), 42, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{1},
	})
	assert.ErrorIs(t, err, apperrors.ErrActividadNotFound)
}

func TestDesvincularEquipamiento(t *testing.T) {
	svc, _, equipamientos, edges := newActividadFixture(t)
	ctx := context.Background()

	actividad, err := svc.CreateActividad(ctx, &dto.CreateActividadRequest{Tipo: strPtr("ensayo")})
	require.NoError(t, err)
	equipamientos.ids[7] = true

	_, err = svc.VincularEquipamientos(ctx, actividad.ID, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{7},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DesvincularEquipamiento(ctx, actividad.ID, 7))
	assert.Empty(t, edges.edges)
}

func TestDesvincularEquipamientoNotLinked(t *testing.T) {
	svc, _, _, _ := newActividadFixture(t)
	ctx := context.Background()

	actividad, err := svc.CreateActividad(ctx, &dto.CreateActividadRequest{Tipo: strPtr("ensayo")})
	require.NoError(t, err)

	err = svc.DesvincularEquipamiento(ctx, actividad.ID, 7)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestListActividadesDeEquipamientoUnknownIsEmpty(t *testing.T) {
	svc, _, _, _ := newActividadFixture(t)

	result, err := svc.ListActividadesDeEquipamiento(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, result)
}
