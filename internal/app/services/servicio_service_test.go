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

type fakeServicioEdges struct {
	edges []*models.ServicioEquipamiento
}

func (f *fakeServicioEdges) ListByServicio(_ context.Context, servicioID int64) ([]*models.ServicioEquipamiento, error) {
	out := []*models.ServicioEquipamiento{}
	for _, e := range f.edges {
		if e.ServicioID == servicioID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeServicioEdges) LinkBatch(_ context.Context, edges []*models.ServicioEquipamiento, now time.Time) error {
	for _, edge := range edges {
		exists := false
		for _, e := range f.edges {
			if e.ServicioID == edge.ServicioID && e.EquipamientoID == edge.EquipamientoID {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		edge.CreatedAt = now
		f.edges = append(f.edges, edge)
	}
	return nil
}

func (f *fakeServicioEdges) Unlink(_ context.Context, servicioID, equipamientoID int64) error {
	for i, e := range f.edges {
		if e.ServicioID == servicioID && e.EquipamientoID == equipamientoID {
			f.edges = append(f.edges[:i], f.edges[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeServicioRepo struct {
	servicios      map[int64]*models.Servicio
	nextID         int64
	edges          *fakeServicioEdges
	cascadeDeletes []int64
}

func newFakeServicioRepo(edges *fakeServicioEdges) *fakeServicioRepo {
	return &fakeServicioRepo{servicios: make(map[int64]*models.Servicio), edges: edges}
}

func (f *fakeServicioRepo) CreateWithEquipamientos(_ context.Context, servicio *models.Servicio, equipamientoIDs []int64) error {
	f.nextID++
	servicio.ID = f.nextID
	f.servicios[servicio.ID] = servicio
	for _, equipamientoID := range equipamientoIDs {
		f.edges.edges = append(f.edges.edges, &models.ServicioEquipamiento{
			ServicioID:     servicio.ID,
			EquipamientoID: equipamientoID,
			CreatedAt:      time.Now().UTC(),
		})
	}
	return nil
}

func (f *fakeServicioRepo) GetByID(_ context.Context, id int64) (*models.Servicio, error) {
	return f.servicios[id], nil
}

func (f *fakeServicioRepo) GetAll(_ context.Context, offset, limit int) ([]*models.Servicio, error) {
	out := make([]*models.Servicio, 0, len(f.servicios))
	for _, s := range f.servicios {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServicioRepo) Update(_ context.Context, servicio *models.Servicio) error {
	f.servicios[servicio.ID] = servicio
	return nil
}

func (f *fakeServicioRepo) DeleteWithEquipamientos(_ context.Context, id int64) error {
	delete(f.servicios, id)
	f.cascadeDeletes = append(f.cascadeDeletes, id)
	return nil
}

func (f *fakeServicioRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.servicios[id]
	return ok, nil
}

func newServicioFixture(t *testing.T) (*ServicioService, *fakeServicioRepo, *fakeExistenceChecker, *fakeServicioEdges) {
	t.Helper()
	edges := &fakeServicioEdges{}
	servicios := newFakeServicioRepo(edges)
	equipamientos := newFakeExistenceChecker()
	return NewServicioService(servicios, equipamientos, edges), servicios, equipamientos, edges
}

func TestCreateServicioRequiresEquipamientos(t *testing.T) {
	svc, _, _, _ := newServicioFixture(t)

	_, err := svc.CreateServicio(context.Background(), &dto.CreateServicioRequest{
		Nombre: "Ensayo de materiales",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmptyEquipamientoSet)
}

func TestCreateServicioRejectsNegativeTarifa(t *testing.T) {
	svc, _, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true

	_, err := svc.CreateServicio(context.Background(), &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		Tarifa:          float64Ptr(-100),
		EquipamientoIDs: []int64{1},
	})
	assert.ErrorIs(t, err, apperrors.ErrNegativeTarifa)
}

func TestCreateServicioRejectsUnknownEquipamiento(t *testing.T) {
	svc, servicios, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true

	_, err := svc.CreateServicio(context.Background(), &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1, 99},
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipamientoNotFound)
	assert.Empty(t, servicios.servicios)
}

func TestCreateServicioPopulatesEdges(t *testing.T) {
	svc, _, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true
	equipamientos.ids[2] = true

	servicio, err := svc.CreateServicio(context.Background(), &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		Tarifa:          float64Ptr(1500),
		EquipamientoIDs: []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Len(t, servicio.Equipamientos, 2)
}

func TestGetServicioPopulatesEdges(t *testing.T) {
	svc, _, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1},
	})
	require.NoError(t, err)

	servicio, err := svc.GetServicio(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, servicio.Equipamientos, 1)
	assert.Equal(t, int64(1), servicio.Equipamientos[0].EquipamientoID)
}

func TestUpdateServicioRejectsNegativeTarifa(t *testing.T) {
	svc, _, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1},
	})
	require.NoError(t, err)

	_, err = svc.UpdateServicio(ctx, created.ID, &dto.UpdateServicioRequest{
		Tarifa: float64Ptr(-1),
	})
	assert.ErrorIs(t, err, apperrors.ErrNegativeTarifa)
}

func TestDeleteServicioCascadesEdges(t *testing.T) {
	svc, servicios, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteServicio(ctx, created.ID))
	assert.Equal(t, []int64{created.ID}, servicios.cascadeDeletes)
}

func TestGetServicioUnknown(t *testing.T) {
	svc, _, _, _ := newServicioFixture(t)

	_, err := svc.GetServicio(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrServicioNotFound)
}

func TestAgregarEquipamientosSkipsExistingPairs(t *testing.T) {
	svc, _, equipamientos, edges := newServicioFixture(t)
	equipamientos.ids[1] = true
	equipamientos.ids[2] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1},
	})
	require.NoError(t, err)

	result, err := svc.AgregarEquipamientos(ctx, created.ID, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{1, 2},
	})
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Len(t, edges.edges, 2)
}

func TestAgregarEquipamientosRejectsUnknownEquipamiento(t *testing.T) {
	svc, _, equipamientos, edges := newServicioFixture(t)
	equipamientos.ids[1] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1},
	})
	require.NoError(t, err)

	_, err = svc.AgregarEquipamientos(ctx, created.ID, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{99},
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipamientoNotFound)
	assert.Len(t, edges.edges, 1)
}

func TestAgregarEquipamientosUnknownServicio(t *testing.T) {
	svc, _, _, _ := newServicioFixture(t)

	_, err := svc.AgregarEquipamientos(context.Background(), 42, &dto.VincularEquipamientosRequest{
		EquipamientoIDs: []int64{1},
	})
	assert.ErrorIs(t, err, apperrors.ErrServicioNotFound)
}

func TestQuitarEquipamiento(t *testing.T) {
	svc, _, equipamientos, edges := newServicioFixture(t)
	equipamientos.ids[1] = true
	equipamientos.ids[2] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	require.NoError(t, svc.QuitarEquipamiento(ctx, created.ID, 1))
	require.Len(t, edges.edges, 1)
	assert.Equal(t, int64(2), edges.edges[0].EquipamientoID)
}

func TestQuitarEquipamientoNotLinked(t *testing.T) {
	svc, _, equipamientos, _ := newServicioFixture(t)
	equipamientos.ids[1] = true
	ctx := context.Background()

	created, err := svc.CreateServicio(ctx, &dto.CreateServicioRequest{
		Nombre:          "Ensayo de materiales",
		EquipamientoIDs: []int64{1},
	})
	require.NoError(t, err)

	err = svc.QuitarEquipamiento(ctx, created.ID, 7)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
