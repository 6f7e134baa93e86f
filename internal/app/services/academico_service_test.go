package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/app/models/dto"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

type fakeCarreraRepo struct {
	carreras map[int64]*models.Carrera
	nextID   int64
	deleted  []int64
}

func newFakeCarreraRepo() *fakeCarreraRepo {
	return &fakeCarreraRepo{carreras: make(map[int64]*models.Carrera)}
}

func (f *fakeCarreraRepo) Create(_ context.Context, carrera *models.Carrera) error {
	f.nextID++
	carrera.ID = f.nextID
	f.carreras[carrera.ID] = carrera
	return nil
}

func (f *fakeCarreraRepo) GetByID(_ context.Context, id int64) (*models.Carrera, error) {
	return f.carreras[id], nil
}

func (f *fakeCarreraRepo) GetAll(_ context.Context, offset, limit int) ([]*models.Carrera, error) {
	out := make([]*models.Carrera, 0, len(f.carreras))
	for _, c := range f.carreras {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCarreraRepo) Update(_ context.Context, carrera *models.Carrera) error {
	f.carreras[carrera.ID] = carrera
	return nil
}

func (f *fakeCarreraRepo) Delete(_ context.Context, id int64) error {
	delete(f.carreras, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCarreraRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.carreras[id]
	return ok, nil
}

type fakeMateriaRepo struct {
	materias        map[int64]*models.Materia
	nextID          int64
	cascadeDeletes  []int64
	countPorCarrera map[int64]int
}

func newFakeMateriaRepo() *fakeMateriaRepo {
	return &fakeMateriaRepo{
		materias:        make(map[int64]*models.Materia),
		countPorCarrera: make(map[int64]int),
	}
}

func (f *fakeMateriaRepo) Create(_ context.Context, materia *models.Materia) error {
	f.nextID++
	materia.ID = f.nextID
	f.materias[materia.ID] = materia
	f.countPorCarrera[materia.IDCarrera]++
	return nil
}

func (f *fakeMateriaRepo) GetByID(_ context.Context, id int64) (*models.Materia, error) {
	return f.materias[id], nil
}

func (f *fakeMateriaRepo) GetAll(_ context.Context, carreraID *int64, semestre *int, offset, limit int) ([]*models.Materia, error) {
	out := make([]*models.Materia, 0, len(f.materias))
	for _, m := range f.materias {
		if carreraID != nil && m.IDCarrera != *carreraID {
			continue
		}
		if semestre != nil && m.Semestre != *semestre {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMateriaRepo) Update(_ context.Context, materia *models.Materia) error {
	f.materias[materia.ID] = materia
	return nil
}

func (f *fakeMateriaRepo) DeleteWithRequisitos(_ context.Context, id int64) error {
	delete(f.materias, id)
	f.cascadeDeletes = append(f.cascadeDeletes, id)
	return nil
}

func (f *fakeMateriaRepo) CountByCarrera(_ context.Context, carreraID int64) (int, error) {
	return f.countPorCarrera[carreraID], nil
}

func (f *fakeMateriaRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.materias[id]
	return ok, nil
}

type fakeRequisitoRepo struct {
	requisitos map[int64]*models.Requisito
	nextID     int64
}

func newFakeRequisitoRepo() *fakeRequisitoRepo {
	return &fakeRequisitoRepo{requisitos: make(map[int64]*models.Requisito)}
}

func (f *fakeRequisitoRepo) Create(_ context.Context, requisito *models.Requisito) error {
	f.nextID++
	requisito.ID = f.nextID
	f.requisitos[requisito.ID] = requisito
	return nil
}

func (f *fakeRequisitoRepo) GetByID(_ context.Context, id int64) (*models.Requisito, error) {
	return f.requisitos[id], nil
}

func (f *fakeRequisitoRepo) GetByPair(_ context.Context, idMateria, idMateriaRequisito int64) (*models.Requisito, error) {
	for _, r := range f.requisitos {
		if r.IDMateria == idMateria && r.IDMateriaRequisito == idMateriaRequisito {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRequisitoRepo) GetAll(_ context.Context, materiaID *int64, offset, limit int) ([]*models.Requisito, error) {
	out := make([]*models.Requisito, 0, len(f.requisitos))
	for _, r := range f.requisitos {
		if materiaID != nil && r.IDMateria != *materiaID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRequisitoRepo) Update(_ context.Context, requisito *models.Requisito) error {
	f.requisitos[requisito.ID] = requisito
	return nil
}

func (f *fakeRequisitoRepo) Delete(_ context.Context, id int64) error {
	delete(f.requisitos, id)
	return nil
}

func newAcademicoFixture(t *testing.T) (*AcademicoService, *fakeCarreraRepo, *fakeMateriaRepo, *fakeRequisitoRepo) {
	t.Helper()
	carreras := newFakeCarreraRepo()
	materias := newFakeMateriaRepo()
	requisitos := newFakeRequisitoRepo()
	return NewAcademicoService(carreras, materias, requisitos), carreras, materias, requisitos
}

func seedMateria(t *testing.T, materias *fakeMateriaRepo, carreraID int64) *models.Materia {
	t.Helper()
	m := &models.Materia{Nombre: "Materia", Codigo: "MAT", Semestre: 1, IDCarrera: carreraID}
	require.NoError(t, materias.Create(context.Background(), m))
	return m
}

func TestCreateRequisitoDefaultsTipo(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)
	b := seedMateria(t, materias, 1)

	requisito, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TipoPrerequisito, requisito.Tipo)
}

func TestCreateRequisitoRejectsUnknownTipo(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)
	b := seedMateria(t, materias, 1)

	_, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
		Tipo:               models.TipoRequisito("optativo"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateRequisitoRejectsSelfLoop(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)

	_, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: a.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrRequisitoSelfLoop)
}

func TestCreateRequisitoRejectsUnknownMateria(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)

	_, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: 999,
	})
	assert.ErrorIs(t, err, apperrors.ErrMateriaNotFound)
}

func TestCreateRequisitoRejectsDuplicatePair(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)
	b := seedMateria(t, materias, 1)

	_, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
	})
	require.NoError(t, err)

	_, err = svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
		Tipo:               models.TipoCorrequisito,
	})
	assert.ErrorIs(t, err, apperrors.ErrRequisitoAlreadyExists)
}

func TestCreateRequisitoAllowsReversedPair(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)
	b := seedMateria(t, materias, 1)

	_, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
	})
	require.NoError(t, err)

	// Opposite direction is a distinct edge, even though it closes a cycle.
	_, err = svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          b.ID,
		IDMateriaRequisito: a.ID,
	})
	assert.NoError(t, err)
}

func TestUpdateRequisitoRejectsEffectiveSelfLoop(t *testing.T) {
	svc, _, materias, requisitos := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)
	b := seedMateria(t, materias, 1)

	requisito, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
	})
	require.NoError(t, err)

	// Patching only one endpoint can still produce a self-loop against the
	// endpoint that stays.
	_, err = svc.UpdateRequisito(ctx, requisito.ID, &dto.UpdateRequisitoRequest{
		IDMateriaRequisito: int64Ptr(a.ID),
	})
	assert.ErrorIs(t, err, apperrors.ErrRequisitoSelfLoop)

	stored, err := requisitos.GetByID(ctx, requisito.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, stored.IDMateriaRequisito)
}

func TestUpdateRequisitoValidatesPatchedEndpoint(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)
	b := seedMateria(t, materias, 1)

	requisito, err := svc.CreateRequisito(ctx, &dto.CreateRequisitoRequest{
		IDMateria:          a.ID,
		IDMateriaRequisito: b.ID,
	})
	require.NoError(t, err)

	_, err = svc.UpdateRequisito(ctx, requisito.ID, &dto.UpdateRequisitoRequest{
		IDMateria: int64Ptr(999),
	})
	assert.ErrorIs(t, err, apperrors.ErrMateriaNotFound)
}

func TestDeleteMateriaCascadesRequisitos(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	a := seedMateria(t, materias, 1)

	require.NoError(t, svc.DeleteMateria(ctx, a.ID))
	assert.Equal(t, []int64{a.ID}, materias.cascadeDeletes)
}

func TestDeleteMateriaUnknown(t *testing.T) {
	svc, _, _, _ := newAcademicoFixture(t)

	err := svc.DeleteMateria(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrMateriaNotFound)
}

func TestDeleteCarreraWithMateriasConflicts(t *testing.T) {
	svc, carreras, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	carrera, err := svc.CreateCarrera(ctx, &dto.CreateCarreraRequest{Nombre: "Ingenieria"})
	require.NoError(t, err)
	seedMateria(t, materias, carrera.ID)

	err = svc.DeleteCarrera(ctx, carrera.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, carreras.deleted)
}

func TestDeleteCarreraWithoutMaterias(t *testing.T) {
	svc, carreras, _, _ := newAcademicoFixture(t)
	ctx := context.Background()

	carrera, err := svc.CreateCarrera(ctx, &dto.CreateCarreraRequest{Nombre: "Ingenieria"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCarrera(ctx, carrera.ID))
	assert.Equal(t, []int64{carrera.ID}, carreras.deleted)
}

func TestCreateMateriaRequiresCarrera(t *testing.T) {
	svc, _, _, _ := newAcademicoFixture(t)

	_, err := svc.CreateMateria(context.Background(), &dto.CreateMateriaRequest{
		Nombre:    "Fisica",
		Codigo:    "FIS1",
		Semestre:  1,
		IDCarrera: 999,
	})
	assert.ErrorIs(t, err, apperrors.ErrCarreraNotFound)
}

func TestUpdateMateriaValidatesNewCarrera(t *testing.T) {
	svc, _, materias, _ := newAcademicoFixture(t)
	ctx := context.Background()

	carrera, err := svc.CreateCarrera(ctx, &dto.CreateCarreraRequest{Nombre: "Ingenieria"})
	require.NoError(t, err)
	materia := seedMateria(t, materias, carrera.ID)

	_, err = svc.UpdateMateria(ctx, materia.ID, &dto.UpdateMateriaRequest{
		IDCarrera: int64Ptr(999),
	})
	assert.ErrorIs(t, err, apperrors.ErrCarreraNotFound)

	otra, err := svc.CreateCarrera(ctx, &dto.CreateCarreraRequest{Nombre: "Quimica"})
	require.NoError(t, err)

	updated, err := svc.UpdateMateria(ctx, materia.ID, &dto.UpdateMateriaRequest{
		IDCarrera: int64Ptr(otra.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, otra.ID, updated.IDCarrera)
}

func TestGetCarreraUnknown(t *testing.T) {
	svc, _, _, _ := newAcademicoFixture(t)

	_, err := svc.GetCarrera(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrCarreraNotFound)
}
