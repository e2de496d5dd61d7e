package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"literinth-be/internal/dto"
	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/repository/contract"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
)

// stubSchematicRepo serves a single record from memory; only the
// methods Download touches are real.
type stubSchematicRepo struct {
	contract.SchematicRepository

	schematic *entity.Schematic
	downloads int64
	bumped    int
}

func (r *stubSchematicRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Schematic, error) {
	return r.schematic, nil
}

func (r *stubSchematicRepo) IncrementDownloads(ctx context.Context, id uuid.UUID) (int64, error) {
	r.bumped++
	r.downloads++
	return r.downloads, nil
}

type stubUow struct {
	unitofwork.UnitOfWork

	schematics *stubSchematicRepo
}

func (u *stubUow) SchematicRepository() contract.SchematicRepository {
	return u.schematics
}

type stubUowFactory struct {
	uow *stubUow
}

func (f *stubUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

func newDownloadFixture(sch *entity.Schematic) (ISchematicService, *stubSchematicRepo) {
	repo := &stubSchematicRepo{schematic: sch, downloads: sch.Downloads}
	factory := &stubUowFactory{uow: &stubUow{schematics: repo}}
	return NewSchematicService(factory, noopPublisher{}), repo
}

func TestDownloadRequiresFile(t *testing.T) {
	fileURL := "https://cdn.example.com/schematics/furnace.litematic"

	t.Run("No File Is Not Found", func(t *testing.T) {
		svc, repo := newDownloadFixture(&entity.Schematic{
			Id:        uuid.New(),
			Published: true,
			VisibleRu: true,
			FileURL:   nil,
		})

		res, err := svc.Download(context.Background(), repo.schematic.Id, locale.RU)

		require.Error(t, err)
		assert.Nil(t, res)
		apiErr := serverutils.AsApiError(err)
		assert.Equal(t, serverutils.KindNotFound, apiErr.Kind)
		assert.Zero(t, repo.bumped, "counter must not move when there is nothing to download")
	})

	t.Run("With File Increments And Returns URL", func(t *testing.T) {
		svc, repo := newDownloadFixture(&entity.Schematic{
			Id:        uuid.New(),
			Published: true,
			VisibleRu: true,
			FileURL:   &fileURL,
			Downloads: 4,
		})

		res, err := svc.Download(context.Background(), repo.schematic.Id, locale.RU)

		require.NoError(t, err)
		assert.Equal(t, &dto.DownloadResponse{Success: true, Downloads: 5, FileURL: &fileURL}, res)
		assert.Equal(t, 1, repo.bumped)
	})

	t.Run("Unpublished Is Not Found", func(t *testing.T) {
		svc, repo := newDownloadFixture(&entity.Schematic{
			Id:        uuid.New(),
			Published: false,
			VisibleRu: true,
			FileURL:   &fileURL,
		})

		_, err := svc.Download(context.Background(), repo.schematic.Id, locale.RU)

		require.Error(t, err)
		assert.Equal(t, serverutils.KindNotFound, serverutils.AsApiError(err).Kind)
		assert.Zero(t, repo.bumped)
	})
}
