package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
	"literinth-be/pkg/database"
)

func TestCatalogFlow(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	// Verify Wiring
	assert.NotNil(t, uow.CategoryRepository())
	assert.NotNil(t, uow.SchematicRepository())

	sqlDB, _ := gormDB.DB()
	assert.NoError(t, sqlDB.Ping())

	suffix := uuid.New().String()[:8]

	author := &entity.User{
		Email:        "catalog-test-" + suffix + "@example.com",
		Username:     "catalog_test_" + suffix,
		PasswordHash: "x",
		Role:         entity.UserRoleUser,
	}
	assert.NoError(t, uow.UserRepository().Create(ctx, author))
	assert.NotEqual(t, uuid.Nil, author.Id)

	category := &entity.Category{
		Slug:      "test-cat-" + suffix,
		SortOrder: 99,
		VisibleRu: true,
		VisibleEn: true,
	}
	assert.NoError(t, uow.CategoryRepository().Create(ctx, category))
	defer uow.CategoryRepository().Delete(ctx, category.Id)

	t.Run("Category Translations And Projection", func(t *testing.T) {
		desc := "Тестовое описание"
		err := uow.CategoryRepository().UpsertTranslation(ctx, category.Id, locale.RU, "Тестовая категория", &desc)
		assert.NoError(t, err)
		err = uow.CategoryRepository().UpsertTranslation(ctx, category.Id, locale.EN, "Test Category", nil)
		assert.NoError(t, err)

		// Upsert replaces, never duplicates
		err = uow.CategoryRepository().UpsertTranslation(ctx, category.Id, locale.EN, "Test Category v2", nil)
		assert.NoError(t, err)

		found, err := uow.CategoryRepository().FindOne(ctx,
			specification.ByID{ID: category.Id},
			specification.Preload{Association: "Translations"},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, "Тестовая категория", found.NameIn(locale.RU))
		assert.Equal(t, "Test Category v2", found.NameIn(locale.EN))
	})

	schematic := &entity.Schematic{
		Slug:       "test-schem-" + suffix,
		AuthorId:   author.Id,
		CategoryId: category.Id,
		Published:  true,
		VisibleRu:  true,
		VisibleEn:  true,
	}

	t.Run("Schematic Create And Search", func(t *testing.T) {
		assert.NoError(t, uow.SchematicRepository().Create(ctx, schematic))

		content := "Инструкция по постройке..."
		err := uow.SchematicRepository().UpsertTranslation(ctx, schematic.Id, locale.RU, "Тестовый схематик", nil, &content)
		assert.NoError(t, err)

		tag, err := uow.TagRepository().FindOrCreateBySlug(ctx, "test-tag-"+suffix, "Тестовый тег", locale.RU)
		assert.NoError(t, err)
		assert.NoError(t, uow.SchematicRepository().ReplaceTags(ctx, schematic.Id, []uuid.UUID{tag.Id}))

		found, err := uow.SchematicRepository().FindOne(ctx,
			specification.PublishedOnly{},
			specification.VisibleIn{Locale: locale.RU},
			specification.SearchInLocale{Query: "Тестовый схематик", Locale: locale.RU},
			specification.Preload{Association: "Translations"},
			specification.Preload{Association: "Tags"},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, schematic.Id, found.Id)
		assert.Equal(t, "Тестовый схематик", found.TitleIn(locale.RU))
		// No EN translation, title falls back to the slug
		assert.Equal(t, schematic.Slug, found.TitleIn(locale.EN))

		// Tag searches go through the join table
		byTag, err := uow.SchematicRepository().FindAll(ctx,
			specification.ByTagSlug{Slug: "test-tag-" + suffix},
		)
		assert.NoError(t, err)
		assert.Len(t, byTag, 1)
	})

	t.Run("Counters Return Post Increment Values", func(t *testing.T) {
		views, err := uow.SchematicRepository().IncrementViews(ctx, schematic.Id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), views)

		views, err = uow.SchematicRepository().IncrementViews(ctx, schematic.Id)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), views)

		downloads, err := uow.SchematicRepository().IncrementDownloads(ctx, schematic.Id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), downloads)
	})

	t.Run("Like Toggle Is Transactional", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		assert.NoError(t, txUow.Begin(ctx))

		like := &entity.SchematicLike{UserId: author.Id, SchematicId: schematic.Id}
		assert.NoError(t, txUow.LikeRepository().Create(ctx, like))
		assert.NoError(t, txUow.Commit())

		liked, err := uow.LikeRepository().Exists(ctx, author.Id, schematic.Id)
		assert.NoError(t, err)
		assert.True(t, liked)

		count, err := uow.LikeRepository().CountBySchematic(ctx, schematic.Id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)

		removed, err := uow.LikeRepository().DeleteByUserAndSchematic(ctx, author.Id, schematic.Id)
		assert.NoError(t, err)
		assert.True(t, removed)

		// Second delete is a no-op
		removed, err = uow.LikeRepository().DeleteByUserAndSchematic(ctx, author.Id, schematic.Id)
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("Subcategory Slug Is Global", func(t *testing.T) {
		other := &entity.Category{
			Slug:      "test-cat-b-" + suffix,
			SortOrder: 99,
			VisibleRu: true,
			VisibleEn: true,
		}
		assert.NoError(t, uow.CategoryRepository().Create(ctx, other))
		defer uow.CategoryRepository().Delete(ctx, other.Id)

		sub := &entity.Subcategory{
			CategoryId: category.Id,
			Slug:       "test-sub-" + suffix,
			VisibleRu:  true,
			VisibleEn:  true,
		}
		assert.NoError(t, uow.SubcategoryRepository().Create(ctx, sub))

		// Same slug under a different category must be rejected, so a
		// bare ?subcategory= filter always names one subcategory.
		dup := &entity.Subcategory{
			CategoryId: other.Id,
			Slug:       "test-sub-" + suffix,
			VisibleRu:  true,
			VisibleEn:  true,
		}
		assert.Error(t, uow.SubcategoryRepository().Create(ctx, dup))
	})

	t.Run("Deleting User Cascades Likes", func(t *testing.T) {
		fan := &entity.User{
			Email:        "catalog-fan-" + suffix + "@example.com",
			Username:     "catalog_fan_" + suffix,
			PasswordHash: "x",
			Role:         entity.UserRoleUser,
		}
		assert.NoError(t, uow.UserRepository().Create(ctx, fan))

		like := &entity.SchematicLike{UserId: fan.Id, SchematicId: schematic.Id}
		assert.NoError(t, uow.LikeRepository().Create(ctx, like))

		assert.NoError(t, gormDB.WithContext(ctx).Exec(`DELETE FROM users WHERE id = ?`, fan.Id).Error)

		liked, err := uow.LikeRepository().Exists(ctx, fan.Id, schematic.Id)
		assert.NoError(t, err)
		assert.False(t, liked, "user deletion must take its likes with it")
	})

	t.Run("Rollback Discards Writes", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		assert.NoError(t, txUow.Begin(ctx))

		ghost := &entity.Schematic{
			Slug:       "test-ghost-" + suffix,
			AuthorId:   author.Id,
			CategoryId: category.Id,
			Published:  true,
			VisibleRu:  true,
			VisibleEn:  true,
		}
		assert.NoError(t, txUow.SchematicRepository().Create(ctx, ghost))
		assert.NoError(t, txUow.Rollback())

		found, err := uow.SchematicRepository().FindOne(ctx, specification.BySlug{Slug: ghost.Slug})
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	// Cleanup (category delete cascades via FK, schematic needs explicit removal first)
	assert.NoError(t, uow.SchematicRepository().Delete(ctx, schematic.Id))
}
