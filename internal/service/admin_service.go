package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"literinth-be/internal/dto"
	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/pkg/logger"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
)

const statsCacheKey = "admin:stats"

type IAdminService interface {
	CategoryTree(ctx context.Context) ([]dto.AdminCategoryResponse, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.AdminCategoryResponse, error)
	UpdateCategory(ctx context.Context, req *dto.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	SetCategoryVisibility(ctx context.Context, req *dto.UpdateVisibilityRequest) error

	UpsertCategoryTranslations(ctx context.Context, req *dto.UpsertTranslationsRequest) error

	CreateSubcategory(ctx context.Context, req *dto.CreateSubcategoryRequest) (*dto.AdminCategoryResponse, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
	SetSubcategoryVisibility(ctx context.Context, req *dto.UpdateVisibilityRequest) error
	UpsertSubcategoryTranslations(ctx context.Context, req *dto.UpsertTranslationsRequest) error

	ListSchematics(ctx context.Context, req *dto.AdminListSchematicsRequest) (*dto.Paginated[dto.AdminSchematicResponse], error)
	SetSchematicVisibility(ctx context.Context, req *dto.UpdateVisibilityRequest) error
	UpsertSchematicTranslations(ctx context.Context, req *dto.UpsertSchematicTranslationsRequest) error

	Stats(ctx context.Context) (*dto.AdminStatsResponse, error)
	Logs(ctx context.Context, level, module string, page, perPage int) (*dto.Paginated[dto.SystemLogResponse], error)
	Log(ctx context.Context, id uuid.UUID) (*dto.SystemLogResponse, error)

	// AppLogs reads the rotated process log file, unlike Logs which
	// serves the engagement audit trail from the database.
	AppLogs(level string, page, perPage int) ([]logger.LogEntry, error)
	AppLog(id string) (*logger.LogEntry, error)
}

type adminService struct {
	uowFactory      unitofwork.RepositoryFactory
	categoryService ICategoryService
	appLog          logger.ILogger
	statsCache      *gocache.Cache
}

func NewAdminService(uowFactory unitofwork.RepositoryFactory, categoryService ICategoryService, appLog logger.ILogger) IAdminService {
	return &adminService{
		uowFactory:      uowFactory,
		categoryService: categoryService,
		appLog:          appLog,
		statsCache:      gocache.New(30*time.Second, time.Minute),
	}
}

func (s *adminService) CategoryTree(ctx context.Context) ([]dto.AdminCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx,
		specification.Preload{Association: "Translations"},
		specification.Preload{Association: "Subcategories"},
		specification.Preload{Association: "Subcategories.Translations"},
		specification.OrderBy{Field: "sort_order"},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	res := make([]dto.AdminCategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = toAdminCategoryResponse(c)
	}
	return res, nil
}

func (s *adminService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.AdminCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.CategoryRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if existing != nil {
		return nil, serverutils.NewAlreadyExists("category slug already in use")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	category := &entity.Category{
		Id:        uuid.New(),
		Slug:      req.Slug,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
		VisibleRu: true,
		VisibleEn: true,
	}
	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return nil, serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.CategoryRepository().UpsertTranslation(ctx, category.Id, loc, tr.Name, tr.Description); err != nil {
			return nil, serverutils.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)

	res := toAdminCategoryResponse(category)
	res.Translations = req.Translations
	return &res, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, req *dto.UpdateCategoryRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if category == nil {
		return serverutils.NewNotFound("category not found")
	}

	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Icon != nil {
		category.Icon = req.Icon
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return serverutils.NewInternal(err)
	}

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.CategoryRepository().UpsertTranslation(ctx, category.Id, loc, tr.Name, tr.Description); err != nil {
			return serverutils.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if category == nil {
		return serverutils.NewNotFound("category not found")
	}

	inUse, err := uow.SchematicRepository().Count(ctx, specification.Filter("category_id", id))
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if inUse > 0 {
		return serverutils.NewInvalidArgument("category still has schematics")
	}

	if err := uow.CategoryRepository().Delete(ctx, id); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) SetCategoryVisibility(ctx context.Context, req *dto.UpdateVisibilityRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if category == nil {
		return serverutils.NewNotFound("category not found")
	}

	if err := uow.CategoryRepository().UpdateVisibility(ctx, req.Id, req.VisibleRu, req.VisibleEn); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) CreateSubcategory(ctx context.Context, req *dto.CreateSubcategoryRequest) (*dto.AdminCategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.CategoryId})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if category == nil {
		return nil, serverutils.NewInvalidArgument("category does not exist")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	subcategory := &entity.Subcategory{
		Id:         uuid.New(),
		CategoryId: req.CategoryId,
		Slug:       req.Slug,
		SortOrder:  req.SortOrder,
		VisibleRu:  true,
		VisibleEn:  true,
	}
	if err := uow.SubcategoryRepository().Create(ctx, subcategory); err != nil {
		if isDuplicateKey(err) {
			return nil, serverutils.NewAlreadyExists("subcategory slug already in use")
		}
		return nil, serverutils.NewInternal(err)
	}

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return nil, serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.SubcategoryRepository().UpsertTranslation(ctx, subcategory.Id, loc, tr.Name, tr.Description); err != nil {
			return nil, serverutils.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)

	return &dto.AdminCategoryResponse{
		Id:           subcategory.Id,
		Slug:         subcategory.Slug,
		SortOrder:    subcategory.SortOrder,
		VisibleRu:    subcategory.VisibleRu,
		VisibleEn:    subcategory.VisibleEn,
		Translations: req.Translations,
	}, nil
}

func (s *adminService) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subcategory, err := uow.SubcategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if subcategory == nil {
		return serverutils.NewNotFound("subcategory not found")
	}

	inUse, err := uow.SchematicRepository().Count(ctx, specification.Filter("subcategory_id", id))
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if inUse > 0 {
		return serverutils.NewInvalidArgument("subcategory still has schematics")
	}

	if err := uow.SubcategoryRepository().Delete(ctx, id); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) SetSubcategoryVisibility(ctx context.Context, req *dto.UpdateVisibilityRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subcategory, err := uow.SubcategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if subcategory == nil {
		return serverutils.NewNotFound("subcategory not found")
	}

	if err := uow.SubcategoryRepository().UpdateVisibility(ctx, req.Id, req.VisibleRu, req.VisibleEn); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) UpsertCategoryTranslations(ctx context.Context, req *dto.UpsertTranslationsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if category == nil {
		return serverutils.NewNotFound("category not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.CategoryRepository().UpsertTranslation(ctx, req.Id, loc, tr.Name, tr.Description); err != nil {
			return serverutils.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) UpsertSubcategoryTranslations(ctx context.Context, req *dto.UpsertTranslationsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subcategory, err := uow.SubcategoryRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if subcategory == nil {
		return serverutils.NewNotFound("subcategory not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.SubcategoryRepository().UpsertTranslation(ctx, req.Id, loc, tr.Name, tr.Description); err != nil {
			return serverutils.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewInternal(err)
	}

	s.categoryService.InvalidateCache(ctx)
	return nil
}

func (s *adminService) ListSchematics(ctx context.Context, req *dto.AdminListSchematicsRequest) (*dto.Paginated[dto.AdminSchematicResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Moderation view: no published or visibility filtering.
	filters := []specification.Specification{}
	if req.Category != "" {
		filters = append(filters, specification.ByCategorySlug{Slug: req.Category})
	}
	if req.Search != "" {
		filters = append(filters, specification.SearchAllLocales{Query: req.Search})
	}

	total, err := uow.SchematicRepository().Count(ctx, filters...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	page, perPage := normalizePage(req.Page, req.PerPage)
	specs := append(filters,
		specification.Preload{Association: "Translations"},
		specification.Preload{Association: "Category"},
		specification.OrderBy{Field: "schematics.created_at", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)

	schematics, err := uow.SchematicRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	items := make([]dto.AdminSchematicResponse, len(schematics))
	for i, sch := range schematics {
		translations := make([]dto.SchematicTranslationInput, len(sch.Translations))
		for j, tr := range sch.Translations {
			translations[j] = dto.SchematicTranslationInput{
				Locale:      string(tr.Locale),
				Title:       tr.Name,
				Description: tr.Description,
				Content:     tr.Content,
			}
		}

		categorySlug := ""
		if sch.Category != nil {
			categorySlug = sch.Category.Slug
		}

		items[i] = dto.AdminSchematicResponse{
			Id:            sch.Id,
			Slug:          sch.Slug,
			AuthorId:      sch.AuthorId,
			CategorySlug:  categorySlug,
			SubcategoryId: sch.SubcategoryId,
			FileURL:       sch.FileURL,
			ImageURL:      sch.ImageURL,
			Published:     sch.Published,
			VisibleRu:     sch.VisibleRu,
			VisibleEn:     sch.VisibleEn,
			Views:         sch.Views,
			Downloads:     sch.Downloads,
			Translations:  translations,
			CreatedAt:     sch.CreatedAt,
		}
	}

	return &dto.Paginated[dto.AdminSchematicResponse]{
		Data: items,
		Pagination: dto.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	}, nil
}

func (s *adminService) UpsertSchematicTranslations(ctx context.Context, req *dto.UpsertSchematicTranslationsRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schematic, err := uow.SchematicRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if schematic == nil {
		return serverutils.NewNotFound("schematic not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.SchematicRepository().UpsertTranslation(ctx, req.Id, loc, tr.Title, tr.Description, tr.Content); err != nil {
			return serverutils.NewInternal(err)
		}
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewInternal(err)
	}
	return nil
}

func (s *adminService) SetSchematicVisibility(ctx context.Context, req *dto.UpdateVisibilityRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schematic, err := uow.SchematicRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if schematic == nil {
		return serverutils.NewNotFound("schematic not found")
	}

	return uow.SchematicRepository().UpdateVisibility(ctx, req.Id, req.Published, req.VisibleRu, req.VisibleEn)
}

func (s *adminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	if cached, found := s.statsCache.Get(statsCacheKey); found {
		if stats, ok := cached.(*dto.AdminStatsResponse); ok {
			return stats, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	schematics, err := uow.SchematicRepository().Count(ctx)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	categories, err := uow.CategoryRepository().Count(ctx)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	views, downloads, err := uow.SchematicRepository().SumCounters(ctx)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	likes, err := uow.LikeRepository().CountAll(ctx)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	stats := &dto.AdminStatsResponse{
		Users:          users,
		Schematics:     schematics,
		Categories:     categories,
		TotalViews:     views,
		TotalDownloads: downloads,
		TotalLikes:     likes,
	}
	s.statsCache.Set(statsCacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}

func (s *adminService) Logs(ctx context.Context, level, module string, page, perPage int) (*dto.Paginated[dto.SystemLogResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{}
	if level != "" {
		filters = append(filters, specification.Filter("level", level))
	}
	if module != "" {
		filters = append(filters, specification.Filter("module", module))
	}

	total, err := uow.SystemLogRepository().Count(ctx, filters...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	page, perPage = normalizePage(page, perPage)
	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)

	logs, err := uow.SystemLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	items := make([]dto.SystemLogResponse, len(logs))
	for i, l := range logs {
		var details map[string]interface{}
		if len(l.Details) > 0 {
			_ = json.Unmarshal(l.Details, &details)
		}
		items[i] = dto.SystemLogResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			Details:   details,
			CreatedAt: l.CreatedAt,
		}
	}

	return &dto.Paginated[dto.SystemLogResponse]{
		Data: items,
		Pagination: dto.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	}, nil
}

func (s *adminService) Log(ctx context.Context, id uuid.UUID) (*dto.SystemLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.SystemLogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if entry == nil {
		return nil, serverutils.NewNotFound("log entry not found")
	}

	var details map[string]interface{}
	if len(entry.Details) > 0 {
		_ = json.Unmarshal(entry.Details, &details)
	}
	return &dto.SystemLogResponse{
		Id:        entry.Id,
		Level:     entry.Level,
		Module:    entry.Module,
		Message:   entry.Message,
		Details:   details,
		CreatedAt: entry.CreatedAt,
	}, nil
}

func (s *adminService) AppLogs(level string, page, perPage int) ([]logger.LogEntry, error) {
	page, perPage = normalizePage(page, perPage)
	entries, err := s.appLog.GetLogs(level, perPage, (page-1)*perPage)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	return entries, nil
}

func (s *adminService) AppLog(id string) (*logger.LogEntry, error) {
	entry, err := s.appLog.GetLogById(id)
	if err != nil {
		return nil, serverutils.NewNotFound("log entry not found")
	}
	return entry, nil
}

func toAdminCategoryResponse(c *entity.Category) dto.AdminCategoryResponse {
	translations := make([]dto.TranslationInput, len(c.Translations))
	for i, tr := range c.Translations {
		translations[i] = dto.TranslationInput{
			Locale:      string(tr.Locale),
			Name:        tr.Name,
			Description: tr.Description,
		}
	}

	subcategories := make([]dto.AdminCategoryResponse, len(c.Subcategories))
	for i, sub := range c.Subcategories {
		subTranslations := make([]dto.TranslationInput, len(sub.Translations))
		for j, tr := range sub.Translations {
			subTranslations[j] = dto.TranslationInput{
				Locale:      string(tr.Locale),
				Name:        tr.Name,
				Description: tr.Description,
			}
		}
		subcategories[i] = dto.AdminCategoryResponse{
			Id:           sub.Id,
			Slug:         sub.Slug,
			SortOrder:    sub.SortOrder,
			VisibleRu:    sub.VisibleRu,
			VisibleEn:    sub.VisibleEn,
			Translations: subTranslations,
		}
	}

	return dto.AdminCategoryResponse{
		Id:            c.Id,
		Slug:          c.Slug,
		Icon:          c.Icon,
		SortOrder:     c.SortOrder,
		VisibleRu:     c.VisibleRu,
		VisibleEn:     c.VisibleEn,
		Translations:  translations,
		Subcategories: subcategories,
	}
}
