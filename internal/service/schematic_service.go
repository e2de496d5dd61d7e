package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"literinth-be/internal/dto"
	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/pkg/slug"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
	"literinth-be/pkg/events"
)

type ISchematicService interface {
	List(ctx context.Context, loc locale.Locale, req *dto.ListSchematicsRequest) (*dto.Paginated[dto.SchematicListItem], error)
	Get(ctx context.Context, ref string, loc locale.Locale, viewerId *uuid.UUID, viewerIsAdmin bool) (*dto.SchematicDetailResponse, error)
	Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateSchematicRequest) (*dto.CreateSchematicResponse, error)
	Update(ctx context.Context, actorId uuid.UUID, actorIsAdmin bool, req *dto.UpdateSchematicRequest) error
	Delete(ctx context.Context, actorId uuid.UUID, actorIsAdmin bool, id uuid.UUID) error
	ToggleLike(ctx context.Context, userId, schematicId uuid.UUID) (*dto.LikeResponse, error)
	Download(ctx context.Context, id uuid.UUID, loc locale.Locale) (*dto.DownloadResponse, error)
}

type schematicService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewSchematicService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) ISchematicService {
	return &schematicService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

var schematicPreloads = []specification.Specification{
	specification.Preload{Association: "Translations"},
	specification.Preload{Association: "Tags"},
	specification.Preload{Association: "Tags.Translations"},
	specification.Preload{Association: "Author"},
	specification.Preload{Association: "Category"},
	specification.Preload{Association: "Subcategory"},
}

func (s *schematicService) List(ctx context.Context, loc locale.Locale, req *dto.ListSchematicsRequest) (*dto.Paginated[dto.SchematicListItem], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	filters := []specification.Specification{
		specification.PublishedOnly{},
		specification.VisibleIn{Locale: loc},
	}
	if req.Category != "" {
		filters = append(filters, specification.ByCategorySlug{Slug: req.Category})
	}
	if req.Subcategory != "" {
		filters = append(filters, specification.BySubcategorySlug{Slug: req.Subcategory})
	}
	if req.Tag != "" {
		filters = append(filters, specification.ByTagSlug{Slug: req.Tag})
	}
	if req.Search != "" {
		filters = append(filters, specification.SearchInLocale{Query: req.Search, Locale: loc})
	}

	total, err := uow.SchematicRepository().Count(ctx, filters...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	page, perPage := normalizePage(req.Page, req.PerPage)

	specs := make([]specification.Specification, 0, len(filters)+len(schematicPreloads)+2)
	specs = append(specs, filters...)
	specs = append(specs, schematicPreloads...)
	specs = append(specs,
		sortSpecification(req.Sort),
		specification.Pagination{Limit: perPage, Offset: (page - 1) * perPage},
	)

	schematics, err := uow.SchematicRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	ids := make([]uuid.UUID, len(schematics))
	for i, sch := range schematics {
		ids[i] = sch.Id
	}
	likes, err := uow.LikeRepository().CountBySchematicIDs(ctx, ids)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	items := make([]dto.SchematicListItem, len(schematics))
	for i, sch := range schematics {
		sch.Likes = likes[sch.Id]
		items[i] = toSchematicListItem(sch, loc)
	}

	return &dto.Paginated[dto.SchematicListItem]{
		Data: items,
		Pagination: dto.Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages(total, perPage),
		},
	}, nil
}

func (s *schematicService) Get(ctx context.Context, ref string, loc locale.Locale, viewerId *uuid.UUID, viewerIsAdmin bool) (*dto.SchematicDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The detail route accepts either the record id or its slug.
	var lookup specification.Specification = specification.BySlug{Slug: ref}
	if id, err := uuid.Parse(ref); err == nil {
		lookup = specification.ByID{ID: id}
	}

	specs := append([]specification.Specification{lookup}, schematicPreloads...)
	schematic, err := uow.SchematicRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if schematic == nil {
		return nil, serverutils.NewNotFound("schematic not found")
	}

	// Hidden records stay reachable for their author and for admins.
	isOwner := viewerId != nil && *viewerId == schematic.AuthorId
	if (!schematic.Published || !schematic.VisibleIn(loc)) && !isOwner && !viewerIsAdmin {
		return nil, serverutils.NewNotFound("schematic not found")
	}

	views, err := uow.SchematicRepository().IncrementViews(ctx, schematic.Id)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	schematic.Views = views

	schematic.Likes, err = uow.LikeRepository().CountBySchematic(ctx, schematic.Id)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	isLiked := false
	if viewerId != nil {
		isLiked, err = uow.LikeRepository().Exists(ctx, *viewerId, schematic.Id)
		if err != nil {
			return nil, serverutils.NewInternal(err)
		}
	}

	s.publishEvent(ctx, events.TypeSchematicViewed, map[string]interface{}{
		"schematic_id": schematic.Id,
		"views":        views,
	})

	detail := dto.SchematicDetail{
		SchematicListItem: toSchematicListItem(schematic, loc),
		Content:           schematic.ContentIn(loc),
		FileURL:           schematic.FileURL,
		IsLiked:           isLiked,
	}
	return &dto.SchematicDetailResponse{Schematic: detail}, nil
}

func (s *schematicService) Create(ctx context.Context, authorId uuid.UUID, req *dto.CreateSchematicRequest) (*dto.CreateSchematicResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.CategoryId})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if category == nil {
		return nil, serverutils.NewInvalidArgument("category does not exist")
	}

	if req.SubcategoryId != nil {
		subcategory, err := uow.SubcategoryRepository().FindOne(ctx, specification.ByID{ID: *req.SubcategoryId})
		if err != nil {
			return nil, serverutils.NewInternal(err)
		}
		if subcategory == nil || subcategory.CategoryId != req.CategoryId {
			return nil, serverutils.NewInvalidArgument("subcategory does not belong to the category")
		}
	}

	slugValue, err := s.uniqueSlug(ctx, uow, primaryTitle(req.Translations))
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	schematic := &entity.Schematic{
		Id:            uuid.New(),
		Slug:          slugValue,
		AuthorId:      authorId,
		CategoryId:    req.CategoryId,
		SubcategoryId: req.SubcategoryId,
		FileURL:       req.FileURL,
		ImageURL:      req.ImageURL,
		Published:     true,
		VisibleRu:     true,
		VisibleEn:     true,
		CreatedAt:     time.Now(),
	}
	if err := uow.SchematicRepository().Create(ctx, schematic); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return nil, serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.SchematicRepository().UpsertTranslation(ctx, schematic.Id, loc, tr.Title, tr.Description, tr.Content); err != nil {
			return nil, serverutils.NewInternal(err)
		}
	}

	if err := s.attachTags(ctx, uow, schematic.Id, req.Tags); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	s.publishEvent(ctx, events.TypeSchematicCreated, map[string]interface{}{
		"schematic_id": schematic.Id,
		"author_id":    authorId,
		"slug":         schematic.Slug,
	})

	return &dto.CreateSchematicResponse{Id: schematic.Id, Slug: schematic.Slug}, nil
}

func (s *schematicService) Update(ctx context.Context, actorId uuid.UUID, actorIsAdmin bool, req *dto.UpdateSchematicRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schematic, err := uow.SchematicRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if schematic == nil {
		return serverutils.NewNotFound("schematic not found")
	}
	if schematic.AuthorId != actorId && !actorIsAdmin {
		return serverutils.NewPermissionDenied("only the author or an admin can edit a schematic")
	}

	if req.CategoryId != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryId})
		if err != nil {
			return serverutils.NewInternal(err)
		}
		if category == nil {
			return serverutils.NewInvalidArgument("category does not exist")
		}
		schematic.CategoryId = *req.CategoryId
		schematic.SubcategoryId = nil
	}
	if req.SubcategoryId != nil {
		subcategory, err := uow.SubcategoryRepository().FindOne(ctx, specification.ByID{ID: *req.SubcategoryId})
		if err != nil {
			return serverutils.NewInternal(err)
		}
		if subcategory == nil || subcategory.CategoryId != schematic.CategoryId {
			return serverutils.NewInvalidArgument("subcategory does not belong to the category")
		}
		schematic.SubcategoryId = req.SubcategoryId
	}
	if req.FileURL != nil {
		schematic.FileURL = req.FileURL
	}
	if req.ImageURL != nil {
		schematic.ImageURL = req.ImageURL
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	if err := uow.SchematicRepository().Update(ctx, schematic); err != nil {
		return serverutils.NewInternal(err)
	}

	for _, tr := range req.Translations {
		loc, ok := locale.Parse(tr.Locale)
		if !ok {
			return serverutils.NewInvalidArgument("unsupported locale: " + tr.Locale)
		}
		if err := uow.SchematicRepository().UpsertTranslation(ctx, schematic.Id, loc, tr.Title, tr.Description, tr.Content); err != nil {
			return serverutils.NewInternal(err)
		}
	}

	if req.Tags != nil {
		if err := s.attachTags(ctx, uow, schematic.Id, req.Tags); err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewInternal(err)
	}
	return nil
}

func (s *schematicService) Delete(ctx context.Context, actorId uuid.UUID, actorIsAdmin bool, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schematic, err := uow.SchematicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return serverutils.NewInternal(err)
	}
	if schematic == nil {
		return serverutils.NewNotFound("schematic not found")
	}
	if schematic.AuthorId != actorId && !actorIsAdmin {
		return serverutils.NewPermissionDenied("only the author or an admin can delete a schematic")
	}

	if err := uow.SchematicRepository().Delete(ctx, id); err != nil {
		return serverutils.NewInternal(err)
	}
	return nil
}

func (s *schematicService) ToggleLike(ctx context.Context, userId, schematicId uuid.UUID) (*dto.LikeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schematic, err := uow.SchematicRepository().FindOne(ctx, specification.ByID{ID: schematicId})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if schematic == nil || !schematic.Published {
		return nil, serverutils.NewNotFound("schematic not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewInternal(err)
	}
	defer uow.Rollback()

	removed, err := uow.LikeRepository().DeleteByUserAndSchematic(ctx, userId, schematicId)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	liked := false
	if !removed {
		like := &entity.SchematicLike{UserId: userId, SchematicId: schematicId}
		if err := uow.LikeRepository().Create(ctx, like); err != nil {
			// A concurrent toggle may have inserted first; that still
			// leaves the user in the liked state.
			if !isDuplicateKey(err) {
				return nil, serverutils.NewInternal(err)
			}
		}
		liked = true
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewInternal(err)
	}

	likes, err := uow.LikeRepository().CountBySchematic(ctx, schematicId)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	if liked {
		s.publishEvent(ctx, events.TypeSchematicLiked, map[string]interface{}{
			"schematic_id": schematicId,
			"user_id":      userId,
			"likes":        likes,
		})
	}

	return &dto.LikeResponse{Success: true, Liked: liked, Likes: likes}, nil
}

func (s *schematicService) Download(ctx context.Context, id uuid.UUID, loc locale.Locale) (*dto.DownloadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	schematic, err := uow.SchematicRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if schematic == nil || !schematic.Published || !schematic.VisibleIn(loc) {
		return nil, serverutils.NewNotFound("schematic not found")
	}
	if schematic.FileURL == nil {
		return nil, serverutils.NewNotFound("schematic has no file")
	}

	downloads, err := uow.SchematicRepository().IncrementDownloads(ctx, id)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	s.publishEvent(ctx, events.TypeSchematicDownloaded, map[string]interface{}{
		"schematic_id": id,
		"downloads":    downloads,
	})

	return &dto.DownloadResponse{Success: true, Downloads: downloads, FileURL: schematic.FileURL}, nil
}

// uniqueSlug derives a slug from the preferred title and suffixes it
// when the base form is already taken.
func (s *schematicService) uniqueSlug(ctx context.Context, uow unitofwork.UnitOfWork, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "schematic"
	}

	existing, err := uow.SchematicRepository().FindOne(ctx, specification.BySlug{Slug: base})
	if err != nil {
		return "", serverutils.NewInternal(err)
	}
	if existing == nil {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func (s *schematicService) attachTags(ctx context.Context, uow unitofwork.UnitOfWork, schematicId uuid.UUID, names []string) error {
	tagIds := make([]uuid.UUID, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		tagSlug := slug.Make(name)
		if tagSlug == "" || seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true

		loc := locale.Default
		if !hasCyrillic(name) {
			loc = locale.EN
		}
		tag, err := uow.TagRepository().FindOrCreateBySlug(ctx, tagSlug, strings.TrimSpace(name), loc)
		if err != nil {
			return serverutils.NewInternal(err)
		}
		tagIds = append(tagIds, tag.Id)
	}

	if err := uow.SchematicRepository().ReplaceTags(ctx, schematicId, tagIds); err != nil {
		return serverutils.NewInternal(err)
	}
	return nil
}

func (s *schematicService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	msg := dto.EngagementEventMessage{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WARN] Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}

// primaryTitle picks the slug source: the Russian title when present,
// the first translation otherwise.
func primaryTitle(translations []dto.SchematicTranslationInput) string {
	for _, tr := range translations {
		if tr.Locale == string(locale.RU) {
			return tr.Title
		}
	}
	if len(translations) > 0 {
		return translations[0].Title
	}
	return ""
}

func hasCyrillic(s string) bool {
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

func toSchematicListItem(s *entity.Schematic, loc locale.Locale) dto.SchematicListItem {
	item := dto.SchematicListItem{
		Id:          s.Id,
		Slug:        s.Slug,
		Title:       s.TitleIn(loc),
		Description: s.DescriptionIn(loc),
		ImageURL:    s.ImageURL,
		Views:       s.Views,
		Downloads:   s.Downloads,
		Likes:       s.Likes,
		CreatedAt:   s.CreatedAt,
	}
	if s.Category != nil {
		item.CategorySlug = s.Category.Slug
	}
	if s.Subcategory != nil {
		item.SubcategorySlug = &s.Subcategory.Slug
	}
	if s.Author != nil {
		item.Author = &dto.SchematicAuthor{
			Id:        s.Author.Id,
			Username:  s.Author.Username,
			AvatarURL: s.Author.AvatarURL,
		}
	}
	item.Tags = make([]dto.TagResponse, len(s.Tags))
	for i, tag := range s.Tags {
		item.Tags[i] = dto.TagResponse{Id: tag.Id, Slug: tag.Slug, Name: tag.NameIn(loc)}
	}
	return item
}
