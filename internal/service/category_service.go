package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"literinth-be/internal/dto"
	"literinth-be/internal/entity"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
)

const categoryCacheTTL = 5 * time.Minute

type ICategoryService interface {
	List(ctx context.Context, loc locale.Locale) (*dto.CategoriesResponse, error)
	GetBySlug(ctx context.Context, slug string, loc locale.Locale) (*dto.CategoryDetailResponse, error)
	InvalidateCache(ctx context.Context)
}

type categoryService struct {
	uowFactory  unitofwork.RepositoryFactory
	redisClient *redis.Client
}

func NewCategoryService(uowFactory unitofwork.RepositoryFactory, redisClient *redis.Client) ICategoryService {
	return &categoryService{
		uowFactory:  uowFactory,
		redisClient: redisClient,
	}
}

func (s *categoryService) List(ctx context.Context, loc locale.Locale) (*dto.CategoriesResponse, error) {
	cacheKey := "catalog:categories:" + string(loc)

	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var res dto.CategoriesResponse
			if json.Unmarshal([]byte(cached), &res) == nil {
				return &res, nil
			}
		}
	}

	categories, err := s.loadTree(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.CategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		if !c.VisibleIn(loc) {
			continue
		}
		res.Categories = append(res.Categories, toCategoryResponse(c, loc))
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(res); err == nil {
			if err := s.redisClient.Set(ctx, cacheKey, payload, categoryCacheTTL).Err(); err != nil {
				log.Printf("[WARN] Failed to cache category tree: %v", err)
			}
		}
	}

	return res, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string, loc locale.Locale) (*dto.CategoryDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx,
		specification.BySlug{Slug: slug},
		specification.Preload{Association: "Translations"},
		specification.Preload{Association: "Subcategories"},
		specification.Preload{Association: "Subcategories.Translations"},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}
	if category == nil || !category.VisibleIn(loc) {
		return nil, serverutils.NewNotFound("category not found")
	}

	return &dto.CategoryDetailResponse{Category: toCategoryResponse(category, loc)}, nil
}

// InvalidateCache drops the cached trees for every locale. Called by
// the admin service after any taxonomy mutation.
func (s *categoryService) InvalidateCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	keys := []string{
		"catalog:categories:" + string(locale.RU),
		"catalog:categories:" + string(locale.EN),
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[WARN] Failed to invalidate category cache: %v", err)
	}
}

func (s *categoryService) loadTree(ctx context.Context) ([]*entity.Category, error) {
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
	return categories, nil
}

func toCategoryResponse(c *entity.Category, loc locale.Locale) dto.CategoryResponse {
	subcategories := make([]dto.SubcategoryResponse, 0, len(c.Subcategories))
	for _, sub := range c.Subcategories {
		if !sub.VisibleIn(loc) {
			continue
		}
		subcategories = append(subcategories, dto.SubcategoryResponse{
			Id:          sub.Id,
			Slug:        sub.Slug,
			Name:        sub.NameIn(loc),
			Description: sub.DescriptionIn(loc),
			SortOrder:   sub.SortOrder,
		})
	}
	sort.SliceStable(subcategories, func(i, j int) bool {
		return subcategories[i].SortOrder < subcategories[j].SortOrder
	})

	return dto.CategoryResponse{
		Id:            c.Id,
		Slug:          c.Slug,
		Icon:          c.Icon,
		Name:          c.NameIn(loc),
		Description:   c.DescriptionIn(loc),
		SortOrder:     c.SortOrder,
		Subcategories: subcategories,
	}
}
