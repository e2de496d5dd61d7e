package service

import (
	"context"

	"literinth-be/internal/dto"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/pkg/serverutils"
	"literinth-be/internal/repository/specification"
	"literinth-be/internal/repository/unitofwork"
)

type ITagService interface {
	List(ctx context.Context, loc locale.Locale) (*dto.TagsResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{uowFactory: uowFactory}
}

func (s *tagService) List(ctx context.Context, loc locale.Locale) (*dto.TagsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags, err := uow.TagRepository().FindAll(ctx,
		specification.Preload{Association: "Translations"},
		specification.OrderBy{Field: "slug"},
	)
	if err != nil {
		return nil, serverutils.NewInternal(err)
	}

	res := &dto.TagsResponse{Tags: make([]dto.TagResponse, len(tags))}
	for i, tag := range tags {
		res.Tags[i] = dto.TagResponse{Id: tag.Id, Slug: tag.Slug, Name: tag.NameIn(loc)}
	}
	return res, nil
}
