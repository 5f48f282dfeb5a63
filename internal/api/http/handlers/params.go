package handlers

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/hr-service/internal/api/dto"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

// pathID returns the :id route parameter once it parses as a UUID.
func pathID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NewValidationError("invalid id", map[string]any{"id": raw})
	}
	return id.String(), nil
}

// pageFromQuery reads page (1-based) and page_size.
func pageFromQuery(c *fiber.Ctx) (repository.Page, dto.ListMeta, error) {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("page_size", repository.DefaultPageSize)
	if page < 1 || size < 1 {
		return repository.Page{}, dto.ListMeta{}, apperrors.NewValidationError("invalid pagination",
			map[string]any{"page": page, "page_size": size})
	}
	if size > repository.MaxPageSize {
		size = repository.MaxPageSize
	}
	if page-1 > math.MaxInt32/size {
		return repository.Page{}, dto.ListMeta{}, apperrors.NewValidationError("invalid pagination",
			map[string]any{"page": "out of range"})
	}
	return repository.Page{Limit: size, Offset: (page - 1) * size}, dto.ListMeta{Page: page, PageSize: size}, nil
}

func queryUUID(c *fiber.Ctx, key string) (*string, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid filter", map[string]any{key: "must be a valid UUID"})
	}
	value := id.String()
	return &value, nil
}

func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid filter", map[string]any{key: "must be an integer"})
	}
	return &value, nil
}

func queryBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid filter", map[string]any{key: "must be true or false"})
	}
	return &value, nil
}

func queryDate(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid filter", map[string]any{key: "must be a date formatted as " + domain.DateLayout})
	}
	return &value, nil
}

func parseDate(field, raw string) (time.Time, error) {
	value, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("validation failed",
			map[string]any{field: "must be a date formatted as " + domain.DateLayout})
	}
	return value, nil
}

func parseTimeOfDay(field string, raw *string) (*domain.TimeOfDay, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	value, err := domain.ParseTimeOfDay(*raw)
	if err != nil {
		return nil, apperrors.NewValidationError("validation failed",
			map[string]any{field: "must be a time formatted as HH:MM[:SS]"})
	}
	return &value, nil
}

func respondList[T any](c *fiber.Ctx, items []T, meta dto.ListMeta) error {
	if items == nil {
		items = []T{}
	}
	meta.Count = len(items)
	return c.JSON(fiber.Map{"data": items, "meta": meta})
}

func mapSlice[S, T any](in []S, convert func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, item := range in {
		out = append(out, convert(item))
	}
	return out
}
