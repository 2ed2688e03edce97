package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

// FetchTutors возвращает каталог репетиторов с фильтрами
func (c *Client) FetchTutors(ctx context.Context, filters model.TutorFilters) ([]model.TutorProfile, error) {
	params := url.Values{}
	if filters.CategoryID != "" {
		params.Set("categoryId", filters.CategoryID)
	}
	if filters.SubjectID != "" {
		params.Set("subjectId", filters.SubjectID)
	}
	if filters.MinRating > 0 {
		params.Set("minRating", strconv.FormatFloat(filters.MinRating, 'f', -1, 64))
	}
	if filters.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(filters.MaxPrice, 'f', -1, 64))
	}
	if filters.SortBy != "" {
		params.Set("sortBy", filters.SortBy)
	}

	path := "/tutors"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var tutors []model.TutorProfile
	if err := c.get(ctx, path, &tutors); err != nil {
		return nil, fmt.Errorf("fetch tutors: %w", err)
	}
	return tutors, nil
}

// FetchTutorByID возвращает профиль репетитора по ID
func (c *Client) FetchTutorByID(ctx context.Context, id string) (*model.TutorProfile, error) {
	var tutor model.TutorProfile
	if err := c.get(ctx, "/tutors/"+url.PathEscape(id), &tutor); err != nil {
		return nil, fmt.Errorf("fetch tutor %s: %w", id, err)
	}
	return &tutor, nil
}

// FetchTutorByUserID возвращает профиль репетитора текущего пользователя.
// Отсутствие профиля - не сбой, а сигнал "сначала создайте профиль".
func (c *Client) FetchTutorByUserID(ctx context.Context, userID string) (*model.TutorProfile, error) {
	var tutor model.TutorProfile
	if err := c.get(ctx, "/tutors/user/"+url.PathEscape(userID), &tutor); err != nil {
		return nil, fmt.Errorf("fetch tutor profile for user %s: %w", userID, err)
	}
	return &tutor, nil
}

// UpdateTutorProfile отправляет обновление профиля. Поле availability -
// это всегда полная замена значения, не частичный патч.
func (c *Client) UpdateTutorProfile(ctx context.Context, update model.TutorProfileUpdate) (*model.TutorProfile, error) {
	var tutor model.TutorProfile
	if err := c.patch(ctx, "/tutors/user/"+url.PathEscape(update.UserID), update, &tutor); err != nil {
		return nil, fmt.Errorf("update tutor profile: %w", err)
	}
	return &tutor, nil
}

// FetchCategories возвращает таксономию категорий с предметами
func (c *Client) FetchCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return categories, nil
}
