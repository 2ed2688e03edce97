package backend

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
)

// CreateReview отправляет отзыв о завершённом занятии. Дубликат
// распознаётся выше через IsDuplicateReview.
func (c *Client) CreateReview(ctx context.Context, req model.ReviewRequest) (*model.Review, error) {
	var review model.Review
	if err := c.post(ctx, "/reviews", req, &review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}
