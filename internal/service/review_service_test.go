package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/skillbridge_gateway/internal/backend"
	"github.com/Freeeeeet/skillbridge_gateway/internal/model"
	"github.com/Freeeeeet/skillbridge_gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewBackend struct {
	bookings      []map[string]interface{}
	reviewStatus  int
	reviewMessage string
	reviewCalls   int
	bookingLoads  int
}

func (f *reviewBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /bookings/student/s1", func(w http.ResponseWriter, r *http.Request) {
		f.bookingLoads++
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": f.bookings})
	})
	mux.HandleFunc("POST /reviews", func(w http.ResponseWriter, r *http.Request) {
		f.reviewCalls++
		if f.reviewStatus >= 400 {
			w.WriteHeader(f.reviewStatus)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": f.reviewMessage})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "r1", "bookingId": "b1", "rating": 5},
		})
	})
	return mux
}

func newReviewService(t *testing.T, fb *reviewBackend) *service.ReviewService {
	t.Helper()
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)
	return service.NewReviewService(backend.NewClient(srv.URL, zap.NewNop()), zap.NewNop())
}

func completedBooking(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":        id,
		"startTime": time.Now().Add(-72 * time.Hour).Format(time.RFC3339),
		"status":    "COMPLETED",
	}
}

func TestReviewSubmit_Success(t *testing.T) {
	fb := &reviewBackend{bookings: []map[string]interface{}{completedBooking("b1")}}
	svc := newReviewService(t, fb)

	review, _, err := svc.Submit(context.Background(), "s1", model.ReviewRequest{BookingID: "b1", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "r1", review.ID)
	assert.Equal(t, 1, fb.reviewCalls)
}

func TestReviewSubmit_LocalValidationBeforeNetwork(t *testing.T) {
	notCompleted := completedBooking("b2")
	notCompleted["status"] = "CONFIRMED"

	reviewed := completedBooking("b3")
	reviewed["review"] = map[string]interface{}{"id": "r0", "rating": 4}

	fb := &reviewBackend{bookings: []map[string]interface{}{
		completedBooking("b1"), notCompleted, reviewed,
	}}
	svc := newReviewService(t, fb)

	cases := []struct {
		name string
		req  model.ReviewRequest
		want error
	}{
		{"unknown booking", model.ReviewRequest{BookingID: "nope", Rating: 5}, service.ErrBookingNotFound},
		{"not completed", model.ReviewRequest{BookingID: "b2", Rating: 5}, service.ErrBookingNotCompleted},
		{"already reviewed locally", model.ReviewRequest{BookingID: "b3", Rating: 5}, service.ErrAlreadyReviewed},
		{"rating too low", model.ReviewRequest{BookingID: "b1", Rating: 0}, service.ErrBadRating},
		{"rating too high", model.ReviewRequest{BookingID: "b1", Rating: 6}, service.ErrBadRating},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Submit(context.Background(), "s1", tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// Ни одна локальная ошибка не дошла до POST /reviews
	assert.Equal(t, 0, fb.reviewCalls)
}

func TestReviewSubmit_RatingCheckedBeforeLookup(t *testing.T) {
	fb := &reviewBackend{}
	svc := newReviewService(t, fb)

	// Кривой рейтинг с неизвестным бронированием: форма важнее поиска,
	// сеть вообще не трогается
	_, _, err := svc.Submit(context.Background(), "s1", model.ReviewRequest{BookingID: "nope", Rating: 0})
	require.ErrorIs(t, err, service.ErrBadRating)
	assert.Equal(t, 0, fb.bookingLoads)
	assert.Equal(t, 0, fb.reviewCalls)
}

func TestReviewSubmit_DuplicateRemapAndReload(t *testing.T) {
	fb := &reviewBackend{
		bookings:      []map[string]interface{}{completedBooking("b1")},
		reviewStatus:  http.StatusConflict,
		reviewMessage: "A review already exists for this booking",
	}
	svc := newReviewService(t, fb)

	_, refreshed, err := svc.Submit(context.Background(), "s1", model.ReviewRequest{BookingID: "b1", Rating: 5})
	require.ErrorIs(t, err, service.ErrAlreadyReviewed)

	// Ремап в фиксированный текст, не дословный ответ сервера
	assert.Equal(t, "You have already reviewed this booking", err.Error())

	// Состояние перечитано для сверки с сервером
	assert.Equal(t, 2, fb.bookingLoads)
	assert.Len(t, refreshed, 1)
}

func TestReviewSubmit_OtherRemoteErrorVerbatim(t *testing.T) {
	fb := &reviewBackend{
		bookings:      []map[string]interface{}{completedBooking("b1")},
		reviewStatus:  http.StatusInternalServerError,
		reviewMessage: "database exploded",
	}
	svc := newReviewService(t, fb)

	_, _, err := svc.Submit(context.Background(), "s1", model.ReviewRequest{BookingID: "b1", Rating: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database exploded")
	assert.Equal(t, 1, fb.bookingLoads)
}
