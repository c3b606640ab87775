package handler

import (
	"net/http"
	"testing"
	"time"

	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	mockUsecase "skillswap/internal/mocks/usecase"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMeetupTestEcho(t *testing.T, userID uuid.UUID) (*echo.Echo, *mockUsecase.MockMeetupUsecase) {
	meetupUC := mockUsecase.NewMockMeetupUsecase(t)
	h := NewMeetupHandler(MeetupHandlerParams{MeetupUC: meetupUC, Logger: discardLogger})

	e, authenticate := newTestEcho(t, userID)
	g := e.Group("/api/v1/meetups", authenticate)
	g.GET("/suggestions", h.Suggestions)
	g.POST("", h.Propose)

	return e, meetupUC
}

func TestMeetupHandler_Suggestions(t *testing.T) {
	userID, partnerID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		e, meetupUC := newMeetupTestEcho(t, userID)
		meetupUC.EXPECT().SuggestMeetupSpots(mock.Anything, userID, partnerID).Return(&usecase.MeetupSuggestions{
			Midpoint:    entity.Coordinate{Latitude: 19.1, Longitude: 72.9},
			DistanceKm:  30.5,
			Suggestions: []*entity.Location{{Name: "Coffee spot"}},
		}, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/meetups/suggestions?partner_id="+partnerID.String(), "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		var got usecase.MeetupSuggestions
		decodeData(t, rec, &got)
		assert.InDelta(t, 30.5, got.DistanceKm, 1e-9)
		assert.Len(t, got.Suggestions, 1)
	})

	t.Run("partner private", func(t *testing.T) {
		e, meetupUC := newMeetupTestEcho(t, userID)
		meetupUC.EXPECT().SuggestMeetupSpots(mock.Anything, userID, partnerID).Return(nil, domainerrors.ErrPartnerLocationPrivate)

		rec := doRequest(e, http.MethodGet, "/api/v1/meetups/suggestions?partner_id="+partnerID.String(), "", true)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "PARTNER_LOCATION_PRIVATE", errorCode(t, rec))
	})

	t.Run("missing partner", func(t *testing.T) {
		e, _ := newMeetupTestEcho(t, userID)

		rec := doRequest(e, http.MethodGet, "/api/v1/meetups/suggestions", "", true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}

func TestMeetupHandler_Propose(t *testing.T) {
	userID, partnerID := uuid.New(), uuid.New()
	proposedAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	validBody := `{"partner_id":"` + partnerID.String() + `","proposed_at":"` + proposedAt.Format(time.RFC3339) +
		`","message":"Chess for Python?","location":{"name":"Cafe","city":"Pune"}}`

	t.Run("created", func(t *testing.T) {
		e, meetupUC := newMeetupTestEcho(t, userID)
		meetupUC.EXPECT().ProposeMeetup(mock.Anything, userID, mock.MatchedBy(func(in *usecase.ProposeMeetupInput) bool {
			return in.PartnerID == partnerID && in.ProposedAt.Equal(proposedAt) && in.Location.Name == "Cafe"
		})).Return(&entity.MeetupRequest{
			ID:          uuid.New(),
			RequesterID: userID,
			PartnerID:   partnerID,
			Status:      entity.MeetupStatusPending,
		}, nil)

		rec := doRequest(e, http.MethodPost, "/api/v1/meetups", validBody, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got entity.MeetupRequest
		decodeData(t, rec, &got)
		assert.Equal(t, entity.MeetupStatusPending, got.Status)
	})

	t.Run("self meetup", func(t *testing.T) {
		e, meetupUC := newMeetupTestEcho(t, userID)
		meetupUC.EXPECT().ProposeMeetup(mock.Anything, userID, mock.Anything).Return(nil, domainerrors.ErrSelfMeetup)

		rec := doRequest(e, http.MethodPost, "/api/v1/meetups", validBody, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "SELF_MEETUP", errorCode(t, rec))
	})

	t.Run("missing location", func(t *testing.T) {
		e, _ := newMeetupTestEcho(t, userID)

		body := `{"partner_id":"` + partnerID.String() + `","proposed_at":"` + proposedAt.Format(time.RFC3339) + `"}`
		rec := doRequest(e, http.MethodPost, "/api/v1/meetups", body, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})
}
