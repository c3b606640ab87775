package handler

import (
	"log/slog"
	"net/http"

	"skillswap/internal/delivery/api/middleware"
	"skillswap/internal/delivery/api/response"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MeetupHandlerParams holds dependencies for MeetupHandler, injected by Fx.
type MeetupHandlerParams struct {
	fx.In

	MeetupUC usecase.MeetupUsecase
	Logger   *slog.Logger
}

// MeetupHandler holds dependencies for meetup handlers
type MeetupHandler struct {
	meetupUC usecase.MeetupUsecase
	logger   *slog.Logger
}

// NewMeetupHandler is the constructor for MeetupHandler
func NewMeetupHandler(params MeetupHandlerParams) *MeetupHandler {
	return &MeetupHandler{
		meetupUC: params.MeetupUC,
		logger:   params.Logger,
	}
}

// Suggestions returns spots between the caller and partner_id
func (h *MeetupHandler) Suggestions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	partnerID, err := parseUUID(c.QueryParam("partner_id"), "partner_id")
	if err != nil {
		return err
	}

	suggestions, err := h.meetupUC.SuggestMeetupSpots(c.Request().Context(), userID, partnerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, suggestions)
}

// Propose creates a pending meetup request
func (h *MeetupHandler) Propose(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.ProposeMeetupInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}
	if err := validateLocation(input.Location, "location"); err != nil {
		return err
	}

	request, err := h.meetupUC.ProposeMeetup(c.Request().Context(), userID, &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, request)
}
