//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/cermartin/sr/internal/pkg/async"
	"github.com/cermartin/sr/internal/pkg/clock"
	"github.com/cermartin/sr/internal/pkg/config"
	"github.com/cermartin/sr/internal/usecase/commands"
	"github.com/cermartin/sr/internal/usecase/shared"
	"github.com/cermartin/sr/tests/common/builder"
	sharedmock "github.com/cermartin/sr/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockCalendar *sharedmock.MockCalendarGateway
	mockEmail    *sharedmock.MockEmailGateway
	clock        *clock.MockClock
	cmds         commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCalendar = sharedmock.NewMockCalendarGateway(s.mockCtrl)
	s.mockEmail = sharedmock.NewMockEmailGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewBookingCommands(
		s.mockCalendar,
		s.mockEmail,
		async.NewSyncDispatcher(),
		s.clock,
		config.NewTestConfig(),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestSubmit() {
	s.Run("success: books a free slot and sends confirmation", func() {
		req := builder.NewBookingBuilder().BuildDomain()

		s.mockCalendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)
		s.mockCalendar.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input shared.InsertEventInput) (string, error) {
				s.Contains(input.Summary, req.Name)
				s.Contains(input.Summary, "2 guests")
				s.Equal(90*time.Minute, input.End.Sub(input.Start))
				return "event-123", nil
			}).Times(1)
		s.mockEmail.EXPECT().Send(gomock.Any(), "template_booking", gomock.Any()).
			Return(nil).Times(1)

		result, err := s.cmds.Submit(context.Background(), req)
		s.NoError(err)
		s.Equal("event-123", result.EventID)
		s.Len(result.BookingRef, 8)
	})

	s.Run("error: occupied slot returns conflict without inserting", func() {
		req := builder.NewBookingBuilder().BuildDomain()

		s.mockCalendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.CalendarEvent{{ID: "other"}}, nil).Times(1)

		result, err := s.cmds.Submit(context.Background(), req)
		s.ErrorIs(err, commands.ErrSlotConflict)
		s.Nil(result)
	})

	s.Run("error: malformed date rejected before any calendar call", func() {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Date = "15/06/2030"
		}).BuildDomain()

		result, err := s.cmds.Submit(context.Background(), req)
		s.ErrorIs(err, commands.ErrInvalidSlot)
		s.Nil(result)
	})

	s.Run("error: time outside the sitting grid rejected", func() {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Time = "13:00"
		}).BuildDomain()

		result, err := s.cmds.Submit(context.Background(), req)
		s.ErrorIs(err, commands.ErrInvalidSlot)
		s.Nil(result)
	})

	s.Run("error: past slot rejected", func() {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Date = "2030-05-01"
		}).BuildDomain()

		result, err := s.cmds.Submit(context.Background(), req)
		s.ErrorIs(err, commands.ErrInvalidSlot)
		s.Nil(result)
	})

	s.Run("error: zero guests rejected", func() {
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guests = 0
		}).BuildDomain()

		result, err := s.cmds.Submit(context.Background(), req)
		s.ErrorIs(err, commands.ErrBookingRejected)
		s.Nil(result)
	})

	s.Run("error: calendar read failure surfaces as calendar failure", func() {
		req := builder.NewBookingBuilder().BuildDomain()

		s.mockCalendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, context.DeadlineExceeded).Times(1)

		result, err := s.cmds.Submit(context.Background(), req)
		s.ErrorIs(err, commands.ErrCalendarFailure)
		s.Nil(result)
	})

	s.Run("success: failed confirmation email does not fail the booking", func() {
		req := builder.NewBookingBuilder().BuildDomain()

		s.mockCalendar.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)
		s.mockCalendar.EXPECT().InsertEvent(gomock.Any(), gomock.Any()).
			Return("event-456", nil).Times(1)
		s.mockEmail.EXPECT().Send(gomock.Any(), "template_booking", gomock.Any()).
			Return(context.DeadlineExceeded).Times(1)

		result, err := s.cmds.Submit(context.Background(), req)
		s.NoError(err)
		s.Equal("event-456", result.EventID)
	})
}
