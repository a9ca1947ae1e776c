package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	mailadapter "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/adapter"
	mailport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/port"
	profileport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/profile/port"
)

type stubProfiles struct {
	profiles map[string]*profileport.Profile
}

func (s *stubProfiles) GetProfile(_ context.Context, userID string) (*profileport.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, errors.New("profile service unavailable")
	}
	return p, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoUsers() *stubProfiles {
	return &stubProfiles{profiles: map[string]*profileport.Profile{
		"owner-1":   {Name: "Mario", Surname: "Rossi", Email: "mario@example.com"},
		"adopter-1": {Name: "Anna", Surname: "Bianchi", Email: "anna@example.com"},
	}}
}

func TestNotifyChat_NewMessage(t *testing.T) {
	mailer := mailadapter.NewLogMailer(discardLogger())
	uc := NewNotifyUseCase(twoUsers(), mailer, discardLogger())

	err := uc.NotifyChat(context.Background(), event.EmailMessage{
		ReceiverID: "owner-1", SenderID: "adopter-1",
		Message: "Is Fido still available?", Type: event.TypeNewMessage,
	})
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "mario@example.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, "Anna Bianchi")
	assert.Contains(t, sent[0].Body, "Is Fido still available?")
}

func TestNotifyChat_RequestLifecycleMails(t *testing.T) {
	tests := []struct {
		name        string
		msg         event.EmailMessage
		wantTo      string
		wantSubject string
	}{
		{
			"request sent",
			event.EmailMessage{ReceiverID: "owner-1", SenderID: "adopter-1",
				Message: event.RequestActionSend, Type: event.TypeAdoptionRequest},
			"mario@example.com", "New adoption request",
		},
		{
			"request cancelled",
			event.EmailMessage{ReceiverID: "owner-1", SenderID: "adopter-1",
				Message: event.RequestActionCancel, Type: event.TypeAdoptionRequest},
			"mario@example.com", "withdrew",
		},
		{
			"request accepted",
			event.EmailMessage{ReceiverID: "adopter-1", SenderID: "owner-1",
				Message: event.RequestActionAccept, Type: event.TypeAdoptionAccept},
			"anna@example.com", "accepted",
		},
		{
			"request rejected",
			event.EmailMessage{ReceiverID: "adopter-1", SenderID: "owner-1",
				Message: event.RequestActionReject, Type: event.TypeAdoptionAccept},
			"anna@example.com", "declined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := mailadapter.NewLogMailer(discardLogger())
			uc := NewNotifyUseCase(twoUsers(), mailer, discardLogger())

			require.NoError(t, uc.NotifyChat(context.Background(), tt.msg))

			sent := mailer.Sent()
			require.Len(t, sent, 1)
			assert.Equal(t, tt.wantTo, sent[0].To)
			assert.Contains(t, sent[0].Subject, tt.wantSubject)
		})
	}
}

func TestNotifyChat_UnknownReceiverIsSkipped(t *testing.T) {
	mailer := mailadapter.NewLogMailer(discardLogger())
	uc := NewNotifyUseCase(twoUsers(), mailer, discardLogger())

	// lookup fails, the fallback identity has no address: nothing is sent
	err := uc.NotifyChat(context.Background(), event.EmailMessage{
		ReceiverID: "ghost", SenderID: "adopter-1",
		Message: "hello", Type: event.TypeNewMessage,
	})
	require.NoError(t, err)
	assert.Empty(t, mailer.Sent())
}

func TestNotifyChat_UnknownSenderStillDelivers(t *testing.T) {
	mailer := mailadapter.NewLogMailer(discardLogger())
	uc := NewNotifyUseCase(twoUsers(), mailer, discardLogger())

	err := uc.NotifyChat(context.Background(), event.EmailMessage{
		ReceiverID: "owner-1", SenderID: "ghost",
		Message: "hello", Type: event.TypeNewMessage,
	})
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Subject, "adottaTO user")
}

func TestNotifyMatch(t *testing.T) {
	mailer := mailadapter.NewLogMailer(discardLogger())
	uc := NewNotifyUseCase(twoUsers(), mailer, discardLogger())

	err := uc.NotifyMatch(context.Background(), event.SearchMatch{
		AdoptionPostSummary: event.AdoptionPostSummary{
			ID: "post-1", Name: "Fido", Species: "Cane", Breed: "Labrador",
			Age: 18, Location: "Torino",
		},
		UserID: "adopter-1",
	})
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "anna@example.com", sent[0].To)
	assert.Contains(t, sent[0].Subject, "Fido")
	assert.Contains(t, sent[0].Body, "Torino")
}

type failingMailer struct{}

func (failingMailer) Send(context.Context, mailport.Email) error {
	return errors.New("relay refused connection")
}

func TestNotifyChat_MailerFailureSurfaces(t *testing.T) {
	uc := NewNotifyUseCase(twoUsers(), failingMailer{}, discardLogger())

	err := uc.NotifyChat(context.Background(), event.EmailMessage{
		ReceiverID: "owner-1", SenderID: "adopter-1",
		Message: "hello", Type: event.TypeNewMessage,
	})
	assert.Error(t, err)
}
