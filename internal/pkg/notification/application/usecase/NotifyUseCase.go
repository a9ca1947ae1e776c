package usecase

import (
	"context"
	"log/slog"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	mailport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/port"
	profileport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/profile/port"
)

// One class per use case (own file)

// NotifyUseCase turns chat and saved-search events into outgoing emails.
// Delivery is best effort: a failed profile lookup degrades to a fallback
// identity, and a receiver with no known email address is skipped.
type NotifyUseCase struct {
	profiles profileport.Client
	mailer   mailport.Mailer
	log      *slog.Logger
}

func NewNotifyUseCase(profiles profileport.Client, mailer mailport.Mailer, log *slog.Logger) *NotifyUseCase {
	return &NotifyUseCase{profiles: profiles, mailer: mailer, log: log}
}

// NotifyChat sends the email for a chat notification event.
func (uc *NotifyUseCase) NotifyChat(ctx context.Context, msg event.EmailMessage) error {
	receiver := uc.lookup(ctx, msg.ReceiverID)
	sender := uc.lookup(ctx, msg.SenderID)

	if receiver.Email == "" {
		uc.log.Warn("no email address for receiver, notification skipped",
			"receiverId", msg.ReceiverID, "type", msg.Type)
		return nil
	}

	mail := composeChatEmail(receiver, sender, msg)
	if err := uc.mailer.Send(ctx, mail); err != nil {
		return err
	}
	uc.log.Info("notification sent", "to", msg.ReceiverID, "type", msg.Type)
	return nil
}

// NotifyMatch sends the email for a saved-search match event.
func (uc *NotifyUseCase) NotifyMatch(ctx context.Context, match event.SearchMatch) error {
	receiver := uc.lookup(ctx, match.UserID)
	if receiver.Email == "" {
		uc.log.Warn("no email address for receiver, notification skipped",
			"receiverId", match.UserID, "postId", match.ID)
		return nil
	}

	mail := composeMatchEmail(receiver, match)
	if err := uc.mailer.Send(ctx, mail); err != nil {
		return err
	}
	uc.log.Info("match notification sent", "to", match.UserID, "postId", match.ID)
	return nil
}

func (uc *NotifyUseCase) lookup(ctx context.Context, userID string) *profileport.Profile {
	p, err := uc.profiles.GetProfile(ctx, userID)
	if err != nil {
		uc.log.Warn("profile lookup failed, using fallback", "userId", userID, "error", err)
		return profileport.Fallback()
	}
	return p
}
