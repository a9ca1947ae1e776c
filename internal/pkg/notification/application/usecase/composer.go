package usecase

import (
	"fmt"

	"github.com/StefanoAtzeni2001/adottaTO/internal/pkg/event"
	mailport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/mailer/port"
	profileport "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/notification/profile/port"
)

// composeChatEmail builds the mail for a chat notification. The body depends
// on the notification type and, for request updates, on the action carried in
// the message field.
func composeChatEmail(receiver, sender *profileport.Profile, msg event.EmailMessage) mailport.Email {
	mail := mailport.Email{To: receiver.Email}

	switch msg.Type {
	case event.TypeNewMessage:
		mail.Subject = fmt.Sprintf("New message from %s", sender.DisplayName())
		mail.Body = fmt.Sprintf("Hi %s,\n\n%s sent you a message:\n\n%s\n\nOpen adottaTO to reply.",
			receiver.DisplayName(), sender.DisplayName(), msg.Message)

	case event.TypeAdoptionRequest:
		switch msg.Message {
		case event.RequestActionCancel:
			mail.Subject = fmt.Sprintf("%s withdrew an adoption request", sender.DisplayName())
			mail.Body = fmt.Sprintf("Hi %s,\n\n%s has withdrawn the adoption request for your listing.",
				receiver.DisplayName(), sender.DisplayName())
		default:
			mail.Subject = fmt.Sprintf("New adoption request from %s", sender.DisplayName())
			mail.Body = fmt.Sprintf("Hi %s,\n\n%s would like to adopt your pet. Open adottaTO to accept or reject the request.",
				receiver.DisplayName(), sender.DisplayName())
		}

	case event.TypeAdoptionAccept:
		switch msg.Message {
		case event.RequestActionReject:
			mail.Subject = "Your adoption request was declined"
			mail.Body = fmt.Sprintf("Hi %s,\n\n%s has declined your adoption request. You can keep browsing other listings on adottaTO.",
				receiver.DisplayName(), sender.DisplayName())
		default:
			mail.Subject = "Your adoption request was accepted!"
			mail.Body = fmt.Sprintf("Hi %s,\n\nGreat news: %s has accepted your adoption request. Get in touch to arrange the handover.",
				receiver.DisplayName(), sender.DisplayName())
		}

	default:
		mail.Subject = "adottaTO notification"
		mail.Body = fmt.Sprintf("Hi %s,\n\nYou have a new notification on adottaTO.", receiver.DisplayName())
	}

	return mail
}

// composeMatchEmail builds the mail sent when a new listing matches one of
// the user's saved searches.
func composeMatchEmail(receiver *profileport.Profile, match event.SearchMatch) mailport.Email {
	post := match.AdoptionPostSummary
	return mailport.Email{
		To:      receiver.Email,
		Subject: fmt.Sprintf("New listing matches your saved search: %s", post.Name),
		Body: fmt.Sprintf("Hi %s,\n\nA new adoption listing matches one of your saved searches.\n\nName: %s\nSpecies: %s\nBreed: %s\nAge: %d months\nLocation: %s\n\nOpen adottaTO to see the full listing.",
			receiver.DisplayName(), post.Name, post.Species, post.Breed, post.Age, post.Location),
	}
}
