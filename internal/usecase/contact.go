package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
)

const maxMessageLength = 4000

// ContactInput is a message left through the site contact form.
type ContactInput struct {
	Name    string
	Phone   string
	Email   string
	Message string
}

// ContactUseCase forwards contact requests to the studio.
type ContactUseCase struct {
	notifier Notifier
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(notifier Notifier) *ContactUseCase {
	return &ContactUseCase{notifier: notifier}
}

// Submit validates the request and queues a notification.
func (u *ContactUseCase) Submit(ctx context.Context, in ContactInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	fields := make(map[string]string)
	if in.Name == "" {
		fields["name"] = "is required"
	}
	switch {
	case in.Phone == "" && in.Email == "":
		fields["contact"] = "phone or email is required"
	case in.Phone != "" && !ValidatePhone(in.Phone):
		fields["phone"] = "must be a valid phone number"
	case in.Email != "" && !ValidateEmail(in.Email):
		fields["email"] = "must be a valid email address"
	}
	if in.Message == "" {
		fields["message"] = "is required"
	} else if len([]rune(in.Message)) > maxMessageLength {
		fields["message"] = "is too long"
	}
	if err := domainErrors.NewValidationError(fields); err != nil {
		return err
	}

	return u.notifier.Notify(ctx, model.Notification{
		Kind:       model.NotificationContactRequest,
		ClientName: in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Message:    in.Message,
	})
}
