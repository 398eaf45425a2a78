package usecase

import (
	"context"

	"rentify/internal/domain/repository"
	"rentify/internal/domain/service"
	"rentify/pkg/errors"
	"rentify/pkg/logger"
)

type EnquiryUseCase struct {
	userRepo repository.UserRepository
	mailer   service.EnquiryMailer
}

func NewEnquiryUseCase(userRepo repository.UserRepository, mailer service.EnquiryMailer) *EnquiryUseCase {
	return &EnquiryUseCase{
		userRepo: userRepo,
		mailer:   mailer,
	}
}

type EnquiryInput struct {
	OwnerEmail  string
	SenderEmail string
	SenderID    string
	PropertyID  string
}

func (uc *EnquiryUseCase) Submit(ctx context.Context, input EnquiryInput) error {
	owner, err := uc.userRepo.GetByEmail(ctx, input.OwnerEmail)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return errors.NotFound("Owner", err)
		}
		return err
	}

	sender, err := uc.userRepo.GetByID(ctx, input.SenderID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return errors.NotFound("Sender", err)
		}
		return err
	}

	if err := uc.userRepo.AddEnquiry(ctx, sender.ID, input.PropertyID); err != nil {
		return err
	}

	if err := uc.mailer.SendEnquiry(ctx, service.EnquiryMail{
		OwnerEmail:  owner.Email,
		SenderEmail: input.SenderEmail,
		SenderName:  sender.Name,
		PropertyID:  input.PropertyID,
	}); err != nil {
		return errors.Internal("Failed to send enquiry", err)
	}

	logger.Info("Enquiry for property %s sent to %s", input.PropertyID, owner.Email)
	return nil
}
