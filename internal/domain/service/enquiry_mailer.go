package service

import (
	"context"
)

type EnquiryMail struct {
	OwnerEmail  string
	SenderEmail string
	SenderName  string
	PropertyID  string
}

type EnquiryMailer interface {
	SendEnquiry(ctx context.Context, mail EnquiryMail) error
}
