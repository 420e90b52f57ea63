package sms

import (
	"context"
	"fmt"

	"cofoundermatch_backend/internal/logger"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioProvider sends verification SMS through the Twilio Messages API.
type TwilioProvider struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioProvider(accountSID, authToken, fromNumber string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioProvider{
		client:     client,
		fromNumber: fromNumber,
	}
}

func (p *TwilioProvider) SendVerificationCode(ctx context.Context, phone, code string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(p.fromNumber)
	params.SetBody(fmt.Sprintf("Your verification code is: %s", code))

	_, err := p.client.Api.CreateMessage(params)
	if err != nil {
		logger.CtxWithError(ctx, "twilio send failed", err, "to", phone)
		return err
	}
	return nil
}
