package sms

import "context"

// Provider delivers one-time verification codes. The core treats delivery
// as an opaque external service; failures surface to the caller unretried.
type Provider interface {
	SendVerificationCode(ctx context.Context, phone, code string) error
}
