package app

import (
	"context"

	"cofoundermatch_backend/internal/logger"
)

// MockSMSProvider logs codes instead of sending them. Used in development
// and in tests where real delivery is pointless.
type MockSMSProvider struct{}

func NewMockSMSProvider() *MockSMSProvider {
	return &MockSMSProvider{}
}

func (p *MockSMSProvider) SendVerificationCode(ctx context.Context, phone, code string) error {
	logger.CtxInfo(ctx, "mock SMS verification code", "to", phone, "code", code)
	return nil
}
