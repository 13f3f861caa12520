package slackops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyApprovalRequested is no-op", func(t *testing.T) {
		result := s.NotifyApprovalRequested(context.Background(), ApprovalRequestedInput{
			ApprovalID:  "appr-1",
			Fingerprint: "test fingerprint",
		})
		assert.Empty(t, result)
	})

	t.Run("NotifyApprovalResolved is no-op", func(_ *testing.T) {
		s.NotifyApprovalResolved(context.Background(), ApprovalResolvedInput{
			ApprovalID: "appr-1",
			Status:     "approved",
		})
	})

	t.Run("NotifyEscalation is no-op", func(_ *testing.T) {
		s.NotifyEscalation(context.Background(), EscalationInput{
			ApprovalID: "appr-1",
			TaskID:     "task-1",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

func TestService_NotifyApprovalRequested_NoFingerprint(t *testing.T) {
	svc := NewService(ServiceConfig{
		Token:        "xoxb-test",
		Channel:      "C123",
		DashboardURL: "https://example.com",
	})

	result := svc.NotifyApprovalRequested(context.Background(), ApprovalRequestedInput{
		ApprovalID:  "appr-1",
		Fingerprint: "",
	})
	assert.Empty(t, result, "should skip thread lookup when no fingerprint")
}
