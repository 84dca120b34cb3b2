package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

func TestNotifier_SendEmail(t *testing.T) {
	var captured *ses.SendEmailInput
	mockSES := &MockSESService{
		SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			captured = params
			return &ses.SendEmailOutput{MessageId: aws.String("ses-123")}, nil
		},
	}

	n := NewNotifierWithClients(mockSES, nil, "noreply@example.com")
	id, err := n.SendEmail(context.Background(), "sam@example.com", "Time to retake", "body")
	require.NoError(t, err)

	assert.Equal(t, "ses-123", id)
	assert.Equal(t, []string{"sam@example.com"}, captured.Destination.ToAddresses)
	assert.Equal(t, "noreply@example.com", aws.ToString(captured.Source))
	assert.Equal(t, "Time to retake", aws.ToString(captured.Message.Subject.Data))
}

func TestNotifier_Errors(t *testing.T) {
	n := NewNotifierWithClients(
		&MockSESService{SendEmailFunc: func(context.Context, *ses.SendEmailInput, ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, assert.AnError
		}},
		&MockSNSService{PublishFunc: func(context.Context, *sns.PublishInput, ...func(*sns.Options)) (*sns.PublishOutput, error) {
			return nil, assert.AnError
		}},
		"noreply@example.com",
	)

	_, err := n.SendEmail(context.Background(), "sam@example.com", "s", "b")
	assert.ErrorIs(t, err, assert.AnError)

	_, err = n.SendSMS(context.Background(), "+15550102030", "b")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestNotifier_SendSMS(t *testing.T) {
	mockSNS := &MockSNSService{
		PublishFunc: func(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
			assert.Equal(t, "+15550102030", aws.ToString(params.PhoneNumber))
			return &sns.PublishOutput{MessageId: aws.String("sns-9")}, nil
		},
	}

	id, err := NewNotifierWithClients(nil, mockSNS, "").SendSMS(context.Background(), "+15550102030", "hello")
	require.NoError(t, err)
	assert.Equal(t, "sns-9", id)
}
