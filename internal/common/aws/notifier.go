// Package aws sends reminder email through SES and text messages through SNS.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SESService is the part of the SES client the notifier uses.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSService is the part of the SNS client the notifier uses.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Notifier struct {
	ses       SESService
	sns       SNSService
	fromEmail string
}

// NewNotifier loads the default AWS credential chain for region.
func NewNotifier(ctx context.Context, region, fromEmail string) (*Notifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewNotifierWithClients(ses.NewFromConfig(cfg), sns.NewFromConfig(cfg), fromEmail), nil
}

func NewNotifierWithClients(sesClient SESService, snsClient SNSService, fromEmail string) *Notifier {
	return &Notifier{ses: sesClient, sns: snsClient, fromEmail: fromEmail}
}

// SendEmail returns the SES message id.
func (n *Notifier) SendEmail(ctx context.Context, to, subject, body string) (string, error) {
	out, err := n.ses.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{ToAddresses: []string{to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.fromEmail),
	})
	if err != nil {
		return "", fmt.Errorf("ses send email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}

// SendSMS returns the SNS message id.
func (n *Notifier) SendSMS(ctx context.Context, phone, message string) (string, error) {
	out, err := n.sns.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	if err != nil {
		return "", fmt.Errorf("sns publish: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
