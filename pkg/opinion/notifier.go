package opinion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
)

// Notifier publishes a message to an SNS topic whenever a new opinion lands.
type Notifier struct {
	sns      *sns.SNS
	topicArn string
}

func NewNotifier(sess *session.Session, topicArn string) *Notifier {
	return &Notifier{
		sns:      sns.New(sess),
		topicArn: topicArn,
	}
}

func (n *Notifier) NotifyAdded(ctx context.Context, opinionId string, opinionText string, totalOpinions int) error {
	payload, err := json.Marshal(map[string]any{
		"opinionId":     opinionId,
		"newOpinion":    opinionText,
		"totalOpinions": totalOpinions,
	})
	if err != nil {
		return fmt.Errorf("fail to encode notification: %w", err)
	}

	_, err = n.sns.PublishWithContext(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicArn),
		Message:  aws.String(string(payload)),
		Subject:  aws.String(fmt.Sprintf("New Opinion Added for ID: %v", opinionId)),
	})
	if err != nil {
		return fmt.Errorf("fail to publish notification: %w", err)
	}
	return nil
}
