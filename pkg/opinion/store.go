package opinion

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// Store appends analyzed opinions to a DynamoDB table, one item per opinionId
// holding the ordered list of opinions received so far.
type Store struct {
	db        *dynamodb.DynamoDB
	tableName string
}

func NewStore(sess *session.Session, tableName string) *Store {
	return &Store{
		db:        dynamodb.New(sess),
		tableName: tableName,
	}
}

// Add appends an opinion to the item for opinionId, creating the item when it
// does not exist yet, and returns the total number of stored opinions.
func (s *Store) Add(ctx context.Context, opinionId string, opinionText string) (int, error) {
	res, err := s.db.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]*dynamodb.AttributeValue{
			"opinionId": {S: aws.String(opinionId)},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("fail to get opinions for '%v': %w", opinionId, err)
	}

	opinions := []*dynamodb.AttributeValue{}
	if res.Item != nil {
		if existing, ok := res.Item["opinions"]; ok && existing.L != nil {
			opinions = existing.L
		}
	}
	opinions = append(opinions, &dynamodb.AttributeValue{S: aws.String(opinionText)})

	_, err = s.db.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item: map[string]*dynamodb.AttributeValue{
			"opinionId": {S: aws.String(opinionId)},
			"opinions":  {L: opinions},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("fail to put opinions for '%v': %w", opinionId, err)
	}
	return len(opinions), nil
}
