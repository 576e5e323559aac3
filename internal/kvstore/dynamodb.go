package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// dynamoItem is one row of the table. Documents live in "value", counters
// maintained through IncrBy live in the numeric "num" attribute.
type dynamoItem struct {
	Key   string   `dynamodbav:"key"`
	Value string   `dynamodbav:"value,omitempty"`
	Num   *float64 `dynamodbav:"num,omitempty"`
}

// DynamoStore keeps the namespace in a DynamoDB table whose partition key is "key".
type DynamoStore struct {
	client    DynamoAPI
	tableName string
}

var (
	_ Store       = (*DynamoStore)(nil)
	_ Incrementer = (*DynamoStore)(nil)
)

func NewDynamoStore(client DynamoAPI, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

// NewDynamoStoreFromConfig builds a client from the default AWS credential chain.
// A non-empty endpoint points the client at a local DynamoDB.
func NewDynamoStoreFromConfig(ctx context.Context, region, endpoint, tableName string) (*DynamoStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	log.Info().Str("table", tableName).Str("region", region).Msg("✅ DynamoDB store ready")
	return NewDynamoStore(client, tableName), nil
}

func (s *DynamoStore) keyAttr(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"key": &types.AttributeValueMemberS{Value: key},
	}
}

func (s *DynamoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttr(key),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dynamodb decode %s: %w", key, err)
	}
	return item.raw()
}

func (s *DynamoStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	av, err := attributevalue.MarshalMap(dynamoItem{Key: key, Value: string(value)})
	if err != nil {
		return fmt.Errorf("dynamodb encode %s: %w", key, err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamodb put %s: %w", key, err)
	}
	return nil
}

func (s *DynamoStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(s.tableName),
		FilterExpression:         aws.String("begins_with(#k, :p)"),
		ExpressionAttributeNames: map[string]string{"#k": "key"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: prefix},
		},
	}

	var items []dynamoItem
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("dynamodb scan %s: %w", prefix, err)
		}
		var page []dynamoItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dynamodb decode scan page: %w", err)
		}
		items = append(items, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		raw, err := item.raw()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Key: item.Key, Value: raw})
	}
	return entries, nil
}

// IncrBy uses an ADD update expression, which DynamoDB applies atomically. A
// counter last written with Set holds its total in "value"; it is moved into
// "num" first so the ADD continues from it.
func (s *DynamoStore) IncrBy(ctx context.Context, key string, delta float64) (float64, error) {
	for attempt := 0; attempt < maxPromoteAttempts; attempt++ {
		out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                aws.String(s.tableName),
			Key:                      s.keyAttr(key),
			UpdateExpression:         aws.String("ADD #n :d"),
			ConditionExpression:      aws.String("attribute_not_exists(#v)"),
			ExpressionAttributeNames: map[string]string{"#n": "num", "#v": "value"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":d": &types.AttributeValueMemberN{Value: strconv.FormatFloat(delta, 'f', -1, 64)},
			},
			ReturnValues: types.ReturnValueUpdatedNew,
		})
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			if err := s.promote(ctx, key); err != nil {
				return 0, err
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("dynamodb add %s: %w", key, err)
		}
		n, ok := out.Attributes["num"].(*types.AttributeValueMemberN)
		if !ok {
			return 0, fmt.Errorf("dynamodb add %s: missing num attribute", key)
		}
		return strconv.ParseFloat(n.Value, 64)
	}
	return 0, fmt.Errorf("dynamodb add %s: value attribute kept changing", key)
}

const maxPromoteAttempts = 5

// promote moves a numeric document from "value" into "num". The swap only
// applies if "value" is unchanged since it was read.
func (s *DynamoStore) promote(ctx context.Context, key string) error {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.keyAttr(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("dynamodb get %s: %w", key, err)
	}
	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return fmt.Errorf("dynamodb decode %s: %w", key, err)
	}
	if item.Value == "" {
		return nil
	}
	seed := ParseNumber(json.RawMessage(item.Value))
	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(s.tableName),
		Key:                      s.keyAttr(key),
		UpdateExpression:         aws.String("SET #n = :seed REMOVE #v"),
		ConditionExpression:      aws.String("#v = :old"),
		ExpressionAttributeNames: map[string]string{"#n": "num", "#v": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seed": &types.AttributeValueMemberN{Value: strconv.FormatFloat(seed, 'f', -1, 64)},
			":old":  &types.AttributeValueMemberS{Value: item.Value},
		},
	})
	var condErr *types.ConditionalCheckFailedException
	if err != nil && !errors.As(err, &condErr) {
		return fmt.Errorf("dynamodb promote %s: %w", key, err)
	}
	return nil
}

func (i dynamoItem) raw() (json.RawMessage, error) {
	switch {
	case i.Num != nil:
		return FormatNumber(*i.Num), nil
	case i.Value != "":
		return json.RawMessage(i.Value), nil
	default:
		return nil, ErrNotFound
	}
}
