package repository

import (
	"context"
	"errors"
	"fmt"
	"packslip/internal/domain/entities"
	"packslip/internal/usecase/interfaces"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEventsTableName = "usage_events"

// DynamoEventAPI is the subset of *dynamodb.Client used by the event store.
type DynamoEventAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type eventItem struct {
	ID             string `dynamodbav:"id"`
	TS             string `dynamodbav:"ts"`
	EventName      string `dynamodbav:"event_name"`
	ToolMode       string `dynamodbav:"tool_mode"`
	LandingContext string `dynamodbav:"landing_context"`
	Properties     string `dynamodbav:"properties"`
}

// EventDynamoRepository persists usage events in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Reads are full-table scans; the event volume is small and bounded by retention.
type EventDynamoRepository struct {
	ddb       DynamoEventAPI
	tableName string
}

var _ interfaces.IEventRepository = (*EventDynamoRepository)(nil)

func NewEventDynamoRepository(ddb DynamoEventAPI, tableName string) *EventDynamoRepository {
	if tableName == "" {
		tableName = defaultEventsTableName
	}
	return &EventDynamoRepository{ddb: ddb, tableName: tableName}
}

// EnsureTable creates the table with on-demand billing when it does not exist yet.
func (r *EventDynamoRepository) EnsureTable(ctx context.Context) error {
	_, err := r.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(r.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return fmt.Errorf("describe table %s: %w", r.tableName, err)
	}

	_, err = r.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("create table %s: %w", r.tableName, err)
	}
	return nil
}

func (r *EventDynamoRepository) Append(ctx context.Context, e entities.UsageEvent) error {
	av, err := attributevalue.MarshalMap(toEventItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// List returns every stored event ordered by timestamp.
func (r *EventDynamoRepository) List(ctx context.Context) ([]entities.UsageEvent, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})

	var out []entities.UsageEvent
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []eventItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEventItem(it))
		}
	}

	slices.SortStableFunc(out, func(a, b entities.UsageEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out, nil
}

func (r *EventDynamoRepository) Count(ctx context.Context) (int, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Select:    types.SelectCount,
	})

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *EventDynamoRepository) Name() string { return "dynamodb" }

func toEventItem(e entities.UsageEvent) eventItem {
	return eventItem{
		ID:             e.ID,
		TS:             formatTimestamp(e.Timestamp),
		EventName:      string(e.EventName),
		ToolMode:       string(e.ToolMode),
		LandingContext: string(e.LandingContext),
		Properties:     e.Properties,
	}
}

func fromEventItem(it eventItem) entities.UsageEvent {
	return entities.UsageEvent{
		ID:             it.ID,
		Timestamp:      parseTimestamp(it.TS),
		EventName:      entities.EventName(it.EventName),
		ToolMode:       entities.ToolMode(it.ToolMode),
		LandingContext: entities.LandingContext(it.LandingContext),
		Properties:     it.Properties,
	}
}
