package recordstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"gestao_integrada/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultRecordsTable = "records"

	headerRow      = 0
	batchWriteSize = 25
	appendTries    = 3
	unprocessedMax = 5
)

// recordItem is one spreadsheet row. Row 0 holds the header.
type recordItem struct {
	Sheet string   `dynamodbav:"sheet"`
	Row   int      `dynamodbav:"row"`
	Cells []string `dynamodbav:"cells"`
}

// DynamoAPI is the subset of *dynamodb.Client the store calls.
type DynamoAPI interface {
	dynamodb.DescribeTableAPIClient
	dynamodb.QueryAPIClient
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoStore keeps every logical table in a single DynamoDB table.
//
// Table requirements:
//   - PK: sheet (string)
//   - SK: row (number), 0 is the header row
type DynamoStore struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRecordStore = (*DynamoStore)(nil)

func NewDynamoStore(ddb DynamoAPI, tableName string) *DynamoStore {
	if tableName == "" {
		tableName = DefaultRecordsTable
	}
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

// EnsureBackingTable creates the DynamoDB table when it does not exist yet.
func (s *DynamoStore) EnsureBackingTable(ctx context.Context) error {
	_, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)})
	if err == nil {
		return nil
	}
	var nf *types.ResourceNotFoundException
	if !errors.As(err, &nf) {
		return err
	}

	log.Printf("[store][dynamodb] creating table %s", s.tableName)
	_, err = s.ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("sheet"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("row"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("sheet"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("row"), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return err
	}

	waiter := dynamodb.NewTableExistsWaiter(s.ddb)
	return waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.tableName)}, 2*time.Minute)
}

func (s *DynamoStore) EnsureTable(ctx context.Context, table string, header []string) (bool, error) {
	av, err := attributevalue.MarshalMap(recordItem{Sheet: table, Row: headerRow, Cells: header})
	if err != nil {
		return false, err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#row)"),
		ExpressionAttributeNames: map[string]string{"#row": "row"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *DynamoStore) Header(ctx context.Context, table string) ([]string, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(table, headerRow),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return it.Cells, nil
}

func (s *DynamoStore) ReadAll(ctx context.Context, table string) ([]interfaces.Row, error) {
	items, err := s.query(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 || items[0].Row != headerRow {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	header := items[0].Cells
	rows := make([]interfaces.Row, 0, len(items)-1)
	for _, it := range items[1:] {
		rows = append(rows, toRow(header, it.Cells))
	}
	return rows, nil
}

// Append writes after the current last row. A concurrent append taking the
// same slot is detected by the put condition and retried on the next slot.
func (s *DynamoStore) Append(ctx context.Context, table string, row []string) error {
	for try := 0; try < appendTries; try++ {
		last, err := s.lastRow(ctx, table)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(recordItem{Sheet: table, Row: last + 1, Cells: row})
		if err != nil {
			return err
		}
		_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                aws.String(s.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#row)"),
			ExpressionAttributeNames: map[string]string{"#row": "row"},
		})
		if err == nil {
			return nil
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return err
		}
		log.Printf("[store][dynamodb] append slot taken sheet=%s row=%d try=%d", table, last+1, try+1)
	}
	return fmt.Errorf("%w: %s", ErrAppendContention, table)
}

// ReplaceAll overwrites rows 0..n and then deletes whatever lies beyond n.
// It is not atomic: a failure midway leaves a mix of old and new rows.
func (s *DynamoStore) ReplaceAll(ctx context.Context, table string, header []string, rows [][]string) error {
	existing, err := s.query(ctx, table)
	if err != nil {
		return err
	}

	puts := make([]types.WriteRequest, 0, len(rows)+1)
	for i, cells := range append([][]string{header}, rows...) {
		av, err := attributevalue.MarshalMap(recordItem{Sheet: table, Row: i, Cells: cells})
		if err != nil {
			return err
		}
		puts = append(puts, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	if err := s.batchWrite(ctx, puts); err != nil {
		return err
	}

	var deletes []types.WriteRequest
	for _, it := range existing {
		if it.Row > len(rows) {
			deletes = append(deletes, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: s.key(table, it.Row)}})
		}
	}
	return s.batchWrite(ctx, deletes)
}

func (s *DynamoStore) FindAndSetCell(ctx context.Context, table, searchValue string, column int, value string) (bool, error) {
	if column < 0 {
		return false, fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}
	items, err := s.query(ctx, table)
	if err != nil {
		return false, err
	}
	if len(items) == 0 {
		return false, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}

	for _, it := range items {
		if it.Row == headerRow {
			continue
		}
		if findRow([][]string{it.Cells}, searchValue) < 0 {
			continue
		}
		cells, err := attributevalue.Marshal(setCell(it.Cells, column, value))
		if err != nil {
			return false, err
		}
		_, err = s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 aws.String(s.tableName),
			Key:                       s.key(table, it.Row),
			UpdateExpression:          aws.String("SET #cells = :cells"),
			ConditionExpression:       aws.String("attribute_exists(#row)"),
			ExpressionAttributeNames:  map[string]string{"#cells": "cells", "#row": "row"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":cells": cells},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *DynamoStore) query(ctx context.Context, table string) ([]recordItem, error) {
	p := dynamodb.NewQueryPaginator(s.ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    aws.String("#sheet = :sheet"),
		ExpressionAttributeNames:  map[string]string{"#sheet": "sheet"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":sheet": &types.AttributeValueMemberS{Value: table}},
		ConsistentRead:            aws.Bool(true),
	})

	var items []recordItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it recordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}
	return items, nil
}

func (s *DynamoStore) lastRow(ctx context.Context, table string) (int, error) {
	out, err := s.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    aws.String("#sheet = :sheet"),
		ExpressionAttributeNames:  map[string]string{"#sheet": "sheet"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":sheet": &types.AttributeValueMemberS{Value: table}},
		ScanIndexForward:          aws.Bool(false),
		Limit:                     aws.Int32(1),
		ConsistentRead:            aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrTableNotFound, table)
	}
	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return 0, err
	}
	return it.Row, nil
}

func (s *DynamoStore) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	for start := 0; start < len(reqs); start += batchWriteSize {
		end := start + batchWriteSize
		if end > len(reqs) {
			end = len(reqs)
		}
		pending := map[string][]types.WriteRequest{s.tableName: reqs[start:end]}
		for try := 0; len(pending) > 0; try++ {
			if try == unprocessedMax {
				return fmt.Errorf("batch write: %d unprocessed items", len(pending[s.tableName]))
			}
			out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (s *DynamoStore) key(table string, row int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"sheet": &types.AttributeValueMemberS{Value: table},
		"row":   &types.AttributeValueMemberN{Value: strconv.Itoa(row)},
	}
}
