package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/numbering"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName       = "estimates"
	defaultEstimateNumbersTableName = "estimate_numbers"
	defaultEstimateCountersTable    = "estimate_counters"
	defaultJobsTableName            = "jobs"
	defaultServiceRequestsTableName = "service_requests"
)

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	UnitCost    string `dynamodbav:"unit_cost"`
	IsTaxable   bool   `dynamodbav:"is_taxable"`
	IsOptional  bool   `dynamodbav:"is_optional"`
	IsSelected  bool   `dynamodbav:"is_selected"`
	SortOrder   int    `dynamodbav:"sort_order"`
}

type optionItem struct {
	ID             string         `dynamodbav:"id"`
	Name           string         `dynamodbav:"name"`
	Description    string         `dynamodbav:"description,omitempty"`
	CoverImageURL  string         `dynamodbav:"cover_image_url,omitempty"`
	IsRecommended  bool           `dynamodbav:"is_recommended"`
	DiscountType   string         `dynamodbav:"discount_type"`
	DiscountValue  string         `dynamodbav:"discount_value"`
	TaxRate        string         `dynamodbav:"tax_rate"`
	SortOrder      int            `dynamodbav:"sort_order"`
	Subtotal       string         `dynamodbav:"subtotal"`
	DiscountAmount string         `dynamodbav:"discount_amount"`
	TaxAmount      string         `dynamodbav:"tax_amount"`
	Total          string         `dynamodbav:"total"`
	LineItems      []lineItemItem `dynamodbav:"line_items"`
}

type estimateItem struct {
	TenantID           string       `dynamodbav:"tenant_id"`
	ID                 string       `dynamodbav:"id"`
	CustomerID         string       `dynamodbav:"customer_id"`
	AddressID          string       `dynamodbav:"address_id"`
	EstimateNumber     string       `dynamodbav:"estimate_number"`
	Status             string       `dynamodbav:"status"`
	Title              string       `dynamodbav:"title,omitempty"`
	Message            string       `dynamodbav:"message,omitempty"`
	TermsAndConditions string       `dynamodbav:"terms_and_conditions,omitempty"`
	ValidUntil         *string      `dynamodbav:"valid_until,omitempty"`
	SentAt             *string      `dynamodbav:"sent_at,omitempty"`
	ViewedAt           *string      `dynamodbav:"viewed_at,omitempty"`
	ApprovedAt         *string      `dynamodbav:"approved_at,omitempty"`
	DeclinedAt         *string      `dynamodbav:"declined_at,omitempty"`
	ExpiredAt          *string      `dynamodbav:"expired_at,omitempty"`
	Subtotal           string       `dynamodbav:"subtotal"`
	DiscountAmount     string       `dynamodbav:"discount_amount"`
	TaxAmount          string       `dynamodbav:"tax_amount"`
	Total              string       `dynamodbav:"total"`
	Options            []optionItem `dynamodbav:"options"`
	CreatedAt          string       `dynamodbav:"created_at"`
	UpdatedAt          string       `dynamodbav:"updated_at"`
}

// estimateNumberItem reserves an estimate number for a tenant. It is kept
// after the estimate is deleted so numbers are never handed out twice.
type estimateNumberItem struct {
	TenantID       string `dynamodbav:"tenant_id"`
	EstimateNumber string `dynamodbav:"estimate_number"`
	EstimateID     string `dynamodbav:"estimate_id"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - estimates: PK tenant_id, SK id. Options and line items are nested in
//     the estimate item so every write is a single-item write.
//   - estimate_numbers: PK tenant_id, SK estimate_number.
//   - estimate_counters: PK tenant_id.
//   - jobs, service_requests: PK tenant_id, SK id (read for the delete guard).
type EstimateDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	numbersTable  string
	countersTable string
	jobsTable     string
	requestsTable string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:           ddb,
		tableName:     tableName("ESTIMATES_TABLE", defaultEstimatesTableName),
		numbersTable:  tableName("ESTIMATE_NUMBERS_TABLE", defaultEstimateNumbersTableName),
		countersTable: tableName("ESTIMATE_COUNTERS_TABLE", defaultEstimateCountersTable),
		jobsTable:     tableName("JOBS_TABLE", defaultJobsTableName),
		requestsTable: tableName("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

// Create writes the estimate and reserves its number in one transaction.
func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	est, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}
	num, err := attributevalue.MarshalMap(estimateNumberItem{
		TenantID:       e.TenantID,
		EstimateNumber: e.EstimateNumber,
		EstimateID:     e.ID,
	})
	if err != nil {
		return entities.Estimate{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     est,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.numbersTable),
				Item:                     num,
				ConditionExpression:      aws.String("attribute_not_exists(#n)"),
				ExpressionAttributeNames: map[string]string{"#n": "estimate_number"},
			}},
		},
	})
	if err != nil {
		if cancelledAt(err, 1) {
			return entities.Estimate{}, interfaces.ErrDuplicateEstimateNumber
		}
		return entities.Estimate{}, err
	}
	e.SortOptions()
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Estimate, error) {
	var it estimateItem
	found, err := getByTenantKey(ctx, r.ddb, r.tableName, tenantID, id, &it)
	if err != nil || !found {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// List returns the tenant's estimates, newest first.
func (r *EstimateDynamoRepository) List(ctx context.Context, tenantID string) ([]entities.Estimate, error) {
	raw, err := queryByTenant(ctx, r.ddb, r.tableName, tenantID)
	if err != nil {
		return nil, err
	}
	out, err := unmarshalEstimates(raw)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate, replaceOptions bool) (entities.Estimate, error) {
	it := toEstimateItem(e)
	return r.update(ctx, e.TenantID, e.ID, func() (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #customer_id = :customer_id, #address_id = :address_id, #status = :status, " +
			"#title = :title, #message = :message, #terms = :terms, " +
			"#subtotal = :subtotal, #discount_amount = :discount_amount, #tax_amount = :tax_amount, #total = :total, " +
			"#updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":customer_id":     &types.AttributeValueMemberS{Value: it.CustomerID},
			":address_id":      &types.AttributeValueMemberS{Value: it.AddressID},
			":status":          &types.AttributeValueMemberS{Value: it.Status},
			":title":           &types.AttributeValueMemberS{Value: it.Title},
			":message":         &types.AttributeValueMemberS{Value: it.Message},
			":terms":           &types.AttributeValueMemberS{Value: it.TermsAndConditions},
			":subtotal":        &types.AttributeValueMemberS{Value: it.Subtotal},
			":discount_amount": &types.AttributeValueMemberS{Value: it.DiscountAmount},
			":tax_amount":      &types.AttributeValueMemberS{Value: it.TaxAmount},
			":total":           &types.AttributeValueMemberS{Value: it.Total},
			":updated_at":      &types.AttributeValueMemberS{Value: it.UpdatedAt},
		}
		names := map[string]string{
			"#customer_id":     "customer_id",
			"#address_id":      "address_id",
			"#status":          "status",
			"#title":           "title",
			"#message":         "message",
			"#terms":           "terms_and_conditions",
			"#subtotal":        "subtotal",
			"#discount_amount": "discount_amount",
			"#tax_amount":      "tax_amount",
			"#total":           "total",
			"#updated_at":      "updated_at",
		}

		// Optional timestamps are set when present and removed otherwise.
		var remove []string
		stamps := []struct {
			attr string
			val  *string
		}{
			{"valid_until", it.ValidUntil},
			{"sent_at", it.SentAt},
			{"viewed_at", it.ViewedAt},
			{"approved_at", it.ApprovedAt},
			{"declined_at", it.DeclinedAt},
			{"expired_at", it.ExpiredAt},
		}
		for _, s := range stamps {
			names["#"+s.attr] = s.attr
			if s.val == nil {
				remove = append(remove, "#"+s.attr)
				continue
			}
			expr += ", #" + s.attr + " = :" + s.attr
			vals[":"+s.attr] = &types.AttributeValueMemberS{Value: *s.val}
		}

		if replaceOptions {
			opts, err := attributevalue.Marshal(it.Options)
			if err != nil {
				return "", nil, nil, err
			}
			expr += ", #options = :options"
			vals[":options"] = opts
			names["#options"] = "options"
		}

		for i, attr := range remove {
			if i == 0 {
				expr += " REMOVE " + attr
			} else {
				expr += ", " + attr
			}
		}
		return expr, vals, names, nil
	})
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	tenantID, id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.Estimate, error) {
	updateExpr, values, names, err := build()
	if err != nil {
		return entities.Estimate{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       tenantKey(tenantID, id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// deleteAttempts bounds how often Delete recounts when links keep landing
// between the count and the delete.
const deleteAttempts = 3

// Delete removes the estimate item together with its nested options. The
// number reservation stays behind. The delete is conditioned on the
// ref_version read before counting references, so a link stored in between
// makes it recount.
func (r *EstimateDynamoRepository) Delete(ctx context.Context, tenantID, id string) error {
	for attempt := 0; attempt < deleteAttempts; attempt++ {
		res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName:                aws.String(r.tableName),
			Key:                      tenantKey(tenantID, id),
			ConsistentRead:           aws.Bool(true),
			ProjectionExpression:     aws.String("#id, #ref_version"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#ref_version": "ref_version"},
		})
		if err != nil {
			return err
		}
		if len(res.Item) == 0 {
			return nil
		}

		jobs, requests, err := r.CountReferences(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if jobs > 0 || requests > 0 {
			return &interfaces.EstimateReferencedError{Jobs: jobs, ServiceRequests: requests}
		}

		in := &dynamodb.DeleteItemInput{
			TableName:                aws.String(r.tableName),
			Key:                      tenantKey(tenantID, id),
			ConditionExpression:      aws.String("attribute_not_exists(#ref_version)"),
			ExpressionAttributeNames: map[string]string{"#ref_version": "ref_version"},
		}
		if v, ok := res.Item["ref_version"]; ok {
			in.ConditionExpression = aws.String("#ref_version = :ref_version")
			in.ExpressionAttributeValues = map[string]types.AttributeValue{":ref_version": v}
		}
		_, err = r.ddb.DeleteItem(ctx, in)
		if !isConditionFailed(err) {
			return err
		}
	}
	return fmt.Errorf("delete estimate %s: references kept changing", id)
}

func (r *EstimateDynamoRepository) CountReferences(ctx context.Context, tenantID, id string) (int, int, error) {
	jobs, err := r.countReferencing(ctx, r.jobsTable, tenantID, id)
	if err != nil {
		return 0, 0, err
	}
	requests, err := r.countReferencing(ctx, r.requestsTable, tenantID, id)
	if err != nil {
		return 0, 0, err
	}
	return jobs, requests, nil
}

func (r *EstimateDynamoRepository) countReferencing(ctx context.Context, table, tenantID, estimateID string) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		FilterExpression:       aws.String("#estimate_id = :eid"),
		ExpressionAttributeNames: map[string]string{
			"#estimate_id": "estimate_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
			":eid": &types.AttributeValueMemberS{Value: estimateID},
		},
		Select: types.SelectCount,
	})
	total := 0
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
	}
	return total, nil
}

// AllocateEstimateSequence increments the tenant's counter with a single
// UpdateItem. A missing counter starts from the newest estimate's number.
func (r *EstimateDynamoRepository) AllocateEstimateSequence(ctx context.Context, tenantID string) (int, error) {
	key := map[string]types.AttributeValue{
		"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
	}

	seed := 0
	cur, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.countersTable),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(cur.Item) == 0 {
		if seed, err = r.latestSequence(ctx, tenantID); err != nil {
			return 0, err
		}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.countersTable),
		Key:              key,
		UpdateExpression: aws.String("SET #v = if_not_exists(#v, :seed) + :one, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#v":          "last_value",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":seed": &types.AttributeValueMemberN{Value: strconv.Itoa(seed)},
			":one":  &types.AttributeValueMemberN{Value: "1"},
			":now":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	var updated struct {
		LastValue int `dynamodbav:"last_value"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return 0, err
	}
	return updated.LastValue, nil
}

func (r *EstimateDynamoRepository) latestSequence(ctx context.Context, tenantID string) (int, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ProjectionExpression:   aws.String("estimate_number, created_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return 0, err
	}
	var latest estimateItem
	for _, item := range raw {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return 0, err
		}
		if it.CreatedAt > latest.CreatedAt {
			latest = it
		}
	}
	if latest.EstimateNumber == "" {
		return 0, nil
	}
	return numbering.Next(latest.EstimateNumber) - 1, nil
}

func (r *EstimateDynamoRepository) EstimateNumberExists(ctx context.Context, tenantID, number string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.numbersTable),
		Key: map[string]types.AttributeValue{
			"tenant_id":       &types.AttributeValueMemberS{Value: tenantID},
			"estimate_number": &types.AttributeValueMemberS{Value: number},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

// ListExpirable scans every tenant's estimates. It only runs from the
// nightly sweep.
func (r *EstimateDynamoRepository) ListExpirable(ctx context.Context, now time.Time) ([]entities.Estimate, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status IN (:sent, :viewed) AND attribute_exists(#valid_until) AND #valid_until < :now"),
		ExpressionAttributeNames: map[string]string{
			"#status":      "status",
			"#valid_until": "valid_until",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sent":   &types.AttributeValueMemberS{Value: string(entities.EstimateStatusSent)},
			":viewed": &types.AttributeValueMemberS{Value: string(entities.EstimateStatusViewed)},
			":now":    &types.AttributeValueMemberS{Value: formatTime(now)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalEstimates(raw)
}

func unmarshalEstimates(raw []map[string]types.AttributeValue) ([]entities.Estimate, error) {
	out := make([]entities.Estimate, 0, len(raw))
	for _, item := range raw {
		var it estimateItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromEstimateItem(it))
	}
	return out, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	opts := make([]optionItem, 0, len(e.Options))
	for _, o := range e.Options {
		items := make([]lineItemItem, 0, len(o.LineItems))
		for _, li := range o.LineItems {
			items = append(items, lineItemItem{
				ID:          li.ID,
				Type:        string(li.Type),
				Name:        li.Name,
				Description: li.Description,
				Quantity:    li.Quantity.String(),
				UnitPrice:   li.UnitPrice.String(),
				UnitCost:    li.UnitCost.String(),
				IsTaxable:   li.IsTaxable,
				IsOptional:  li.IsOptional,
				IsSelected:  li.IsSelected,
				SortOrder:   li.SortOrder,
			})
		}
		opts = append(opts, optionItem{
			ID:             o.ID,
			Name:           o.Name,
			Description:    o.Description,
			CoverImageURL:  o.CoverImageURL,
			IsRecommended:  o.IsRecommended,
			DiscountType:   string(o.DiscountType),
			DiscountValue:  o.DiscountValue.String(),
			TaxRate:        o.TaxRate.String(),
			SortOrder:      o.SortOrder,
			Subtotal:       o.Subtotal.StringFixed(2),
			DiscountAmount: o.DiscountAmount.StringFixed(2),
			TaxAmount:      o.TaxAmount.StringFixed(2),
			Total:          o.Total.StringFixed(2),
			LineItems:      items,
		})
	}
	return estimateItem{
		TenantID:           e.TenantID,
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		AddressID:          e.AddressID,
		EstimateNumber:     e.EstimateNumber,
		Status:             string(e.Status),
		Title:              e.Title,
		Message:            e.Message,
		TermsAndConditions: e.TermsAndConditions,
		ValidUntil:         formatTimePtr(e.ValidUntil),
		SentAt:             formatTimePtr(e.SentAt),
		ViewedAt:           formatTimePtr(e.ViewedAt),
		ApprovedAt:         formatTimePtr(e.ApprovedAt),
		DeclinedAt:         formatTimePtr(e.DeclinedAt),
		ExpiredAt:          formatTimePtr(e.ExpiredAt),
		Subtotal:           e.Subtotal.StringFixed(2),
		DiscountAmount:     e.DiscountAmount.StringFixed(2),
		TaxAmount:          e.TaxAmount.StringFixed(2),
		Total:              e.Total.StringFixed(2),
		Options:            opts,
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	e := entities.Estimate{
		ID:                 it.ID,
		TenantID:           it.TenantID,
		CustomerID:         it.CustomerID,
		AddressID:          it.AddressID,
		EstimateNumber:     it.EstimateNumber,
		Status:             entities.EstimateStatus(it.Status),
		Title:              it.Title,
		Message:            it.Message,
		TermsAndConditions: it.TermsAndConditions,
		ValidUntil:         parseTimePtr(it.ValidUntil),
		SentAt:             parseTimePtr(it.SentAt),
		ViewedAt:           parseTimePtr(it.ViewedAt),
		ApprovedAt:         parseTimePtr(it.ApprovedAt),
		DeclinedAt:         parseTimePtr(it.DeclinedAt),
		ExpiredAt:          parseTimePtr(it.ExpiredAt),
		Subtotal:           parseDecimal(it.Subtotal),
		DiscountAmount:     parseDecimal(it.DiscountAmount),
		TaxAmount:          parseDecimal(it.TaxAmount),
		Total:              parseDecimal(it.Total),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	for _, o := range it.Options {
		opt := entities.EstimateOption{
			ID:             o.ID,
			EstimateID:     it.ID,
			Name:           o.Name,
			Description:    o.Description,
			CoverImageURL:  o.CoverImageURL,
			IsRecommended:  o.IsRecommended,
			DiscountType:   entities.DiscountType(o.DiscountType).Normalize(),
			DiscountValue:  parseDecimal(o.DiscountValue),
			TaxRate:        parseDecimal(o.TaxRate),
			SortOrder:      o.SortOrder,
			Subtotal:       parseDecimal(o.Subtotal),
			DiscountAmount: parseDecimal(o.DiscountAmount),
			TaxAmount:      parseDecimal(o.TaxAmount),
			Total:          parseDecimal(o.Total),
		}
		for _, li := range o.LineItems {
			opt.LineItems = append(opt.LineItems, entities.LineItem{
				ID:          li.ID,
				OptionID:    o.ID,
				Type:        entities.LineItemType(li.Type),
				Name:        li.Name,
				Description: li.Description,
				Quantity:    parseDecimal(li.Quantity),
				UnitPrice:   parseDecimal(li.UnitPrice),
				UnitCost:    parseDecimal(li.UnitCost),
				IsTaxable:   li.IsTaxable,
				IsOptional:  li.IsOptional,
				IsSelected:  li.IsSelected,
				SortOrder:   li.SortOrder,
			})
		}
		e.Options = append(e.Options, opt)
	}
	e.SortOptions()
	return e
}
