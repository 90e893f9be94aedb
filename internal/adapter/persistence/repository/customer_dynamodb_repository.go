package repository

import (
	"context"
	"sort"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	defaultAddressesTableName = "addresses"
)

type customerItem struct {
	TenantID  string `dynamodbav:"tenant_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type addressItem struct {
	TenantID   string `dynamodbav:"tenant_id"`
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Street     string `dynamodbav:"street"`
	City       string `dynamodbav:"city,omitempty"`
	State      string `dynamodbav:"state,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists customers and addresses in DynamoDB.
//
// Table requirements:
//   - customers: PK tenant_id, SK id
//   - addresses: PK tenant_id, SK id
type CustomerDynamoRepository struct {
	ddb            DynamoAPI
	customersTable string
	addressesTable string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:            ddb,
		customersTable: tableName("CUSTOMERS_TABLE", defaultCustomersTableName),
		addressesTable: tableName("ADDRESSES_TABLE", defaultAddressesTableName),
	}
}

func (r *CustomerDynamoRepository) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	it := customerItem{
		TenantID:  c.TenantID,
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
	if err := putNew(ctx, r.ddb, r.customersTable, it); err != nil {
		return entities.Customer{}, err
	}
	return it.toEntity(), nil
}

func (r *CustomerDynamoRepository) GetCustomer(ctx context.Context, tenantID, id string) (entities.Customer, error) {
	var it customerItem
	found, err := getByTenantKey(ctx, r.ddb, r.customersTable, tenantID, id, &it)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return it.toEntity(), nil
}

// ListCustomers returns the tenant's customers ordered by name.
func (r *CustomerDynamoRepository) ListCustomers(ctx context.Context, tenantID string) ([]entities.Customer, error) {
	raw, err := queryByTenant(ctx, r.ddb, r.customersTable, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(raw))
	for _, item := range raw {
		var it customerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, it.toEntity())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CustomerDynamoRepository) CreateAddress(ctx context.Context, a entities.Address) (entities.Address, error) {
	it := addressItem{
		TenantID:   a.TenantID,
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		CreatedAt:  formatTime(a.CreatedAt),
		UpdatedAt:  formatTime(a.UpdatedAt),
	}
	if err := putNew(ctx, r.ddb, r.addressesTable, it); err != nil {
		return entities.Address{}, err
	}
	return it.toEntity(), nil
}

func (r *CustomerDynamoRepository) GetAddress(ctx context.Context, tenantID, id string) (entities.Address, error) {
	var it addressItem
	found, err := getByTenantKey(ctx, r.ddb, r.addressesTable, tenantID, id, &it)
	if err != nil || !found {
		return entities.Address{}, err
	}
	return it.toEntity(), nil
}

func (r *CustomerDynamoRepository) ListAddresses(ctx context.Context, tenantID, customerID string) ([]entities.Address, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.addressesTable),
		KeyConditionExpression:   aws.String("tenant_id = :tid"),
		FilterExpression:         aws.String("#customer_id = :cid"),
		ExpressionAttributeNames: map[string]string{"#customer_id": "customer_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Address, 0, len(raw))
	for _, item := range raw {
		var it addressItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, it.toEntity())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (it customerItem) toEntity() entities.Customer {
	return entities.Customer{
		ID:        it.ID,
		TenantID:  it.TenantID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func (it addressItem) toEntity() entities.Address {
	return entities.Address{
		ID:         it.ID,
		TenantID:   it.TenantID,
		CustomerID: it.CustomerID,
		Street:     it.Street,
		City:       it.City,
		State:      it.State,
		PostalCode: it.PostalCode,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
