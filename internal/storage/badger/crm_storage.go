package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/timshannon/badgerhold/v4"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/models"
)

// ErrRecordNotFound is returned when a CRM record lookup finds nothing.
var ErrRecordNotFound = errors.New("record not found")

// CustomerStorage implements interfaces.CustomerStorage using BadgerDB.
type CustomerStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewCustomerStorage creates a new customer storage backed by BadgerDB.
func NewCustomerStorage(db *BadgerDB, logger *common.Logger) *CustomerStorage {
	return &CustomerStorage{db: db, logger: logger}
}

// List retrieves all customers.
func (s *CustomerStorage) List(_ context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Store().Find(&customers, nil); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Get retrieves a customer by id.
func (s *CustomerStorage) Get(_ context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Store().Get(id, &customer); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get customer %s: %w", id, err)
	}
	return &customer, nil
}

// Create persists a new customer.
func (s *CustomerStorage) Create(_ context.Context, customer *models.Customer) error {
	if err := s.db.Store().Insert(customer.ID, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update replaces an existing customer record.
func (s *CustomerStorage) Update(_ context.Context, customer *models.Customer) error {
	if err := s.db.Store().Update(customer.ID, customer); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, err)
	}
	return nil
}

// Delete removes a customer record.
func (s *CustomerStorage) Delete(_ context.Context, id string) error {
	if err := s.db.Store().Delete(id, models.Customer{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	return nil
}

// OrderStorage implements interfaces.OrderStorage using BadgerDB.
type OrderStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewOrderStorage creates a new order storage backed by BadgerDB.
func NewOrderStorage(db *BadgerDB, logger *common.Logger) *OrderStorage {
	return &OrderStorage{db: db, logger: logger}
}

// List retrieves all orders.
func (s *OrderStorage) List(_ context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Store().Find(&orders, nil); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListByCustomer retrieves all orders for a customer.
func (s *OrderStorage) ListByCustomer(_ context.Context, customerID string) ([]models.Order, error) {
	var orders []models.Order
	query := badgerhold.Where("CustomerID").Eq(customerID).Index("CustomerID")
	if err := s.db.Store().Find(&orders, query); err != nil {
		return nil, fmt.Errorf("failed to list orders for customer %s: %w", customerID, err)
	}
	return orders, nil
}

// Get retrieves an order by id.
func (s *OrderStorage) Get(_ context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Store().Get(id, &order); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// Create persists a new order.
func (s *OrderStorage) Create(_ context.Context, order *models.Order) error {
	if err := s.db.Store().Insert(order.ID, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Delete removes an order record.
func (s *OrderStorage) Delete(_ context.Context, id string) error {
	if err := s.db.Store().Delete(id, models.Order{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}

// SegmentStorage implements interfaces.SegmentStorage using BadgerDB.
type SegmentStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewSegmentStorage creates a new segment storage backed by BadgerDB.
func NewSegmentStorage(db *BadgerDB, logger *common.Logger) *SegmentStorage {
	return &SegmentStorage{db: db, logger: logger}
}

// List retrieves all segments.
func (s *SegmentStorage) List(_ context.Context) ([]models.Segment, error) {
	var segments []models.Segment
	if err := s.db.Store().Find(&segments, nil); err != nil {
		return nil, fmt.Errorf("failed to list segments: %w", err)
	}
	return segments, nil
}

// Create persists a new segment.
func (s *SegmentStorage) Create(_ context.Context, segment *models.Segment) error {
	if err := s.db.Store().Insert(segment.ID, segment); err != nil {
		return fmt.Errorf("failed to create segment: %w", err)
	}
	return nil
}

// Delete removes a segment record.
func (s *SegmentStorage) Delete(_ context.Context, id string) error {
	if err := s.db.Store().Delete(id, models.Segment{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete segment %s: %w", id, err)
	}
	return nil
}

// CampaignStorage implements interfaces.CampaignStorage using BadgerDB.
type CampaignStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewCampaignStorage creates a new campaign storage backed by BadgerDB.
func NewCampaignStorage(db *BadgerDB, logger *common.Logger) *CampaignStorage {
	return &CampaignStorage{db: db, logger: logger}
}

// List retrieves all campaigns.
func (s *CampaignStorage) List(_ context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.db.Store().Find(&campaigns, nil); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Create persists a new campaign.
func (s *CampaignStorage) Create(_ context.Context, campaign *models.Campaign) error {
	if err := s.db.Store().Insert(campaign.ID, campaign); err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// Delete removes a campaign record.
func (s *CampaignStorage) Delete(_ context.Context, id string) error {
	if err := s.db.Store().Delete(id, models.Campaign{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete campaign %s: %w", id, err)
	}
	return nil
}

// CommunicationLogStorage implements interfaces.CommunicationLogStorage
// using BadgerDB.
type CommunicationLogStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewCommunicationLogStorage creates a new communication log storage
// backed by BadgerDB.
func NewCommunicationLogStorage(db *BadgerDB, logger *common.Logger) *CommunicationLogStorage {
	return &CommunicationLogStorage{db: db, logger: logger}
}

// List retrieves all communication log entries.
func (s *CommunicationLogStorage) List(_ context.Context) ([]models.CommunicationLog, error) {
	var logs []models.CommunicationLog
	if err := s.db.Store().Find(&logs, nil); err != nil {
		return nil, fmt.Errorf("failed to list communication logs: %w", err)
	}
	return logs, nil
}

// ListByCampaign retrieves all log entries for a campaign.
func (s *CommunicationLogStorage) ListByCampaign(_ context.Context, campaignID string) ([]models.CommunicationLog, error) {
	var logs []models.CommunicationLog
	query := badgerhold.Where("CampaignID").Eq(campaignID).Index("CampaignID")
	if err := s.db.Store().Find(&logs, query); err != nil {
		return nil, fmt.Errorf("failed to list communication logs for campaign %s: %w", campaignID, err)
	}
	return logs, nil
}

// Create persists a new communication log entry.
func (s *CommunicationLogStorage) Create(_ context.Context, log *models.CommunicationLog) error {
	if err := s.db.Store().Insert(log.ID, log); err != nil {
		return fmt.Errorf("failed to create communication log: %w", err)
	}
	return nil
}
