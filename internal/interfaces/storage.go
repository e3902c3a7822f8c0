package interfaces

import (
	"context"

	"github.com/clientdesk/clientdesk/internal/models"
)

// StorageManager provides access to domain-specific storage interfaces.
// Implementations can be swapped (BadgerDB now, centralised DB later).
type StorageManager interface {
	Users() UserStorage
	Customers() CustomerStorage
	Orders() OrderStorage
	Segments() SegmentStorage
	Campaigns() CampaignStorage
	CommunicationLogs() CommunicationLogStorage
	Close() error
}

// UserStorage persists user records. Creates enforce uniqueness on email
// and googleId at the storage layer: a racing second writer fails
// deterministically with auth.ErrDuplicateEmail / auth.ErrDuplicateIdentity.
type UserStorage interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	CreateLocal(ctx context.Context, user *models.User) error
	CreateFederated(ctx context.Context, user *models.User) error
}

// CustomerStorage persists CRM customer records.
type CustomerStorage interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
}

// OrderStorage persists orders recorded against customers.
type OrderStorage interface {
	List(ctx context.Context) ([]models.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id string) error
}

// SegmentStorage persists saved audience definitions.
type SegmentStorage interface {
	List(ctx context.Context) ([]models.Segment, error)
	Create(ctx context.Context, segment *models.Segment) error
	Delete(ctx context.Context, id string) error
}

// CampaignStorage persists outreach campaigns.
type CampaignStorage interface {
	List(ctx context.Context) ([]models.Campaign, error)
	Create(ctx context.Context, campaign *models.Campaign) error
	Delete(ctx context.Context, id string) error
}

// CommunicationLogStorage persists campaign delivery attempts.
type CommunicationLogStorage interface {
	List(ctx context.Context) ([]models.CommunicationLog, error)
	ListByCampaign(ctx context.Context, campaignID string) ([]models.CommunicationLog, error)
	Create(ctx context.Context, log *models.CommunicationLog) error
}
