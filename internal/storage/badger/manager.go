package badger

import (
	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/config"
	"github.com/clientdesk/clientdesk/internal/interfaces"
)

// Manager implements the StorageManager interface for Badger.
type Manager struct {
	db        *BadgerDB
	users     interfaces.UserStorage
	customers interfaces.CustomerStorage
	orders    interfaces.OrderStorage
	segments  interfaces.SegmentStorage
	campaigns interfaces.CampaignStorage
	commLogs  interfaces.CommunicationLogStorage
	logger    *common.Logger
}

// NewManager creates a new Badger storage manager.
func NewManager(logger *common.Logger, cfg *config.BadgerConfig) (interfaces.StorageManager, error) {
	db, err := NewBadgerDB(logger, cfg)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		db:        db,
		users:     NewUserStorage(db, logger),
		customers: NewCustomerStorage(db, logger),
		orders:    NewOrderStorage(db, logger),
		segments:  NewSegmentStorage(db, logger),
		campaigns: NewCampaignStorage(db, logger),
		commLogs:  NewCommunicationLogStorage(db, logger),
		logger:    logger,
	}

	if logger != nil {
		logger.Debug().Msg("Badger storage manager initialized")
	}

	return manager, nil
}

// Users returns the user storage interface.
func (m *Manager) Users() interfaces.UserStorage { return m.users }

// Customers returns the customer storage interface.
func (m *Manager) Customers() interfaces.CustomerStorage { return m.customers }

// Orders returns the order storage interface.
func (m *Manager) Orders() interfaces.OrderStorage { return m.orders }

// Segments returns the segment storage interface.
func (m *Manager) Segments() interfaces.SegmentStorage { return m.segments }

// Campaigns returns the campaign storage interface.
func (m *Manager) Campaigns() interfaces.CampaignStorage { return m.campaigns }

// CommunicationLogs returns the communication log storage interface.
func (m *Manager) CommunicationLogs() interfaces.CommunicationLogStorage { return m.commLogs }

// Close closes the database connection.
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
