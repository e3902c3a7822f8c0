package models

import "time"

// Customer is a CRM customer record.
type Customer struct {
	ID          string    `json:"id" badgerhold:"key"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	TotalSpend  float64   `json:"total_spend"`
	VisitCount  int       `json:"visit_count"`
	LastVisitAt time.Time `json:"last_visit_at,omitzero"`
	CreatedAt   time.Time `json:"created_at"`
}

// Order is a purchase recorded against a customer.
type Order struct {
	ID         string    `json:"id" badgerhold:"key"`
	CustomerID string    `json:"customer_id" badgerhold:"index"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// Segment is a saved audience definition.
type Segment struct {
	ID        string    `json:"id" badgerhold:"key"`
	Name      string    `json:"name"`
	Rules     string    `json:"rules"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Campaign is an outreach campaign targeting a segment.
type Campaign struct {
	ID        string    `json:"id" badgerhold:"key"`
	Name      string    `json:"name"`
	SegmentID string    `json:"segment_id" badgerhold:"index"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// CommunicationLog records one delivery attempt for a campaign message.
type CommunicationLog struct {
	ID         string    `json:"id" badgerhold:"key"`
	CampaignID string    `json:"campaign_id" badgerhold:"index"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	SentAt     time.Time `json:"sent_at,omitzero"`
	CreatedAt  time.Time `json:"created_at"`
}
