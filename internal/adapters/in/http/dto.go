package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the envelope every failed request returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PendingTicket is one row of the unassigned pool.
type PendingTicket struct {
	ID             int64      `json:"id"`
	Number         int        `json:"number"`
	IssuedAt       time.Time  `json:"issued_at"`
	ItemCount      int        `json:"item_count"`
	EarliestExpiry *time.Time `json:"earliest_expiry,omitempty"`
}

// CreateTaskRequest groups tickets into a verification task.
type CreateTaskRequest struct {
	TicketIDs  []int64    `json:"ticket_ids"`
	CreatedBy  int64      `json:"created_by"`
	AssignedTo *int64     `json:"assigned_to,omitempty"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// CreateTaskResponse returns the identifier of the created task.
type CreateTaskResponse struct {
	ID uuid.UUID `json:"id"`
}

// Task is one row of the task board.
type Task struct {
	ID               uuid.UUID  `json:"id"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	CreatedBy        int64      `json:"created_by"`
	AssignedTo       *int64     `json:"assigned_to,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	DocumentID       *int64     `json:"document_id,omitempty"`
	TotalTickets     int        `json:"total_tickets"`
	CompletedTickets int        `json:"completed_tickets"`
	ScannedItems     int        `json:"scanned_items"`
	TotalItems       int        `json:"total_items"`
}

// RecordScanRequest submits one barcode read against a task ticket.
type RecordScanRequest struct {
	TaskTicketID uuid.UUID `json:"task_ticket_id"`
	Code         string    `json:"code"`
	UserID       int64     `json:"user_id"`
}

// RecordScanResponse reports how the attempt was classified. Verification
// failures are regular responses, not HTTP errors: the operator retries.
type RecordScanResponse struct {
	Outcome string `json:"outcome"`
	Success bool   `json:"success"`
}

// CheckoutTicketRequest marks a pending ticket processed without a task.
type CheckoutTicketRequest struct {
	UserID int64 `json:"user_id"`
}

// TicketSelectionRequest names one ticket to consolidate with its discount.
type TicketSelectionRequest struct {
	TicketID        int64           `json:"ticket_id"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

// ManualEntryRequest is one hand-typed document line.
type ManualEntryRequest struct {
	Description    string          `json:"description"`
	Weight         decimal.Decimal `json:"weight"`
	UnitGrossPrice decimal.Decimal `json:"unit_gross_price"`
	VATBracket     int             `json:"vat_bracket"`
}

// CreateDocumentRequest issues a transport document.
type CreateDocumentRequest struct {
	ClientID      int64                    `json:"client_id"`
	CompanyID     int64                    `json:"company_id"`
	Selections    []TicketSelectionRequest `json:"selections"`
	ManualEntries []ManualEntryRequest     `json:"manual_entries"`
	Note          string                   `json:"note"`
	TaskID        *uuid.UUID               `json:"task_id,omitempty"`
	UserID        int64                    `json:"user_id"`
}

// CreateDocumentResponse returns the identifier of the issued document.
type CreateDocumentResponse struct {
	ID int64 `json:"id"`
}

// DocumentParty is the frozen client or company snapshot on a document.
type DocumentParty struct {
	Name       string `json:"name"`
	VATNumber  string `json:"vat_number,omitempty"`
	TaxCode    string `json:"tax_code,omitempty"`
	Address    string `json:"address,omitempty"`
	Town       string `json:"town,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Country    string `json:"country,omitempty"`
}

// DocumentLine is one line of a rendered document.
type DocumentLine struct {
	Number          int             `json:"number"`
	TicketID        *int64          `json:"ticket_id,omitempty"`
	Manual          bool            `json:"manual"`
	ArticleID       int64           `json:"article_id"`
	Description     string          `json:"description"`
	Weight          decimal.Decimal `json:"weight"`
	UnitNetPrice    decimal.Decimal `json:"unit_net_price"`
	VATPercentage   decimal.Decimal `json:"vat_percentage"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
}

// Document is the complete transport document read model.
type Document struct {
	ID         int64           `json:"id"`
	Sequence   int             `json:"sequence"`
	IssuedAt   time.Time       `json:"issued_at"`
	Note       string          `json:"note,omitempty"`
	CreatedBy  int64           `json:"created_by"`
	Client     DocumentParty   `json:"client"`
	Company    DocumentParty   `json:"company"`
	Lines      []DocumentLine  `json:"lines"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalVAT   decimal.Decimal `json:"total_vat"`
	TotalGross decimal.Decimal `json:"total_gross"`
}
