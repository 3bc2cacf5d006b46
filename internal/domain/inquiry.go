package domain

import "time"

// InquiryType classifies a contact inquiry.
type InquiryType string

const (
	InquiryGeneral   InquiryType = "general"
	InquiryQuote     InquiryType = "quote"
	InquiryPartner   InquiryType = "partnership"
	InquiryComplaint InquiryType = "complaint"
)

// InquiryStatus tracks a contact inquiry through handling.
type InquiryStatus string

const (
	InquiryNew      InquiryStatus = "new"
	InquiryReplied  InquiryStatus = "replied"
	InquiryArchived InquiryStatus = "archived"
)

// ContactInquiry is a message submitted through the contact form. IP, user
// agent and resolved country are captured from the request for the dashboard.
type ContactInquiry struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Type      InquiryType
	Status    InquiryStatus
	IPAddress string
	UserAgent string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
