package types

import "time"

// ToolSubmission is a request to list a new tool, kept pending until an
// operator approves it.
type ToolSubmission struct {
	Id                  string    `json:"id"`
	ToolName            string    `json:"tool_name"`
	ToolWebsite         string    `json:"tool_website"`
	ToolCategory        string    `json:"tool_category"`
	ToolPricing         string    `json:"tool_pricing"`
	ToolDescription     string    `json:"tool_description"`
	DetailedDescription string    `json:"tool_detailed_description,omitempty"`
	Features            []string  `json:"tool_features,omitempty"`
	Tags                []string  `json:"tool_tags,omitempty"`
	ListingType         string    `json:"listing_type"`
	ContactName         string    `json:"contact_name"`
	ContactEmail        string    `json:"contact_email"`
	ContactCompany      string    `json:"contact_company,omitempty"`
	SubmissionDate      time.Time `json:"submission_date"`
	Status              string    `json:"status"`
}

// RemovalRequest is an owner's request to delist a tool.
type RemovalRequest struct {
	Id                 string    `json:"id"`
	ToolName           string    `json:"tool_name"`
	ToolWebsite        string    `json:"tool_website"`
	ToolId             string    `json:"tool_id,omitempty"`
	OwnerName          string    `json:"owner_name"`
	OwnerEmail         string    `json:"owner_email"`
	OwnerCompany       string    `json:"owner_company,omitempty"`
	VerificationMethod string    `json:"verification_method"`
	RemovalReason      string    `json:"removal_reason"`
	AdditionalDetails  string    `json:"additional_details,omitempty"`
	RequestDate        time.Time `json:"request_date"`
	Status             string    `json:"status"`
}

// ContactMessage is a plain contact-form message.
type ContactMessage struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Currency is one entry of the currency reference list.
type Currency struct {
	Id     int    `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
	Flag   string `json:"flag"`
}

// PlanPrice is one priced listing plan in a specific currency. The
// formated_price spelling is part of the wire format.
type PlanPrice struct {
	CurrencyId     int    `json:"-"`
	Code           string `json:"code"`
	PlanName       string `json:"plan_name"`
	Symbol         string `json:"symbol"`
	Price          int    `json:"price"`
	FormattedPrice string `json:"formated_price"`
}
