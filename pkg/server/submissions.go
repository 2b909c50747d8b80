package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/matst80/slask-directory/pkg/common"
	"github.com/matst80/slask-directory/pkg/messaging"
	"github.com/matst80/slask-directory/pkg/types"
)

type submitInput struct {
	ToolName            string `json:"toolName"`
	ToolWebsite         string `json:"toolWebsite"`
	ToolCategory        string `json:"toolCategory"`
	ToolPricing         string `json:"toolPricing"`
	ToolDescription     string `json:"toolDescription"`
	DetailedDescription string `json:"toolDetailedDescription"`
	Features            string `json:"toolFeatures"`
	Tags                string `json:"toolTags"`
	ListingType         string `json:"listingType"`
	ContactName         string `json:"contactName"`
	ContactEmail        string `json:"contactEmail"`
	ContactCompany      string `json:"contactCompany"`
}

type removalInput struct {
	ToolName           string `json:"toolNameRemove"`
	ToolWebsite        string `json:"toolWebsiteRemove"`
	OwnerName          string `json:"ownerName"`
	OwnerEmail         string `json:"ownerEmail"`
	OwnerCompany       string `json:"ownerCompany"`
	VerificationMethod string `json:"verificationMethod"`
	RemovalReason      string `json:"removalReason"`
	AdditionalDetails  string `json:"additionalDetails"`
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, input any) bool {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(input); err != nil {
		common.WriteJson(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}

type requiredField struct {
	name  string
	value string
}

func requireFields(w http.ResponseWriter, fields []requiredField) bool {
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			common.WriteJson(w, http.StatusBadRequest, errorResponse{
				Error: "Missing required field: " + field.name,
			})
			return false
		}
	}
	return true
}

// splitList turns a free-text field into trimmed non-empty items.
func splitList(value, separator string) []string {
	parts := strings.Split(value, separator)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// SubmitTool records a new listing submission and notifies the broker.
func (ws *WebServer) SubmitTool(w http.ResponseWriter, r *http.Request) {
	common.GenericHeaders(w, r)
	input := submitInput{}
	if !decodeBody(w, r, &input) {
		return
	}
	if !requireFields(w, []requiredField{
		{"toolName", input.ToolName},
		{"toolWebsite", input.ToolWebsite},
		{"toolCategory", input.ToolCategory},
		{"toolPricing", input.ToolPricing},
		{"toolDescription", input.ToolDescription},
		{"contactName", input.ContactName},
		{"contactEmail", input.ContactEmail},
	}) {
		return
	}
	submission := &types.ToolSubmission{
		Id:                  uuid.NewString(),
		ToolName:            input.ToolName,
		ToolWebsite:         input.ToolWebsite,
		ToolCategory:        input.ToolCategory,
		ToolPricing:         string(types.NormalizePricing(input.ToolPricing)),
		ToolDescription:     input.ToolDescription,
		DetailedDescription: input.DetailedDescription,
		Features:            splitList(input.Features, "\n"),
		Tags:                splitList(input.Tags, ","),
		ListingType:         string(types.NormalizeListingType(input.ListingType)),
		ContactName:         input.ContactName,
		ContactEmail:        input.ContactEmail,
		ContactCompany:      input.ContactCompany,
		SubmissionDate:      time.Now().UTC(),
		Status:              "pending",
	}
	if err := ws.Db.AppendSubmission(submission); err != nil {
		log.Printf("Failed to store submission: %v", err)
		common.WriteJson(w, http.StatusInternalServerError, errorResponse{Error: "Could not store submission"})
		return
	}
	noSubmissions.Inc()
	ws.Events.Publish(messaging.ToolSubmittedTopic, submission)
	common.WriteJson(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Id      string `json:"id"`
	}{Success: true, Id: submission.Id})
}

// RequestRemoval records an owner's delisting request.
func (ws *WebServer) RequestRemoval(w http.ResponseWriter, r *http.Request) {
	common.GenericHeaders(w, r)
	input := removalInput{}
	if !decodeBody(w, r, &input) {
		return
	}
	if !requireFields(w, []requiredField{
		{"toolNameRemove", input.ToolName},
		{"toolWebsiteRemove", input.ToolWebsite},
		{"ownerName", input.OwnerName},
		{"ownerEmail", input.OwnerEmail},
		{"verificationMethod", input.VerificationMethod},
		{"removalReason", input.RemovalReason},
	}) {
		return
	}
	request := &types.RemovalRequest{
		Id:                 uuid.NewString(),
		ToolName:           input.ToolName,
		ToolWebsite:        input.ToolWebsite,
		OwnerName:          input.OwnerName,
		OwnerEmail:         input.OwnerEmail,
		OwnerCompany:       input.OwnerCompany,
		VerificationMethod: input.VerificationMethod,
		RemovalReason:      input.RemovalReason,
		AdditionalDetails:  input.AdditionalDetails,
		RequestDate:        time.Now().UTC(),
		Status:             "pending",
	}
	for _, tool := range ws.Catalog.Tools() {
		if strings.EqualFold(tool.Name, request.ToolName) {
			request.ToolId = tool.Id
			break
		}
	}
	if err := ws.Db.AppendRemovalRequest(request); err != nil {
		log.Printf("Failed to store removal request: %v", err)
		common.WriteJson(w, http.StatusInternalServerError, errorResponse{Error: "Could not store removal request"})
		return
	}
	noRemovals.Inc()
	ws.Events.Publish(messaging.RemovalRequestedTopic, request)
	common.WriteJson(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Id      string `json:"id"`
	}{Success: true, Id: request.Id})
}

// ContactUs records a contact-form message.
func (ws *WebServer) ContactUs(w http.ResponseWriter, r *http.Request) {
	common.GenericHeaders(w, r)
	input := contactInput{}
	if !decodeBody(w, r, &input) {
		return
	}
	if !requireFields(w, []requiredField{
		{"name", input.Name},
		{"email", input.Email},
		{"message", input.Message},
	}) {
		return
	}
	message := &types.ContactMessage{
		Id:         uuid.NewString(),
		Name:       input.Name,
		Email:      input.Email,
		Subject:    input.Subject,
		Message:    input.Message,
		ReceivedAt: time.Now().UTC(),
	}
	if err := ws.Db.AppendContactMessage(message); err != nil {
		log.Printf("Failed to store contact message: %v", err)
		common.WriteJson(w, http.StatusInternalServerError, errorResponse{Error: "Could not store message"})
		return
	}
	noContacts.Inc()
	ws.Events.Publish(messaging.ContactReceivedTopic, message)
	common.WriteJson(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}
