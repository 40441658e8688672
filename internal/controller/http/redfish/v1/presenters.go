package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bmc-toolkit/hwisolation/internal/entity"
)

const (
	headerODataVersion = "OData-Version"
	headerContentType  = "Content-Type"

	contentTypeJSON = "application/json; charset=utf-8"
	odataVersion    = "4.0"

	logEntryPrefix = "/redfish/v1/Systems/system/LogServices/EventLog/Entries/"
)

// RedfishError is the error envelope of a failed request.
type RedfishError struct {
	Error RedfishErrorBody `json:"error"`
}

// RedfishErrorBody -.
type RedfishErrorBody struct {
	Code                string        `json:"code"`
	Message             string        `json:"message"`
	MessageExtendedInfo []MessageInfo `json:"@Message.ExtendedInfo"`
}

// MessageInfo is one annotation in a message body or error envelope.
type MessageInfo struct {
	ODataType   string   `json:"@odata.type"`
	MessageID   string   `json:"MessageId"`
	Message     string   `json:"Message"`
	MessageArgs []string `json:"MessageArgs,omitempty"`
	Severity    string   `json:"Severity,omitempty"`
}

// Condition is the Redfish representation of one status condition.
type Condition struct {
	Timestamp   string   `json:"Timestamp,omitempty"`
	Severity    string   `json:"Severity,omitempty"`
	Message     string   `json:"Message,omitempty"`
	MessageID   string   `json:"MessageId,omitempty"`
	MessageArgs []string `json:"MessageArgs,omitempty"`
	LogEntry    *IDRef   `json:"LogEntry,omitempty"`
}

// IDRef is an @odata.id reference to another resource.
type IDRef struct {
	ODataID string `json:"@odata.id"`
}

// Status is the Redfish Status object with isolation conditions attached.
type Status struct {
	State      string      `json:"State"`
	Health     string      `json:"Health,omitempty"`
	Conditions []Condition `json:"Conditions,omitempty"`
}

// outcomeStatusCodes maps outcome kinds to HTTP status codes.
var outcomeStatusCodes = map[entity.OutcomeKind]int{
	entity.OutcomeSuccess:           http.StatusOK,
	entity.OutcomeResourceNotFound:  http.StatusNotFound,
	entity.OutcomeValidationError:   http.StatusBadRequest,
	entity.OutcomePermissionDenied:  http.StatusForbidden,
	entity.OutcomeResourceBusy:      http.StatusServiceUnavailable,
	entity.OutcomeAlreadyExists:     http.StatusConflict,
	entity.OutcomeResourceExhausted: http.StatusInsufficientStorage,
	entity.OutcomeInternalError:     http.StatusInternalServerError,
}

// setRedfishHeaders sets Redfish-compliant headers.
func setRedfishHeaders(c *gin.Context) {
	c.Header(headerContentType, contentTypeJSON)
	c.Header(headerODataVersion, odataVersion)
	c.Header("Cache-Control", "no-cache")
}

func messageInfo(outcome entity.OutcomeRecord) MessageInfo {
	return MessageInfo{
		ODataType:   "#Message.v1_1_1.Message",
		MessageID:   outcome.MessageID,
		Message:     outcome.Message,
		MessageArgs: outcome.Args,
	}
}

// writeOutcome renders the terminal outcome of a write request.
func writeOutcome(c *gin.Context, outcome entity.OutcomeRecord) {
	setRedfishHeaders(c)

	code, ok := outcomeStatusCodes[outcome.Kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	if outcome.IsSuccess() {
		c.JSON(code, gin.H{
			"@Message.ExtendedInfo": []MessageInfo{messageInfo(outcome)},
		})

		return
	}

	c.JSON(code, RedfishError{
		Error: RedfishErrorBody{
			Code:                outcome.MessageID,
			Message:             outcome.Message,
			MessageExtendedInfo: []MessageInfo{messageInfo(outcome)},
		},
	})
}

// presentStatus converts an aggregated condition into the resource Status
// object. A resource with a fault record is disabled from system boot.
func presentStatus(condition *entity.StatusCondition) Status {
	if condition == nil {
		return Status{State: "Enabled", Health: string(entity.SeverityOK)}
	}

	presented := Condition{
		Severity:    string(condition.Severity),
		Message:     condition.Message,
		MessageID:   condition.MessageID,
		MessageArgs: condition.MessageArgs,
	}

	if !condition.Timestamp.IsZero() {
		presented.Timestamp = condition.Timestamp.Format(time.RFC3339)
	}

	if condition.LogEntryPath != "" {
		presented.LogEntry = &IDRef{ODataID: logEntryPrefix + condition.LogEntryPath.Filename()}
	}

	return Status{
		State:      "Disabled",
		Conditions: []Condition{presented},
	}
}
