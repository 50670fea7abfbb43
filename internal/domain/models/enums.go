// internal/domain/models/enums.go
package models

import "strings"

// Role is a member's permission level.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
)

// AllRoles lists every valid Role.
var AllRoles = []Role{RoleAdmin, RoleModerator, RoleMember}

// ParseRole returns the Role for s, or false if s is not a known role.
func ParseRole(s string) (Role, bool) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// SubscriptionStatus tracks where a member is in the billing lifecycle.
type SubscriptionStatus string

const (
	StatusInactive SubscriptionStatus = "inactive"
	StatusActive   SubscriptionStatus = "active"
	StatusPastDue  SubscriptionStatus = "past_due"
	StatusCanceled SubscriptionStatus = "canceled"
	StatusPending  SubscriptionStatus = "pending"
)

// AllSubscriptionStatuses lists every valid SubscriptionStatus.
var AllSubscriptionStatuses = []SubscriptionStatus{
	StatusInactive, StatusActive, StatusPastDue, StatusCanceled, StatusPending,
}

// ParseSubscriptionStatus returns the status for s, or false if s is unknown.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, bool) {
	for _, st := range AllSubscriptionStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// CanPost reports whether a member in this status may post community messages.
// Past-due and pending members keep access while billing is sorted out.
func (s SubscriptionStatus) CanPost() bool {
	switch s {
	case StatusActive, StatusPastDue, StatusPending:
		return true
	}
	return false
}

// Provider is the payment provider a member subscribed through.
type Provider string

const (
	ProviderStripe  Provider = "stripe"
	ProviderPayPal  Provider = "paypal"
	ProviderInvoice Provider = "invoice"
)

// ParseProvider matches s case-insensitively against the known providers.
func ParseProvider(s string) (Provider, bool) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderStripe, ProviderPayPal, ProviderInvoice:
		return p, true
	}
	return "", false
}

// ResourceType classifies a learning resource.
type ResourceType string

const (
	ResourcePrompt ResourceType = "prompt"
	ResourceTool   ResourceType = "tool"
)

// ParseResourceType returns the ResourceType for s, or false if s is unknown.
func ParseResourceType(s string) (ResourceType, bool) {
	switch t := ResourceType(s); t {
	case ResourcePrompt, ResourceTool:
		return t, true
	}
	return "", false
}

// InvoiceStatus tracks a manual invoice request.
type InvoiceStatus string

const (
	InvoiceRequested InvoiceStatus = "requested"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
)
