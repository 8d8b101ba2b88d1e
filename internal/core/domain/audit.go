package domain

import "time"

// AuditKind classifies an entry in the authentication audit trail.
type AuditKind string

const (
	AuditLoginSuccess   AuditKind = "login_success"
	AuditLoginFailure   AuditKind = "login_failure"
	AuditPasswordChange AuditKind = "password_change"
	AuditStatusChange   AuditKind = "status_change"
)

// AuditEvent records a single security-relevant action on an account.
type AuditEvent struct {
	Username  string
	Kind      AuditKind
	Detail    string
	RemoteIP  string
	Timestamp time.Time
}
