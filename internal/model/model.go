// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// DateKey is a calendar day formatted as YYYY-MM-DD.
type DateKey string

// DateLayout is the time layout of a DateKey.
const DateLayout = "2006-01-02"

// Tokens is the credential returned by a successful owner login.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// Owner is a shop owner account. Passwords are never stored in plaintext.
type Owner struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	PwdHash   []byte    // Argon2id(password, SaltAuth)
	SaltAuth  []byte    // per-owner auth salt
	CreatedAt time.Time
}

// Shop is the configuration row of a single queue.
type Shop struct {
	ID            uuid.UUID // immutable, assigned at creation
	OwnerID       uuid.UUID // FK -> owners.id, at most one shop per owner
	Code          string    // normalized public lookup key, unique
	Name          string    // display name
	ServingNumber int64     // last called token, 0 after reset
	LastResetDate DateKey   // day of the last serving-counter reset
	IsOpen        bool      // owner gate, false after every rollover
	UpdatedAt     time.Time // maintained by DB trigger
}

// ShopPatch is a partial update of a shop row; nil fields are left unchanged.
type ShopPatch struct {
	Code   *string
	Name   *string
	IsOpen *bool
}

// Empty reports whether the patch changes nothing.
func (p ShopPatch) Empty() bool {
	return p.Code == nil && p.Name == nil && p.IsOpen == nil
}

// Token is a single ledger record, unique per (ShopID, IssueDate, SessionID).
type Token struct {
	ShopID         uuid.UUID
	IssueDate      DateKey
	SessionID      string
	SequenceNumber int64 // >= 1, increasing per shop and day
	Expired        bool  // skipped by the serving counter
	CreatedAt      time.Time
}

// Status is the derived queue state, computed on every read.
type Status string

const (
	StatusActive      Status = "active"
	StatusOwnerClosed Status = "owner_closed"
	StatusInactive    Status = "inactive"
)

// ShopState is a shop projected for display surfaces.
type ShopState struct {
	Shop          Shop
	Status        Status
	Issued        int64 // highest sequence issued today
	Waiting       int64 // max(0, Issued - ServingNumber)
	DaysRemaining int   // days left in the distribution period
}

// IssueResult is returned by a successful token request.
type IssueResult struct {
	Number        int64
	AlreadyIssued bool // the session already held this number today
	Serving       int64
	Status        Status
}

// TokenState describes a session's token relative to the serving counter.
type TokenState struct {
	Number  int64
	Expired bool
	Called  bool  // Number <= serving
	Ahead   int64 // tokens before this one are called
	Serving int64
}

// ShopUpdate is the realtime notification payload for a shop row change.
type ShopUpdate struct {
	ShopID        uuid.UUID `json:"shop_id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	ServingNumber int64     `json:"serving_number"`
	IsOpen        bool      `json:"is_open"`
}

// UpdateOf builds the notification payload of a shop row.
func UpdateOf(s Shop) ShopUpdate {
	return ShopUpdate{ShopID: s.ID, Code: s.Code, Name: s.Name, ServingNumber: s.ServingNumber, IsOpen: s.IsOpen}
}
