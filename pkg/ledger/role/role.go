/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package role maps ledger authorization levels to their textual and numeric
// wire representations.
package role

import "strconv"

// Role is a ledger authorization level attached to a nym.
type Role int

const (
	// Trustee may manage other privileged nyms.
	Trustee Role = 0
	// Steward operates a validator node.
	Steward Role = 2
	// Endorser may write transactions on behalf of other identity owners.
	Endorser Role = 101
	// NetworkMonitor may read validator metrics.
	NetworkMonitor Role = 201

	// User marks a nym with no ledger-write privilege. It has no numeric
	// code and is written to the ledger as an empty role token.
	User Role = -1

	// Unknown is the resolution of any code or token that does not name a
	// registered role. It is distinct from User so callers can tell
	// "explicitly no privilege" from malformed input.
	Unknown Role = -2
)

// AuthorizationNone is the authorization level of roles without ledger-write
// privilege. Every write-capable role resolves to a level above it.
const AuthorizationNone = 0

//nolint:gochecknoglobals
var names = map[Role]string{
	Trustee:        "TRUSTEE",
	Steward:        "STEWARD",
	Endorser:       "ENDORSER",
	NetworkMonitor: "NETWORK_MONITOR",
	User:           "USER",
	Unknown:        "UNKNOWN",
}

//nolint:gochecknoglobals
var byName = map[string]Role{
	"TRUSTEE":         Trustee,
	"STEWARD":         Steward,
	"ENDORSER":        Endorser,
	"NETWORK_MONITOR": NetworkMonitor,
	"USER":            User,
}

// aliases are accepted on input but are not canonical names. "reset" strips
// ledger-write privilege, which the ledger encodes the same way as USER.
//
//nolint:gochecknoglobals
var aliases = map[string]Role{
	"reset": User,
}

//nolint:gochecknoglobals
var levels = map[Role]int{
	Trustee:        4,
	Steward:        3,
	Endorser:       2,
	NetworkMonitor: 1,
}

// FromCode resolves a numeric ledger role code. Codes that name no registered
// role resolve to Unknown, never to a privileged role.
func FromCode(code int) Role {
	switch Role(code) {
	case Trustee, Steward, Endorser, NetworkMonitor:
		return Role(code)
	default:
		return Unknown
	}
}

// FromName resolves a canonical role name or a registered alias. Matching is
// case-sensitive. The empty string is the wire encoding of User.
func FromName(name string) Role {
	if name == "" {
		return User
	}

	if r, ok := byName[name]; ok {
		return r
	}

	if r, ok := aliases[name]; ok {
		return r
	}

	return Unknown
}

// FromToken resolves a raw ledger role token, which may be empty (User), a
// decimal code, a canonical name, or an alias.
func FromToken(token string) Role {
	if code, err := strconv.Atoi(token); err == nil {
		return FromCode(code)
	}

	return FromName(token)
}

// Name returns the canonical name of the role.
func (r Role) Name() string {
	if name, ok := names[r]; ok {
		return name
	}

	return names[Unknown]
}

// Code returns the numeric ledger code of the role. The second return is
// false for User and Unknown, which have no code.
func (r Role) Code() (int, bool) {
	switch r {
	case Trustee, Steward, Endorser, NetworkMonitor:
		return int(r), true
	default:
		return 0, false
	}
}

// Token returns the wire encoding of the role for a nym transaction. User has
// no token: privilege is expressed as absence of role.
func (r Role) Token() string {
	code, ok := r.Code()
	if !ok {
		return ""
	}

	return strconv.Itoa(code)
}

// AuthorizationLevel orders roles by ledger-write privilege. User and Unknown
// return AuthorizationNone, below every write-capable role.
func (r Role) AuthorizationLevel() int {
	if level, ok := levels[r]; ok {
		return level
	}

	return AuthorizationNone
}

// CanWriteLedger reports whether the role grants ledger-write privilege.
func (r Role) CanWriteLedger() bool {
	return r.AuthorizationLevel() > AuthorizationNone
}
