/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

// RegisterNymResponse acknowledges a nym registration.
type RegisterNymResponse struct {
	Success bool `json:"success"`
}

// DIDVerKeyResponse carries the verification key registered for a DID.
type DIDVerKeyResponse struct {
	VerKey string `json:"verkey"`
}

// DIDEndpointResponse carries a DID's published endpoint.
type DIDEndpointResponse struct {
	Endpoint string `json:"endpoint"`
}

// NymRoleResponse carries a DID's registered role name.
type NymRoleResponse struct {
	Role string `json:"role"`
}

// TAAResponse wraps the agreement state result.
type TAAResponse struct {
	Result TAAResult `json:"result"`
}

// TAAResult describes the active agreement and this agent's acceptance state.
type TAAResult struct {
	TAARequired bool           `json:"taa_required"`
	TAARecord   *TAARecord     `json:"taa_record"`
	TAAAccepted *TAAAcceptance `json:"taa_accepted"`
}

// TAARecord is the active agreement content.
type TAARecord struct {
	Version  string `json:"version"`
	Text     string `json:"text"`
	Digest   string `json:"digest"`
	Ratified int64  `json:"ratification_ts,omitempty"`
}

// TAAAcceptance is a recorded acceptance.
type TAAAcceptance struct {
	Mechanism string `json:"mechanism"`
	Time      int64  `json:"time"`
}

// AcceptTAARequest is the acceptance submission body.
type AcceptTAARequest struct {
	Version   string `json:"version"`
	Text      string `json:"text"`
	Mechanism string `json:"mechanism"`
}
