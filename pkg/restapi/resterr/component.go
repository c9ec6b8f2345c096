/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	GovernanceSvcComponent   Component = "ledger.didgovernance-service"
	TAASvcComponent          Component = "ledger.taa-service"
	VDRProxyComponent        Component = "ledger.vdr-proxy-client"
	AcceptanceStoreComponent Component = "storage.taa-acceptance-store"
	KeyCreatorComponent      Component = "kms.key-creator"
)
