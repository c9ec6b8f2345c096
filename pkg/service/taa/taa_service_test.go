/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package taa

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/trustmesh/agenttrust/pkg/ledger"
)

func TestComputeDigest(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		first := ComputeDigest("1.0", "Transaction Author Agreement")
		second := ComputeDigest("1.0", "Transaction Author Agreement")

		require.Equal(t, first, second)
		require.Len(t, first, 64) // sha256 hex
	})

	t.Run("text change produces a different digest", func(t *testing.T) {
		require.NotEqual(t,
			ComputeDigest("1.0", "some text"),
			ComputeDigest("1.0", "other text"))
	})

	t.Run("version change produces a different digest", func(t *testing.T) {
		require.NotEqual(t,
			ComputeDigest("1.0", "some text"),
			ComputeDigest("1.1", "some text"))
	})
}

func TestService_CurrentAgreement(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ledgerClient := NewMockLedgerClient(gomock.NewController(t))
		ledgerClient.EXPECT().GetTxnAuthorAgreement(gomock.Any()).Return(
			&ledger.TxnAuthorAgreement{Version: "1.0", Text: "text", Required: true}, nil)

		svc := New(&Config{LedgerClient: ledgerClient})

		agreement, err := svc.CurrentAgreement(context.Background())
		require.NoError(t, err)
		require.True(t, agreement.Required)
		require.Equal(t, "1.0", agreement.Version)
	})

	t.Run("ledger unavailable", func(t *testing.T) {
		ledgerClient := NewMockLedgerClient(gomock.NewController(t))
		ledgerClient.EXPECT().GetTxnAuthorAgreement(gomock.Any()).Return(nil, ledger.ErrUnavailable)

		svc := New(&Config{LedgerClient: ledgerClient})

		_, err := svc.CurrentAgreement(context.Background())
		require.ErrorIs(t, err, ledger.ErrUnavailable)
	})
}

func TestService_RequireAccepted(t *testing.T) {
	agreement := &ledger.TxnAuthorAgreement{
		Version:  "1.0",
		Text:     "Transaction Author Agreement",
		Required: true,
	}

	t.Run("not required always passes", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Times(0)

		svc := New(&Config{Store: store})

		require.NoError(t, svc.RequireAccepted(context.Background(),
			&ledger.TxnAuthorAgreement{Required: false}))
		require.NoError(t, svc.RequireAccepted(context.Background(), nil))
	})

	t.Run("matching acceptance passes", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Return(&ledger.TAAAcceptance{
			Digest:    ComputeDigest(agreement.Version, agreement.Text),
			Mechanism: "wallet_agreement",
		}, nil)

		svc := New(&Config{Store: store})

		require.NoError(t, svc.RequireAccepted(context.Background(), agreement))
	})

	t.Run("never accepted", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Return(nil, nil)

		svc := New(&Config{Store: store})

		require.ErrorIs(t, svc.RequireAccepted(context.Background(), agreement), ErrNotAccepted)
	})

	t.Run("agreement changed since acceptance", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Return(&ledger.TAAAcceptance{
			Digest: ComputeDigest("0.9", "a previous agreement"),
		}, nil)

		svc := New(&Config{Store: store})

		require.ErrorIs(t, svc.RequireAccepted(context.Background(), agreement), ErrNotAccepted)
	})

	t.Run("store failure", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Return(nil, errors.New("store error"))

		svc := New(&Config{Store: store})

		err := svc.RequireAccepted(context.Background(), agreement)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotAccepted)
	})
}

func TestService_Accept(t *testing.T) {
	agreement := &ledger.TxnAuthorAgreement{
		Version:  "1.0",
		Text:     "Transaction Author Agreement",
		Required: true,
	}

	now := time.Date(2023, time.March, 15, 17, 42, 11, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		var saved *ledger.TAAAcceptance

		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, acceptance *ledger.TAAAcceptance) error {
				saved = acceptance
				return nil
			})

		svc := New(&Config{Store: store, Now: func() time.Time { return now }})

		acceptance, err := svc.Accept(context.Background(), agreement, "wallet_agreement")
		require.NoError(t, err)
		require.Equal(t, saved, acceptance)
		require.Equal(t, ComputeDigest(agreement.Version, agreement.Text), acceptance.Digest)
		require.Equal(t, "wallet_agreement", acceptance.Mechanism)

		// acceptance time is truncated to UTC midnight
		require.Equal(t,
			time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC).Unix(),
			acceptance.Time)
	})

	t.Run("not required", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		svc := New(&Config{Store: store})

		_, err := svc.Accept(context.Background(),
			&ledger.TxnAuthorAgreement{Version: "1.0", Text: "text", Required: false},
			"wallet_agreement")
		require.ErrorIs(t, err, ErrNotRequired)
	})

	t.Run("store failure", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("store error"))

		svc := New(&Config{Store: store})

		_, err := svc.Accept(context.Background(), agreement, "wallet_agreement")
		require.Error(t, err)
		require.Contains(t, err.Error(), "save acceptance")
	})

	t.Run("accept then require accepted", func(t *testing.T) {
		var saved *ledger.TAAAcceptance

		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, acceptance *ledger.TAAAcceptance) error {
				saved = acceptance
				return nil
			})
		store.EXPECT().GetLatest(gomock.Any()).DoAndReturn(
			func(_ context.Context) (*ledger.TAAAcceptance, error) {
				return saved, nil
			})

		svc := New(&Config{Store: store})

		_, err := svc.Accept(context.Background(), agreement, "wallet_agreement")
		require.NoError(t, err)

		require.NoError(t, svc.RequireAccepted(context.Background(), agreement))
	})
}

func TestService_LatestAcceptance(t *testing.T) {
	t.Run("none on record", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Return(nil, nil)

		svc := New(&Config{Store: store})

		acceptance, err := svc.LatestAcceptance(context.Background())
		require.NoError(t, err)
		require.Nil(t, acceptance)
	})

	t.Run("store failure", func(t *testing.T) {
		store := NewMockAcceptanceStore(gomock.NewController(t))
		store.EXPECT().GetLatest(gomock.Any()).Return(nil, errors.New("store error"))

		svc := New(&Config{Store: store})

		_, err := svc.LatestAcceptance(context.Background())
		require.Error(t, err)
	})
}
