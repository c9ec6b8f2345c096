/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package taaacceptancestore persists transaction author agreement acceptance
// records in MongoDB.
package taaacceptancestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustmesh/agenttrust/pkg/ledger"
	"github.com/trustmesh/agenttrust/pkg/storage/mongodb"
)

const collectionName = "taa_acceptance"

type mongoDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	RecordID  string             `bson:"recordId"`
	Digest    string             `bson:"digest"`
	Mechanism string             `bson:"mechanism"`
	Time      int64              `bson:"time"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Store manages TAA acceptance records in MongoDB.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Save appends an acceptance record. Records are never updated in place: the
// latest record wins and history is kept for audit.
func (s *Store) Save(ctx context.Context, acceptance *ledger.TAAAcceptance) error {
	collection := s.mongoClient.Database().Collection(collectionName)

	_, err := collection.InsertOne(ctx, &mongoDocument{
		RecordID:  uuid.NewString(),
		Digest:    acceptance.Digest,
		Mechanism: acceptance.Mechanism,
		Time:      acceptance.Time,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("insert acceptance record: %w", err)
	}

	return nil
}

// GetLatest returns the most recently recorded acceptance, or nil when none
// exists.
func (s *Store) GetLatest(ctx context.Context) (*ledger.TAAAcceptance, error) {
	collection := s.mongoClient.Database().Collection(collectionName)

	findOpts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	doc := &mongoDocument{}

	err := collection.FindOne(ctx, bson.D{}, findOpts).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("find latest acceptance record: %w", err)
	}

	return &ledger.TAAAcceptance{
		Digest:    doc.Digest,
		Mechanism: doc.Mechanism,
		Time:      doc.Time,
	}, nil
}
