/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mongodb provides the MongoDB client shared by the agent's stores.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout     = 15 * time.Second
	defaultMaxPoolSize = 100
)

// Client wraps a mongo.Client bound to one database.
type Client struct {
	client       *mongo.Client
	databaseName string
	timeout      time.Duration
}

// New connects to MongoDB and returns a Client bound to databaseName.
func New(connString string, databaseName string, opts ...ClientOpt) (*Client, error) {
	op := &clientOpts{
		timeout: defaultTimeout,
	}

	for _, fn := range opts {
		fn(op)
	}

	mongoOpts := mongooptions.Client()
	mongoOpts.ApplyURI(connString)
	mongoOpts.ReadPreference = readpref.SecondaryPreferred()
	mongoOpts.MaxPoolSize = lo.ToPtr(uint64(defaultMaxPoolSize))

	if op.traceProvider != nil {
		mongoOpts.Monitor = otelmongo.NewMonitor(otelmongo.WithTracerProvider(op.traceProvider))
	}

	client, err := mongo.NewClient(mongoOpts)
	if err != nil {
		return nil, fmt.Errorf("create mongodb client: %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), op.timeout)
	defer cancel()

	if err = client.Connect(ctxWithTimeout); err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &Client{
		client:       client,
		databaseName: databaseName,
		timeout:      op.timeout,
	}, nil
}

// Database returns the database this client is bound to.
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.databaseName)
}

// Ping verifies connectivity to the deployment.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// ContextWithTimeout returns a context bounded by the client timeout.
func (c *Client) ContextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

// Close disconnects the underlying client.
func (c *Client) Close() error {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	err := c.client.Disconnect(ctxWithTimeout)
	if err != nil {
		if err.Error() == "client is disconnected" {
			return nil
		}

		return fmt.Errorf("disconnect from mongodb: %w", err)
	}

	return nil
}

type clientOpts struct {
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// ClientOpt configures New.
type ClientOpt func(opts *clientOpts)

// WithTimeout overrides the default operation timeout.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *clientOpts) {
		opts.timeout = timeout
	}
}

// WithTraceProvider enables command monitoring through the given tracer.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *clientOpts) {
		opts.traceProvider = traceProvider
	}
}
