package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the mongo client together with the selected database.
type Client struct {
	*mongo.Client
	db *mongo.Database
}

// Open connects to MongoDB and pings it to validate the connection.
func Open(ctx context.Context, uri, database string) (*Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("empty mongo uri")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(ctx)
		return nil, err
	}

	return &Client{Client: c, db: c.Database(database)}, nil
}

// Database returns the configured application database.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Close disconnects the underlying client.
func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
