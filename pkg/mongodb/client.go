package mongodb

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// PlaceholderURI is the template value shipped in .env.example. A URI left
// at this value is treated the same as an unset one.
const PlaceholderURI = "mongodb+srv://<username>:<password>@cluster.mongodb.net/"

const connectTimeout = 30 * time.Second

type Config struct {
	ConnectionURL string
	DatabaseName  string
}

// Client wraps a connected mongo client scoped to one named database.
type Client struct {
	client   *mongo.Client
	database *mongo.Database
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.database.Collection(name)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) DatabaseName() string {
	return c.database.Name()
}

// Provider hands out a lazily created Client. The first successful Get
// caches the client for the process lifetime and later calls return it
// without re-probing. A failed attempt is not cached: the next request
// retries initialization from scratch.
type Provider struct {
	config Config

	mu     sync.Mutex
	client *Client
}

func NewProvider(config Config) *Provider {
	return &Provider{config: config}
}

func (p *Provider) Get(ctx context.Context) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	if p.config.ConnectionURL == "" {
		return nil, &ConfigurationError{Reason: "MONGODB_URI environment variable is not set. Please create a .env file with your MongoDB connection string."}
	}
	if p.config.ConnectionURL == PlaceholderURI {
		return nil, &ConfigurationError{Reason: "Please update MONGODB_URI in your .env file with your actual MongoDB connection string."}
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(p.config.ConnectionURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	// Ping the database to verify connection
	if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, &ConnectionError{Err: err}
	}

	p.client = &Client{
		client:   mongoClient,
		database: mongoClient.Database(p.config.DatabaseName),
	}
	log.Printf("✨ Connected to MongoDB database: %s", p.config.DatabaseName)

	return p.client, nil
}
