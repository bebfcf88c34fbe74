package database

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// ErrNotConnected is returned while no database connection has been
// established yet. Handlers never see it: the readiness middleware
// answers 503 first.
var ErrNotConnected = errors.New("database connection not ready")

var (
	mu     sync.RWMutex
	client *mongo.Client
)

// MongoURI returns the configured connection string, if any.
func MongoURI() string {
	if uri := os.Getenv("MONGODB_URL"); uri != "" {
		return uri
	}
	return os.Getenv("MONGO_URI")
}

func DatabaseName() string {
	if name := os.Getenv("MONGODB_DB"); name != "" {
		return name
	}
	return "golang-workoutdb"
}

// Connect dials MongoDB and verifies the connection with a ping. A
// missing connection string or an unreachable server is an error, never
// a crash.
func Connect(ctx context.Context) error {
	uri := MongoURI()
	if uri == "" {
		return errors.New("no database configuration found")
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return err
	}
	if err := c.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = c.Disconnect(context.Background())
		return err
	}

	mu.Lock()
	client = c
	mu.Unlock()
	return nil
}

// ConnectWithRetry keeps dialing on a fixed interval until a connection
// is established, then runs onConnect once. Meant to run in the
// background so the process can serve 503s in the meantime.
func ConnectWithRetry(ctx context.Context, retryInterval time.Duration, onConnect func(ctx context.Context)) {
	for {
		err := Connect(ctx)
		if err == nil {
			log.Info("connected to MongoDB")
			if onConnect != nil {
				onConnect(ctx)
			}
			return
		}

		log.Warnf("database connection failed: %s, retrying in %s", err, retryInterval)
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryInterval):
		}
	}
}

// Connected reports whether a database connection has been established.
func Connected() bool {
	mu.RLock()
	defer mu.RUnlock()
	return client != nil
}

// OpenCollection returns a handle to a collection of the configured
// database, or ErrNotConnected while the connection is still pending.
func OpenCollection(name string) (*mongo.Collection, error) {
	mu.RLock()
	defer mu.RUnlock()
	if client == nil {
		return nil, ErrNotConnected
	}
	return client.Database(DatabaseName()).Collection(name), nil
}

func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()
	if client == nil {
		return nil
	}
	err := client.Disconnect(ctx)
	client = nil
	return err
}
