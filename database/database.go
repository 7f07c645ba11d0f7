// path: database/database.go
package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/config"
)

// DB owns the process-wide client pool. Build it once with Connect and pass
// it to whatever needs collections.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	cfg    config.Mongo
	log    *zap.Logger
}

// Connect dials MongoDB, verifies the connection and ensures indexes.
func Connect(ctx context.Context, cfg config.Mongo, log *zap.Logger) (*DB, error) {
	target := Resolve(cfg)

	start := time.Now()
	log.Info("mongo: connecting",
		zap.String("mode", target.Mode),
		zap.String("uri", RedactURI(target.URI)),
		zap.String("db", cfg.DB),
		zap.String("reason", target.Reason),
	)

	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().ApplyURI(target.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	d := New(c.Database(cfg.DB), cfg, log)

	if err := d.EnsureIndexes(ctx); err != nil {
		log.Warn("mongo: index creation warnings", zap.Error(err))
	}

	log.Info("mongo: connected", zap.Duration("took", time.Since(start).Round(time.Millisecond)))
	return d, nil
}

// New wraps an already connected database. Tests use it with mock clients.
func New(db *mongo.Database, cfg config.Mongo, log *zap.Logger) *DB {
	return &DB{client: db.Client(), db: db, cfg: cfg, log: log}
}

func (d *DB) Disconnect(ctx context.Context) error {
	if d == nil || d.client == nil {
		return nil
	}
	return d.client.Disconnect(ctx)
}

func (d *DB) Col(name string) *mongo.Collection {
	return d.db.Collection(name)
}

func (d *DB) Reports() *mongo.Collection {
	return d.Col(d.cfg.ReportsCollection)
}

func (d *DB) Authorities() *mongo.Collection {
	return d.Col(d.cfg.AuthoritiesCollection)
}

// EnsureIndexes creates the unique email index authorities depend on.
// Reports are read in _id order, which the default index already serves.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	ctxIdx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var errs []string
	if _, err := d.Authorities().Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		errs = append(errs, "email: "+err.Error())
	}
	if _, err := d.Authorities().Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}},
	}); err != nil {
		errs = append(errs, "name: "+err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	d.log.Debug("mongo: indexes ensured", zap.String("collection", d.cfg.AuthoritiesCollection))
	return nil
}

// Target is the connection string picked from the configured candidates.
type Target struct {
	Mode   string
	URI    string
	Reason string
}

// Resolve picks the URI to dial. In auto mode the precedence is
// remote > explicit > local.
func Resolve(cfg config.Mongo) Target {
	explicit := strings.TrimSpace(cfg.URI)
	local := strings.TrimSpace(cfg.URILocal)
	remote := strings.TrimSpace(cfg.URIRemote)

	switch strings.ToLower(cfg.Mode) {
	case "local":
		if explicit != "" {
			return Target{Mode: "local", URI: explicit, Reason: "mode=local with explicit uri"}
		}
		return Target{Mode: "local", URI: local, Reason: "mode=local using local uri"}
	case "remote":
		if remote != "" {
			return Target{Mode: "remote", URI: remote, Reason: "mode=remote"}
		}
		return Target{Mode: "local", URI: firstNonEmpty(explicit, local), Reason: "mode=remote but remote uri empty; fallback to explicit/local"}
	default:
		if remote != "" {
			return Target{Mode: "remote", URI: remote, Reason: "auto: remote uri present"}
		}
		if explicit != "" {
			return Target{Mode: "auto", URI: explicit, Reason: "auto: uri present"}
		}
		return Target{Mode: "local", URI: local, Reason: "auto: fallback to local"}
	}
}

// RedactURI masks credentials so the URI can be logged.
func RedactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}

func firstNonEmpty(v1, v2 string) string {
	if v1 != "" {
		return v1
	}
	return v2
}
