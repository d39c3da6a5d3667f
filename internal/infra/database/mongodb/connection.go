package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

// Connect abre o client a partir dos parâmetros resolvidos e testa com Ping.
func Connect(ctx context.Context, params entity.MongoConnectionParams) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(params.ConnectionString).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return client, client.Database(params.Database), nil
}

// CheckConnection conecta, faz o Ping e desconecta.
func CheckConnection(ctx context.Context, params entity.MongoConnectionParams) error {
	client, _, err := Connect(ctx, params)
	if err != nil {
		return err
	}
	return client.Disconnect(ctx)
}
