package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mikehquan19/residence-scraper/object"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// LoadMongoConfig reads MONGO_URI and MONGO_DB, after loading .env if there is one
func LoadMongoConfig() (MongoConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return MongoConfig{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := MongoConfig{
		URI:        os.Getenv("MONGO_URI"),
		Database:   os.Getenv("MONGO_DB"),
		Collection: MONGO_COLLECTION,
	}
	if cfg.URI == "" {
		return MongoConfig{}, errors.New("MONGO_URI is not set")
	}
	if cfg.Database == "" {
		cfg.Database = MONGO_DB
	}
	return cfg, nil
}

// upsertBuildings writes every building keyed by its URL, so re-running the
// pipeline replaces the previous scrape instead of duplicating it
func upsertBuildings(ctx context.Context, collection *mongo.Collection, buildings []object.Building) (int, error) {
	upserted := 0
	for _, building := range buildings {
		if building.Url == "" {
			slog.WarnContext(ctx, "skipping building without URL", "name", building.Name)
			continue
		}

		_, err := collection.UpdateOne(ctx,
			bson.M{"url": building.Url},
			bson.M{"$set": building},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return upserted, fmt.Errorf("failed to upsert %s: %w", building.Url, err)
		}
		upserted++
	}
	return upserted, nil
}

// UploadBuildings reads the detail CSV and upserts it into Mongo
func UploadBuildings(ctx context.Context, cfg MongoConfig, inPath string) error {
	inFile, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer inFile.Close()
	buildings, err := readBuildings(inFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to Mongo: %w", err)
	}
	defer client.Disconnect(context.Background())

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	upserted, err := upsertBuildings(ctx, collection, buildings)
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %d buildings to %s.%s\n", upserted, cfg.Database, cfg.Collection)
	return nil
}
