package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"locus-bot/internal/config"
	"locus-bot/internal/repository/model"
)

const (
	databaseName     = "locus-bot"
	xpCollectionName = "xp"
)

type mongoRepository struct {
	database *mongo.Database

	xpCollection *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (XpRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	database := client.Database(databaseName)
	repo := &mongoRepository{
		database:     database,
		xpCollection: database.Collection(xpCollectionName),
	}

	if err := repo.createIndexes(ctx); err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	return repo, nil
}

func (m *mongoRepository) createIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.xpCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "guildId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetName("guildId_userId").SetUnique(true),
	})
	return err
}

func (m *mongoRepository) GetXpRecord(ctx context.Context, guildId string, userId string) (*model.XpRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result model.XpRecord
	err := m.xpCollection.FindOne(ctx, xpFilter(guildId, userId)).Decode(&result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (m *mongoRepository) CreateXpRecord(ctx context.Context, record *model.XpRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.xpCollection.InsertOne(ctx, record)
	return err
}

func (m *mongoRepository) UpdateXpRecord(ctx context.Context, record *model.XpRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := m.xpCollection.UpdateOne(ctx, xpFilter(record.GuildId, record.UserId), bson.M{"$set": bson.M{
		"userName": record.UserName,
		"xpAmount": record.XpAmount,
		"lastXp":   record.LastXp,
	}})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func xpFilter(guildId string, userId string) bson.D {
	return bson.D{{Key: "guildId", Value: guildId}, {Key: "userId", Value: userId}}
}
