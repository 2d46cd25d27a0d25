package mjai

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mahjongcore/common/log"
)

// Episode is the durable record of one finished self-play game: the full
// canonical (unredacted) MJAI log plus the final scoreboard, modeled on the
// teacher's entity.GameRecord/RoundRecord split but collapsed to a single
// document per game since this engine has no per-round client audience to
// serve incrementally.
type Episode struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EpisodeID string             `bson:"episode_id"`
	GameType  int                `bson:"game_type"`
	Seed      int64              `bson:"seed"`
	Scores    [4]int             `bson:"scores"`
	Lines     []string           `bson:"lines"`
	SavedAt   time.Time          `bson:"saved_at"`
}

// MongoSink archives completed episodes, adapted from the teacher's
// GamePersister.FinalizeGame (which saves a GameRecord plus its
// RoundRecords once the match ends) into a single insert against a
// collection of MJAI-log documents.
type MongoSink struct {
	coll *mongo.Collection
}

// NewMongoSink wraps an already-connected collection handle; dialing and
// database/collection naming are the CLI driver's concern, not this
// package's.
func NewMongoSink(coll *mongo.Collection) *MongoSink {
	return &MongoSink{coll: coll}
}

// Archive persists one finished episode. Errors are logged and returned;
// callers decide whether a failed archive should abort a self-play batch.
func (s *MongoSink) Archive(ctx context.Context, episodeID string, gameType int, seed int64, scores [4]int, lines []string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	doc := Episode{
		EpisodeID: episodeID,
		GameType:  gameType,
		Seed:      seed,
		Scores:    scores,
		Lines:     lines,
		SavedAt:   time.Now(),
	}
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		log.Error("mongo archive failed for episode %s: %v", episodeID, err)
		return err
	}
	return nil
}
