package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mahjongcore/common/config"
	"mahjongcore/common/log"
	"mahjongcore/common/metrics"
	"mahjongcore/internal/mahjong/engine"
	"mahjongcore/internal/mahjong/mjai"
	"mahjongcore/internal/mahjong/wall"
)

var runEpisodes int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a batch of self-play episodes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		startMetrics(cfg.DebugAddr)

		stop := make(chan struct{})
		defer close(stop)
		go metrics.LogResourceUsage(30*time.Second, stop)

		gt, err := parseGameType(cfg.GameType)
		if err != nil {
			return err
		}

		var publisher *mjai.NatsPublisher
		if cfg.NatsConfig.URL != "" {
			publisher, err = mjai.NewNatsPublisher(cfg.NatsConfig.URL, cfg.NatsSubject)
			if err != nil {
				return fmt.Errorf("connecting to nats: %w", err)
			}
			defer publisher.Close()
		}

		var sink *mjai.MongoSink
		if cfg.MongoConf.Url != "" {
			client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoConf.Url))
			if err != nil {
				return fmt.Errorf("connecting to mongo: %w", err)
			}
			defer client.Disconnect(context.Background())
			sink = mjai.NewMongoSink(client.Database(cfg.MongoDB).Collection(cfg.MongoColl))
		}

		var digests *wall.DigestCache
		if cfg.RedisConf.Addr != "" {
			client := redis.NewClient(&redis.Options{Addr: cfg.RedisConf.Addr, Password: cfg.RedisConf.Password, PoolSize: cfg.RedisConf.PoolSize})
			defer client.Close()
			digests = wall.NewDigestCache(client, 24*time.Hour)
		}

		runBatch(cfg, gt, publisher, sink, digests)
		return nil
	},
}

func init() {
	runCmd.Flags().IntVar(&runEpisodes, "episodes", 100, "number of self-play episodes to run")
}

func parseGameType(s string) (engine.GameType, error) {
	switch s {
	case "east-only":
		return engine.EastOnly, nil
	case "east-south":
		return engine.EastSouth, nil
	case "east-south-sudden-death":
		return engine.EastSouthSuddenDeath, nil
	default:
		return 0, fmt.Errorf("unknown game_type %q", s)
	}
}

func runBatch(cfg config.SelfplayConfig, gt engine.GameType, publisher *mjai.NatsPublisher, sink *mjai.MongoSink, digests *wall.DigestCache) {
	episodes := make(chan int64, runEpisodes)
	for i := 0; i < runEpisodes; i++ {
		episodes <- cfg.SeedBase + int64(i)
	}
	close(episodes)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for seed := range episodes {
				runEpisode(seed, gt, publisher, sink, digests)
			}
		}(w)
	}
	wg.Wait()
	log.Info("self-play batch complete: %d episodes", runEpisodes)
}

func runEpisode(seed int64, gt engine.GameType, publisher *mjai.NatsPublisher, sink *mjai.MongoSink, digests *wall.DigestCache) {
	e := engine.New(gt, seed)
	policy := newUniformPolicy(seed)

	pending := []int{e.ActiveSeat}
	for !e.Ended {
		if len(pending) == 0 {
			log.Error("episode seed=%d: no pending seat but game not ended, aborting", seed)
			return
		}
		seat := pending[0]
		pending = pending[1:]

		legal := e.LegalActions(seat)
		if len(legal) == 0 {
			continue
		}
		act := policy.choose(legal)
		res, err := e.Step(seat, act)
		if err != nil {
			log.Warn("episode seed=%d seat=%d: step rejected: %v", seed, seat, err)
			continue
		}
		if len(pending) == 0 {
			pending = res.ActiveSeats
		}
	}

	episodeID := fmt.Sprintf("selfplay-%d", seed)
	scores := e.Scores()
	log.Info("episode %s done: scores=%v rewards=%v", episodeID, scores, e.FinalRankRewards())

	if publisher != nil {
		if err := publisher.PublishEpisode(episodeID, e.MjaiLogs()); err != nil {
			log.Warn("episode %s: publish failed: %v", episodeID, err)
		}
	}
	if sink != nil {
		if err := sink.Archive(context.Background(), episodeID, int(gt), seed, scores, e.MjaiLogs()); err != nil {
			log.Warn("episode %s: archive failed: %v", episodeID, err)
		}
	}
	if digests != nil {
		if matched, err := digests.Record(context.Background(), e.Wall); err != nil {
			log.Warn("episode %s: digest record failed: %v", episodeID, err)
		} else if !matched {
			log.Error("episode %s: wall digest mismatch against another worker sharing this seed", episodeID)
		}
	}
}
