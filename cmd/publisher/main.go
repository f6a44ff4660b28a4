package main

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"vendorflow/internal/configs"
	"vendorflow/internal/delivery/kafka"
	"vendorflow/internal/models"
)

// Replays a designer feed file onto the catalog topic, one message per designer.
func main() {
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	if err := cfg.ConfigureLogger(); err != nil {
		logrus.Fatalf("logger: %s", err)
	}

	body, err := os.ReadFile(cfg.CatalogFile)
	if err != nil {
		logrus.Fatalf("read catalog file: %s", err)
	}

	var designers []models.CatalogDesigner
	if err := json.Unmarshal(body, &designers); err != nil {
		logrus.Fatalf("decode catalog file: %s", err)
	}

	pub, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaCatalogTopic)
	if err != nil {
		logrus.Fatalf("kafka publisher connect error: %s", err)
	}
	defer func() {
		if cerr := pub.Close(); cerr != nil {
			logrus.Errorf("publisher close: %v", cerr)
		}
	}()

	ctx := context.Background()
	for _, d := range designers {
		payload, err := json.Marshal(d)
		if err != nil {
			logrus.Fatalf("encode designer %d: %s", d.ID, err)
		}
		if err := pub.Publish(ctx, []byte(strconv.Itoa(d.ID)), payload); err != nil {
			logrus.Fatalf("publish designer %d: %s", d.ID, err)
		}
		logrus.WithField("designer_id", d.ID).Debug("designer published")
	}
	logrus.Printf("published %d designers to %s", len(designers), cfg.KafkaCatalogTopic)
}
