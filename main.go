package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/resumeworks/resumeworker/internal/database"
	"github.com/streadway/amqp"
)

func main() {
	_ = godotenv.Load()
	cfg := LoadConfig()

	db, err := sql.Open("postgres", cfg.DBURL)
	if err != nil {
		log.Fatal("error opening db. err: ", err)
	}

	dbqueries := database.New(db)

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal("error creating aws config", err)
	}
	s3Client := newR2Client(awsConfig, cfg.R2.AccountID)

	// the reviewer is optional, screening is deterministic without it
	var reviewer *Reviewer
	if cfg.AI.IsConfigured() {
		reviewer, err = NewReviewer(cfg.AI)
		if err != nil {
			log.Fatalf("failed to create reviewer: %v", err)
		}
		log.Printf("AI reviewer enabled. model: %s", cfg.AI.Model)
	} else {
		log.Println("⚠️ empty GOOGLE_API_KEY in environment, AI review disabled")
	}

	conn, err := amqp.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("error connecting to RabbitMQ. err:  %v", err)
	}

	workerConfig := WorkerConfig{
		DB:                dbqueries,
		R2:                &cfg.R2,
		S3:                s3Client,
		RabbitConn:        conn,
		RabbitURL:         cfg.RabbitURL,
		Reviewer:          reviewer,
		ResumeConcurrency: cfg.ResumeConcurrency,
	}

	log.Printf("Starting %d workers consumer pool", cfg.WorkerCount)
	workerConfig.StartConsumerWorkerPool(cfg.WorkerCount)
}
