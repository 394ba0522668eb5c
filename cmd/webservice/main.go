package main

import (
	"context"
	"fmt"

	"github.com/arkanadhi/lokapasar/config"
	"github.com/arkanadhi/lokapasar/internal/app"
	"github.com/arkanadhi/lokapasar/internal/infrastructure/database/mongodb"
	"github.com/arkanadhi/lokapasar/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	kafkaProducer := kafka.CreateKafkaProducer(config)

	server := app.App{
		DB:            db,
		KafkaProducer: kafkaProducer,
		Config:        config,
	}

	server.Start()
}
