package repo

import (
	"StudyVault/config"
	"StudyVault/model"
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Mongo *mongo.Client
var Database *mongo.Database
var Files *mongo.Collection
var Assignments *mongo.Collection

// connectMongo opens a client and pings the server.
func connectMongo(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalln("init mongo fail:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalln("ping mongo fail:", err)
	}
	return client
}

// bindCollections wires the package-level collection handles.
func bindCollections(db *mongo.Database) {
	Database = db
	Files = db.Collection(model.FileRecord{}.CollectionName())
	Assignments = db.Collection(model.AssignmentRecord{}.CollectionName())
}

// ensureIndexes creates the query indexes used by the list commands.
func ensureIndexes(ctx context.Context) {
	fileIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "subject", Value: 1}, {Key: "chapter", Value: 1}}},
	}
	if _, err := Files.Indexes().CreateMany(ctx, fileIdx); err != nil {
		log.Printf("create files indexes failed: %v", err)
	}
	assignmentIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "subject", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "deadline", Value: 1}}},
	}
	if _, err := Assignments.Indexes().CreateMany(ctx, assignmentIdx); err != nil {
		log.Printf("create assignments indexes failed: %v", err)
	}
}

// InitMongo initializes the main MongoDB connection.
func InitMongo() {
	client := connectMongo(config.AppConfig.MongoURI)
	Mongo = client
	bindCollections(client.Database(config.AppConfig.MongoDB))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ensureIndexes(ctx)
	log.Println("init mongo success")
}

// InitMongoTest initializes the test MongoDB connection.
func InitMongoTest() {
	client := connectMongo(config.AppConfig.MongoURI)
	Mongo = client
	bindCollections(client.Database(config.AppConfig.MongoDBTest))
	log.Println("init mongo success")
}
