package test

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carewell-org/hospital/store"
)

const (
	mongoTestHost = "mongodb://127.0.0.1:27017"
	mongoTimeout  = time.Second * 5
)

var (
	Faker    = faker.NewWithSeed(rand.NewSource(time.Now().UnixNano()))
	database *mongo.Database
)

// GetTestDatabase lazily connects to the local test mongo instance and
// returns a uniquely named database for the current suite. Specs that call
// it are skipped when mongo is not reachable.
func GetTestDatabase() *mongo.Database {
	if database == nil {
		connect()
	}
	return database
}

func TeardownDatabase() {
	if database == nil {
		return
	}
	err := database.Drop(context.Background())
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	Expect(database.Client().Disconnect(ctx)).ToNot(HaveOccurred())
	database = nil
}

func connect() {
	client, err := store.NewClient(mongoTestHost)
	Expect(err).ToNot(HaveOccurred())

	ctx, cancel := context.WithTimeout(context.Background(), mongoTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		ginkgo.Skip(fmt.Sprintf("mongo is not available at %s: %v", mongoTestHost, err))
	}

	databaseName := fmt.Sprintf("hospital_test_%s_%d", Faker.Letter(), ginkgo.GinkgoParallelProcess())
	database = client.Database(databaseName)
}
