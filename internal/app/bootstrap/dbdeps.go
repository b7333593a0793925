// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/creatorhub/internal/app/system/analytics"
	"github.com/dalemusser/creatorhub/internal/app/system/workers"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end clients and the long-lived services built on
// them. Hooks receive it by value, so everything shared is a pointer.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Analytics     *analytics.Recorder
	StatsSnapshot *workers.StatsSnapshot
}
