// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/coursehub/internal/app/store/docstore"
	"github.com/dalemusser/coursehub/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end dependencies created before the router and
// released in Shutdown. The Mongo fields are nil when no MongoDB URI is
// configured; WriteLimiter is nil when write throttling is off.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database
	WriteLimiter  *ratelimit.Limiter
}

// Docs wraps the database in the document store adapter. It is valid when
// the database is nil.
func (d DBDeps) Docs() *docstore.Store {
	return docstore.New(d.MongoDatabase)
}
