package mongodb

import (
	"fmt"
	"strings"

	"github.com/xavierca1/flow-nodes/internal/entity"
)

// ResolveCredentials builds the connection string and database name.
// A non-empty override string wins over the discrete fields. Nothing is dialed here.
func ResolveCredentials(credentials *entity.MongoCredentials) (entity.MongoConnectionParams, error) {
	if credentials == nil {
		return entity.MongoConnectionParams{}, &entity.ConfigurationError{Message: "No credentials got returned!"}
	}

	database := strings.TrimSpace(credentials.Database)

	if credentials.ConfigurationType == entity.MongoConfigConnectionString {
		connString := strings.TrimSpace(credentials.ConnectionString)
		if connString == "" {
			return entity.MongoConnectionParams{}, &entity.ConfigurationError{
				Message: "Cannot override credentials: valid MongoDB connection string not provided",
			}
		}
		return entity.MongoConnectionParams{ConnectionString: connString, Database: database}, nil
	}

	return entity.MongoConnectionParams{
		ConnectionString: parametricConnString(credentials),
		Database:         database,
	}, nil
}

func parametricConnString(c *entity.MongoCredentials) string {
	if c.Port > 0 {
		return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.User, c.Password, c.Host, c.Port)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s", c.User, c.Password, c.Host)
}
