package entity

const (
	MongoConfigConnectionString = "connectionString"
	MongoConfigValues           = "values"
)

// MongoCredentials is the raw credential bag handed over by the host.
// ConfigurationType selects between the override string and the discrete fields.
type MongoCredentials struct {
	ConfigurationType string `json:"configurationType"`
	ConnectionString  string `json:"connectionString"`
	Host              string `json:"host"`
	Port              int    `json:"port"`
	User              string `json:"user"`
	Password          string `json:"password"`
	Database          string `json:"database"`
}

type MongoConnectionParams struct {
	ConnectionString string `json:"connectionString"`
	Database         string `json:"database"`
}

// Item is one workflow item; only its JSON field-map is relevant here.
type Item struct {
	JSON map[string]any `json:"json"`
}
