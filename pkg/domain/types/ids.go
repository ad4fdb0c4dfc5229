package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RequestID    string
	AnalysisID   string
	RepositoryID string
	DeliveryID   string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewAnalysisID() AnalysisID {
	return AnalysisID(uuid.NewString())
}

func NewRepositoryID() RepositoryID {
	return RepositoryID(uuid.NewString())
}

func (x AnalysisID) String() string   { return string(x) }
func (x RepositoryID) String() string { return string(x) }
func (x DeliveryID) String() string   { return string(x) }

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	GCSBucket       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x GCSBucket) String() string       { return string(x) }

// OracleAPIKey is an API key of the bug finding service.
type OracleAPIKey string

func (x OracleAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x OracleAPIKey) String() string {
	return "***********"
}

// DatabaseURL is a PostgreSQL connection string. It may contain a password.
type DatabaseURL string

func (x DatabaseURL) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseURL) String() string {
	return "***********"
}
