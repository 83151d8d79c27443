package util

// QuestionsPerPage 每页题目数
const QuestionsPerPage = 10

// gin.Context 键
const (
	RequestIDKey = "request_id"
	ErrorKindKey = "error_kind"
)

const RequestIDHeader = "X-Request-ID"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
