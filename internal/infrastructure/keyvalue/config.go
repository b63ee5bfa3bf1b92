package keyvalue

type Config struct {
	URI          string
	QueryTimeout int64 `yaml:"query_timeout_in_ms"`
}
