package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}

// GetterConfig carries no timeout: the returned stream stays bound to the
// caller's context and is read after the call returns.
type GetterConfig struct {
	Bucket string `yaml:"bucket"`
}

type RemoverConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}
