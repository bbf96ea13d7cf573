package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// EnvUploadMaxFileSize overrides the maximum upload payload size.
const EnvUploadMaxFileSize = "BACKOFFICE_UPLOAD_MAX_FILE_SIZE"

// UploadConfig contains document upload limits.
type UploadConfig struct {
	// MaxFileSize is a human-readable byte size such as "25MB".
	// Files larger than this are rejected client-side before upload.
	MaxFileSize string `toml:"max_file_size"`

	maxFileSizeBytes int64
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *UploadConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *UploadConfig) Merge(overlay *UploadConfig) {
	if overlay.MaxFileSize != "" {
		c.MaxFileSize = overlay.MaxFileSize
	}
}

// MaxFileSizeBytes returns the parsed size limit in bytes.
func (c *UploadConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeBytes
}

func (c *UploadConfig) loadDefaults() {
	if c.MaxFileSize == "" {
		c.MaxFileSize = "25MB"
	}
}

func (c *UploadConfig) loadEnv() {
	if v := os.Getenv(EnvUploadMaxFileSize); v != "" {
		c.MaxFileSize = v
	}
}

func (c *UploadConfig) validate() error {
	size, err := units.RAMInBytes(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size %q: %w", c.MaxFileSize, err)
	}
	if size < 1 {
		return fmt.Errorf("max_file_size must be positive")
	}
	c.maxFileSizeBytes = size
	return nil
}
