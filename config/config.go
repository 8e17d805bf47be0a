package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timewindow"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys, also used as flag names.
const (
	KeyThreshold = "threshold"
	KeyFormat    = "format"
	KeyLogLevel  = "log-level"
	KeySource    = "source"
	KeyURI       = "uri"
	KeyBucket    = "bucket"
	KeyRegion    = "region"
	KeyEndpoint  = "endpoint"
	KeyWorkers   = "workers"
)

const EnvPrefix = "TWCLI"

// Sources a CLI can read documents from.
const (
	SourceDisk = "disk"
	SourceS3   = "s3"
)

type Config struct {
	Threshold float64
	Format    string
	LogLevel  string

	Source   string
	URI      string
	Bucket   string
	Region   string
	Endpoint string
	Workers  int
}

// New returns a viper instance holding the defaults, reading environment variables
// prefixed with TWCLI_ (TWCLI_LOG_LEVEL for log-level).
func New(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)

	v.SetDefault(KeyThreshold, 0)
	v.SetDefault(KeyFormat, timewindow.LayoutHM)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySource, SourceDisk)
	v.SetDefault(KeyURI, ".")
	v.SetDefault(KeyBucket, "")
	v.SetDefault(KeyRegion, "us-east-1")
	v.SetDefault(KeyEndpoint, "")
	v.SetDefault(KeyWorkers, 4)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags adds one flag per key to flags and binds them to v.
func RegisterFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.Float64(KeyThreshold, 0, "seconds of tolerance when joining or intersecting windows")
	flags.String(KeyFormat, timewindow.LayoutHM, "output layout, HH:MM or HH:MM:SS")
	flags.String(KeyLogLevel, "info", "log level (debug, info, error)")
	flags.StringP(KeySource, "s", SourceDisk, "where documents are read from (disk, s3)")
	flags.StringP(KeyURI, "u", ".", "base directory of the disk source")
	flags.String(KeyBucket, "", "bucket of the s3 source")
	flags.String(KeyRegion, "us-east-1", "region of the s3 source")
	flags.String(KeyEndpoint, "", "endpoint override of the s3 source")
	flags.Int(KeyWorkers, 4, "documents evaluated at once by batch")

	if err := v.BindPFlags(flags); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	return nil
}

// Load reads the optional config file at path and returns the merged configuration.
// Flags override the environment, which overrides the file, which overrides defaults.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := Config{
		Threshold: v.GetFloat64(KeyThreshold),
		Format:    v.GetString(KeyFormat),
		LogLevel:  v.GetString(KeyLogLevel),
		Source:    v.GetString(KeySource),
		URI:       v.GetString(KeyURI),
		Bucket:    v.GetString(KeyBucket),
		Region:    v.GetString(KeyRegion),
		Endpoint:  v.GetString(KeyEndpoint),
		Workers:   v.GetInt(KeyWorkers),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceDisk:
	case SourceS3:
		if c.Bucket == "" {
			return errors.New("the s3 source needs a bucket")
		}
	default:
		return errors.Newf("unsupported source %q", c.Source)
	}
	if c.Threshold < 0 {
		return errors.Newf("threshold %v is negative", c.Threshold)
	}
	if c.Workers < 1 {
		return errors.Newf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
