package main

import (
	"context"
	"io"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/hoyle1974/timewindow/config"
	"github.com/hoyle1974/timewindow/storage"
	"github.com/hoyle1974/timewindow/telemetry"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	fs     afero.Fs
	viper  *viper.Viper

	configPath string
	strict     bool

	cfg    config.Config
	logger telemetry.Logger

	// openStore is replaced in tests
	openStore func(ctx context.Context, cfg config.Config) (storage.System, error)
}

func newApp(out, errOut io.Writer) *app {
	fs := afero.NewOsFs()
	return &app{
		out:       out,
		errOut:    errOut,
		fs:        fs,
		viper:     config.New(fs),
		logger:    telemetry.NOPLogger{},
		openStore: openStore,
	}
}

func newRootCmd(a *app) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "twcli",
		Short: "Intersect, merge and subtract time-of-day windows",
		Long: `twcli does interval arithmetic on time-of-day windows written as
"HH:MM:SS - HH:MM:SS".

Examples:
  twcli format "08:00:00 - 15:00:00"
  twcli union "08:15:00 - 10:30:00" "09:00:00 - 11:00:00" "12:00:00 - 13:00:00"
  twcli merge --threshold 1 "08:00:00 - 11:59:59" "12:00:00 - 15:59:59"
  twcli batch --source disk --uri ./schedules sets/`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "configuration file")
	flags.BoolVar(&a.strict, "strict", false, "reject malformed or inverted windows")
	if err := config.RegisterFlags(a.viper, flags); err != nil {
		return nil, err
	}

	root.AddCommand(
		newFormatCmd(a),
		newIntersectsCmd(a),
		newContainedByCmd(a),
		newUnionCmd(a),
		newDifferenceCmd(a),
		newMergeCmd(a),
		newLoadCmd(a),
		newBatchCmd(a),
	)
	return root, nil
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.viper, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := telemetry.NewZeroLogger(a.errOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = telemetry.With(logger, "run", uuid.NewString())
	a.logger.Debug("running " + cmd.CommandPath())
	return nil
}

func openStore(ctx context.Context, cfg config.Config) (storage.System, error) {
	switch cfg.Source {
	case config.SourceDisk:
		return storage.NewDiskStorage(afero.NewOsFs(), cfg.URI), nil
	case config.SourceS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, errors.Wrap(err, "loading aws config")
		}
		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
				o.UsePathStyle = true
			}
		})
		return storage.NewS3Storage(client, cfg.Bucket), nil
	}
	return nil, errors.Newf("unsupported storage system: %s", cfg.Source)
}
