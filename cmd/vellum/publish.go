package main

import (
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	verrors "github.com/vellum-dev/vellum/internal/errors"
	"github.com/vellum-dev/vellum/pkg/publish"
	"github.com/vellum-dev/vellum/pkg/render"
)

func publishCmd() *cobra.Command {
	var outDir string
	var bucket string
	var prefix string
	var region string
	var compact bool

	cmd := &cobra.Command{
		Use:   "publish <dir>",
		Short: "Render a site of descriptions and publish the HTML",
		Long: `Publish renders every description file under the directory and ships
the HTML (plus any static files, verbatim) to a local output directory
or an S3 bucket. A broken description stops the whole publish.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var pub publish.Publisher
			switch {
			case bucket != "":
				var opts []func(*awsconfig.LoadOptions) error
				if region != "" {
					opts = append(opts, awsconfig.WithRegion(region))
				}
				cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
				if err != nil {
					return err
				}
				pub = publish.NewS3Publisher(s3.NewFromConfig(cfg), bucket, prefix)
				info("publishing %s to s3://%s/%s", args[0], bucket, prefix)

			case outDir != "":
				pub = publish.NewDirPublisher(outDir)
				info("publishing %s to %s", args[0], outDir)

			default:
				return cliError(verrors.New("C001", verrors.CategoryConfig,
					"publish needs a destination").
					WithSuggestion("pass --out <dir> or --bucket <name>"))
			}

			r := render.New(render.Config{Compact: compact})
			if err := publish.Site(ctx, pub, args[0], r); err != nil {
				return cliError(err)
			}
			success("published %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "local output directory")
	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket name")
	cmd.Flags().StringVar(&prefix, "prefix", "", "S3 key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from environment)")
	cmd.Flags().BoolVar(&compact, "compact", false, "omit the cosmetic line breaks")
	return cmd
}
