package cmd

import (
	"context"
	"net/url"
	"path"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/cobra"

	"dashring/internal/downloader"
	"dashring/internal/progress"
	"dashring/internal/ui"
)

func newDownloadCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:           "download <url>",
		Short:         "Download a URL with the indicator as the progress display",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := args[0]
			dest, err := resolveDest(rawURL, outFile)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}

			opts := optionsFromViper()
			opts.URL = rawURL
			opts.OutFile = dest

			var dl downloader.HTTP
			src := func(ctx context.Context, rep progress.Reporter) {
				dl.Fetch(ctx, rawURL, dest, rep)
			}
			if err := ui.Run(cmd.Context(), opts, src); err != nil {
				return &ExitError{Code: ExitDownloadError, Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "",
		"Destination file (default: URL basename in the current directory)")

	return cmd
}

// resolveDest picks the output path: an explicit -o wins, otherwise the last
// path segment of the URL.
func resolveDest(rawURL, outFile string) (string, error) {
	if outFile != "" {
		return outFile, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", humane.Wrap(err, "invalid download URL",
			"pass a full URL such as https://example.com/file.bin")
	}
	base := path.Base(u.Path)
	if base == "" || base == "." || base == "/" {
		return "", humane.New("cannot derive a file name from the URL",
			"pass an explicit destination with --output")
	}
	return base, nil
}
