package main

import (
	"io"
	"os"

	"github.com/agux/uagen/internal/conf"
	"github.com/agux/uagen/internal/logging"
	"github.com/agux/uagen/internal/shell"
	"github.com/agux/uagen/internal/ua"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logging.Logger

var rootCmd = newRootCmd(os.Stdin, os.Stdout)

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "uagen",
		Short:         "uagen generates random browser user agent strings",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.New(in, out, newGenerator(conf.Args.Generator.Seed),
				shell.WithDefaultFile(conf.Args.Output.DefaultFile),
				shell.WithMaxRetry(conf.Args.Output.MaxRetry),
			).Run()
		},
	}
}

func newGenerator(seed uint64) *ua.Generator {
	if seed == 0 {
		return ua.NewGenerator(nil)
	}
	log.Infof("using fixed generator seed %d", seed)
	return ua.NewSeededGenerator(seed)
}

func main() {
	code := 0
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("uagen aborted: %+v", r)
			code = 1
		}
		logrus.Exit(code)
	}()

	if f := conf.ConfigFileUsed(); f != "" {
		log.Infof("config file used: %s", f)
	}
	if e := rootCmd.Execute(); e != nil {
		log.Errorf("%+v", e)
		code = 1
	}
}
