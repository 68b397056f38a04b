package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// VersionTags are stamped into the binary at build time.
type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	if err := NewApp(info).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func NewApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "ebnf"
	app.Usage = "parse EBNF grammars"
	app.Version = info.Version
	app.Metadata = map[string]interface{}{
		"commit": info.GitCommit,
		"date":   info.BuildDate,
		"os":     info.BuildOS,
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "logrus level: panic, fatal, error, warn, info, debug or trace",
			EnvVar: "EBNF_LOG_LEVEL",
			Value:  logrus.InfoLevel.String(),
		},
	}
	app.Before = configureLogging

	app.Commands = []cli.Command{parseCommand, namesCommand}
	return app
}

func configureLogging(c *cli.Context) error {
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	if c.App.ErrWriter != nil {
		logrus.SetOutput(c.App.ErrWriter)
	}
	return nil
}
