package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "main")

var rootCmd = &cobra.Command{
	Use:   "healthwatch",
	Short: "Public health surveillance dashboard for the North East region",
	Long: `healthwatch serves the surveillance dashboard: community health reports,
disease trends, water quality, live alerts and AI summaries.

Run without a subcommand to start the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func initLog(level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logLevel)
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})

	if logrus.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, exportCmd, trendsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
