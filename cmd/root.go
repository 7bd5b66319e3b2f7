package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/vcc/cmd/mock"
	"github.com/ValentinKolb/vcc/cmd/util"
	"github.com/ValentinKolb/vcc/cmd/vision"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "vcc",
		Short: "vision controller client",
		Long: fmt.Sprintf(`vcc (v%s)

A client for the vision controller. It sends commands over two independent
channels (command and config) and reports every failure with a typed error code.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of vcc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vcc v%s\n", Version)
		},
	}
)

func init() {
	cobra.OnInitialize(util.InitConfig)

	RootCmd.AddCommand(vision.Commands...)
	RootCmd.AddCommand(mock.MockCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
