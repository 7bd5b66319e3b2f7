package vision

import (
	"github.com/ValentinKolb/vcc/cmd/util"
	"github.com/ValentinKolb/vcc/rpc/client"
	"github.com/spf13/cobra"
)

var (
	vcc *client.Client

	// Commands are the client commands, they are added to the root command
	Commands = []*cobra.Command{
		pingCmd,
		stateCmd,
		taskStateCmd,
		cancelCmd,
		quitCmd,
		stopTaskCmd,
		logLevelCmd,
		callCmd,
		perfTestCmd,
	}
)

func init() {
	for _, cmd := range Commands {
		util.SetupRPCClientFlags(cmd)
		if cmd.PreRunE == nil {
			cmd.PreRunE = setupClient
		}
		cmd.PostRunE = closeClient
	}
}

// setupClient creates the client of the vision controller
func setupClient(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	vcc, err = util.NewClient()
	return err
}

func closeClient(*cobra.Command, []string) error {
	if vcc == nil {
		return nil
	}
	return vcc.Close()
}
