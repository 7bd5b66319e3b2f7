package vision

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/vcc/cmd/util"
	"github.com/ValentinKolb/vcc/rpc/client"
	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/spf13/cobra"
)

// defaultCallTimeout is the reply timeout in seconds of commands unknown to the client
const defaultCallTimeout = 2.0

var (
	pingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Checks that the vision controller is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := vcc.Ping(client.PingParams{}, util.GetCallTimeout())
			if err != nil {
				return err
			}
			return util.PrintResult(res)
		},
	}
	stateCmd = &cobra.Command{
		Use:   "state",
		Short: "Prints the published state of the vision controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := vcc.GetPublishedStateService(client.GetPublishedStateServiceParams{}, util.GetCallTimeout())
			if err != nil {
				return err
			}
			return util.PrintResult(res)
		},
	}
	taskStateCmd = &cobra.Command{
		Use:   "task-state [taskId]",
		Short: "Prints the state of a vision task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := client.GetTaskStateServiceParams{}
			if len(args) == 1 {
				params.TaskID = args[0]
			}
			params.TaskType, _ = cmd.Flags().GetString("task-type")
			params.CycleIndex, _ = cmd.Flags().GetString("cycle-index")

			res, err := vcc.GetTaskStateService(params, util.GetCallTimeout())
			if err != nil {
				return err
			}
			return util.PrintResult(res)
		},
	}
	cancelCmd = &cobra.Command{
		Use:   "cancel",
		Short: "Cancels the current command of the vision controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := vcc.Cancel(client.CancelParams{}, util.GetCallTimeout()); err != nil {
				return err
			}
			fmt.Println("cancelled successfully")
			return nil
		},
	}
	quitCmd = &cobra.Command{
		Use:   "quit",
		Short: "Quits the vision controller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := vcc.Quit(client.QuitParams{}, util.GetCallTimeout()); err != nil {
				return err
			}
			fmt.Println("quit successfully")
			return nil
		},
	}
	stopTaskCmd = &cobra.Command{
		Use:   "stop-task [taskId...]",
		Short: "Stops vision tasks (all tasks if no id or type is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := client.StopTaskParams{}
			if len(args) > 0 {
				params.TaskIDs = args
			}
			params.TaskType, _ = cmd.Flags().GetString("task-type")
			if cmd.Flags().Changed("remove") {
				remove, _ := cmd.Flags().GetBool("remove")
				params.RemoveTask = &remove
			}
			if cmd.Flags().Changed("wait") {
				wait, _ := cmd.Flags().GetBool("wait")
				params.WaitForStop = &wait
			}

			if fireAndForget, _ := cmd.Flags().GetBool("fire-and-forget"); fireAndForget {
				if err := vcc.StopTaskFireAndForget(params, util.GetCallTimeout()); err != nil {
					return err
				}
				fmt.Println("stop sent")
				return nil
			}

			res, err := vcc.StopTask(params, util.GetCallTimeout())
			if err != nil {
				return err
			}
			return util.PrintResult(res)
		},
	}
	logLevelCmd = &cobra.Command{
		Use:   "log-level [component=level...]",
		Short: "Sets log levels of the vision controller components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := make(map[string]string, len(args))
			for _, arg := range args {
				component, level, ok := strings.Cut(arg, "=")
				if !ok || component == "" || level == "" {
					return fmt.Errorf("invalid log level %q (expected component=level)", arg)
				}
				levels[component] = level
			}

			if _, err := vcc.SetLogLevel(client.SetLogLevelParams{ComponentLevels: levels}, util.GetCallTimeout()); err != nil {
				return err
			}
			fmt.Println("log levels set successfully")
			return nil
		},
	}
	callCmd = &cobra.Command{
		Use:   "call [command] [parameters]",
		Short: "Calls any command of the vision controller with json parameters",
		Long: `Calls any command of the vision controller. Parameters are given as json object,
e.g. vcc call StopTask '{"taskType":"objectDetection"}'. Commands known to the client
are sent on their channel with their default timeout, others on the command channel
unless --config-channel is set.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := args[0]
			params := map[string]any{}
			if len(args) == 2 {
				var err error
				if params, err = util.ParseJSONObject(args[1]); err != nil {
					return err
				}
			}

			ch := common.ChannelCommand
			timeout := util.GetCallTimeout()
			if info, ok := client.LookupCommand(command); ok {
				command, ch = info.Command, info.Channel
				if timeout == 0 {
					timeout = info.TimeoutSeconds
				}
			} else if timeout == 0 {
				timeout = defaultCallTimeout
			}
			if configChannel, _ := cmd.Flags().GetBool("config-channel"); configChannel {
				ch = common.ChannelConfig
			}

			if fireAndForget, _ := cmd.Flags().GetBool("fire-and-forget"); fireAndForget {
				if err := vcc.CallFireAndForget(ch, command, params, timeout); err != nil {
					return err
				}
				fmt.Printf("%s sent on %s channel\n", command, ch)
				return nil
			}

			res, err := vcc.Call(ch, command, params, timeout)
			if err != nil {
				return err
			}
			return util.PrintResult(res)
		},
	}
)

func init() {
	taskStateCmd.Flags().String("task-type", "", util.WrapString("Type of the task if no id is given"))
	taskStateCmd.Flags().String("cycle-index", "", util.WrapString("Cycle index of the task"))

	stopTaskCmd.Flags().String("task-type", "", util.WrapString("Stop all tasks of this type"))
	stopTaskCmd.Flags().Bool("remove", false, util.WrapString("Remove the task and destroy its resources"))
	stopTaskCmd.Flags().Bool("wait", false, util.WrapString("Wait for the task to stop"))
	stopTaskCmd.Flags().Bool("fire-and-forget", false, util.WrapString("Do not wait for the reply"))

	callCmd.Flags().Bool("config-channel", false, util.WrapString("Send the command on the config channel"))
	callCmd.Flags().Bool("fire-and-forget", false, util.WrapString("Do not wait for the reply"))
}
