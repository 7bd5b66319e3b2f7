// Package client implements the client of the vision controller.
//
// A Client owns one connection pool with two independent channels: the command
// channel for vision tasks and the config channel for state and configuration
// queries. At most one call is in flight per channel, a call on the config channel
// never waits for a slow call on the command channel.
//
// Engine:
//
//   - Call encodes the request once, sends it and waits for the reply until the
//     deadline computed at call entry. A failed send is retried exactly once on a
//     new connection, unless the deadline has already passed.
//
//   - A connection is only reused after a complete round trip. Timeouts, receive
//     errors and fire-and-forget calls discard it, so a late reply can never be
//     read by the next call.
//
//   - Every failure is a *common.ClientError. Error replies of the vision
//     controller are UnexpectedReturnData errors whose message is the remote
//     description, unchanged.
//
// Facade:
//
// commands_gen.go is generated from commands.yaml by cmd/vccgen. It adds one typed
// method per vision controller command (e.g. Ping, StartObjectDetectionTask) with a
// Params struct, the per-command default timeout and, where supported, a
// FireAndForget variant. A timeout of 0 selects the default of the command.
//
// Usage Example:
//
//	c, err := client.New("192.168.1.10", 5718, 200, "robot-1")
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	res, err := c.StartObjectDetectionTask(client.StartObjectDetectionTaskParams{
//		SystemState: &common.SystemState{SensorName: "camera-1"},
//	}, 0)
//	if errors.Is(err, common.ErrCallTimeout) {
//		// ...
//	}
package client
