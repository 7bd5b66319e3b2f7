package server

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ValentinKolb/vcc/rpc/common"
	"github.com/google/uuid"
)

// Version is reported by GetPublishedState
const Version = "vcc-mock/1"

// taskState is the state of one vision task of the mock
type taskState struct {
	TaskID         string
	TaskType       string
	Status         string
	InitializeMS   int64
	TaskParameters map[string]any
}

func (t *taskState) toMap() map[string]any {
	m := map[string]any{
		"taskId":            t.TaskID,
		"taskType":          t.TaskType,
		"taskStatus":        t.Status,
		"taskStatusMessage": fmt.Sprintf("task %s is %s", t.TaskID, t.Status),
		"isStopTask":        t.Status == taskStatusStopped,
		"initializeTaskMS":  t.InitializeMS,
	}
	if t.TaskParameters != nil {
		m["taskParameters"] = t.TaskParameters
	}
	return m
}

const (
	taskStatusActive  = "Active"
	taskStatusStopped = "Stopped"
)

// visionState is the state the mock keeps between requests
type visionState struct {
	mu              sync.Mutex
	tasks           map[string]*taskState
	componentLevels map[string]string
	statusMessage   string
}

func newVisionState() *visionState {
	return &visionState{
		tasks:           make(map[string]*taskState),
		componentLevels: make(map[string]string),
		statusMessage:   "Idle",
	}
}

// --------------------------------------------------------------------------
// Built-in Handlers
// --------------------------------------------------------------------------

func (s *MockServer) registerBuiltins() {
	s.Handle("Ping", s.handlePing)
	s.Handle("GetPublishedState", s.handleGetPublishedState)
	s.Handle("GetTaskState", s.handleGetTaskState)
	s.Handle("SetLogLevel", s.handleSetLogLevel)
	s.Handle("Cancel", s.handleCancel)
	s.Handle("Quit", s.handleQuit)
	s.Handle("StartObjectDetectionTask", s.startTask("objectDetection"))
	s.Handle("StartContainerDetectionTask", s.startTask("containerDetection"))
	s.Handle("StartVisualizePointCloudTask", s.startTask("visualizePointCloud"))
	s.Handle("StopTask", s.handleStopTask)
	s.Handle("ResumeTask", s.handleResumeTask)
}

func (s *MockServer) handlePing(*common.RequestEnvelope) (any, error) {
	return map[string]any{"timestamp": nowMS()}, nil
}

func (s *MockServer) handleGetPublishedState(*common.RequestEnvelope) (any, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	tasks := make([]any, 0, len(s.state.tasks))
	for _, id := range s.state.sortedTaskIDs() {
		tasks = append(tasks, s.state.tasks[id].toMap())
	}

	return map[string]any{
		"statusMessage": s.state.statusMessage,
		"tasks":         tasks,
		"timestamp":     nowMS(),
		"version":       Version,
	}, nil
}

func (s *MockServer) handleGetTaskState(req *common.RequestEnvelope) (any, error) {
	taskID, err := stringParam(req, "taskId")
	if err != nil {
		return nil, err
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if task, ok := s.state.tasks[taskID]; ok {
		return task.toMap(), nil
	}
	return map[string]any{
		"taskId":     taskID,
		"taskStatus": "NotStarted",
		"isStopTask": false,
	}, nil
}

func (s *MockServer) handleSetLogLevel(req *common.RequestEnvelope) (any, error) {
	raw, ok := req.Parameters["componentLevels"].(map[string]any)
	if !ok {
		return nil, &CommandError{Code: ErrCodeInvalidParameter, Description: "componentLevels must be an object"}
	}

	levels := make(map[string]string, len(raw))
	for component, level := range raw {
		l, ok := level.(string)
		if !ok {
			return nil, &CommandError{Code: ErrCodeInvalidParameter, Description: fmt.Sprintf("log level of %s must be a string", component)}
		}
		levels[component] = l
	}

	s.state.mu.Lock()
	for component, level := range levels {
		s.state.componentLevels[component] = level
	}
	s.state.mu.Unlock()

	Logger.Infof("Set log levels %v", levels)
	return map[string]any{}, nil
}

func (s *MockServer) handleCancel(*common.RequestEnvelope) (any, error) {
	s.state.mu.Lock()
	s.state.statusMessage = "Cancelled"
	s.state.mu.Unlock()
	return map[string]any{}, nil
}

func (s *MockServer) handleQuit(*common.RequestEnvelope) (any, error) {
	s.requestQuit()
	return map[string]any{}, nil
}

// startTask returns the handler of a Start*Task command
func (s *MockServer) startTask(taskType string) HandlerFunc {
	return func(req *common.RequestEnvelope) (any, error) {
		taskID, err := stringParam(req, "taskId")
		if err != nil {
			return nil, err
		}
		if taskID == "" {
			taskID = uuid.NewString()
		}

		var params map[string]any
		if p, ok := req.Parameters["visionTaskParameters"].(map[string]any); ok {
			params = p
		}

		s.state.mu.Lock()
		s.state.tasks[taskID] = &taskState{
			TaskID:         taskID,
			TaskType:       taskType,
			Status:         taskStatusActive,
			InitializeMS:   nowMS(),
			TaskParameters: params,
		}
		s.state.statusMessage = "Running"
		s.state.mu.Unlock()

		return map[string]any{"taskId": taskID}, nil
	}
}

func (s *MockServer) handleStopTask(req *common.RequestEnvelope) (any, error) {
	ids, err := s.matchTasks(req)
	if err != nil {
		return nil, err
	}

	removeTask, _ := req.Parameters["removeTask"].(bool)

	s.state.mu.Lock()
	for _, id := range ids {
		if removeTask {
			delete(s.state.tasks, id)
		} else {
			s.state.tasks[id].Status = taskStatusStopped
		}
	}
	s.state.mu.Unlock()

	return map[string]any{"isStopped": true}, nil
}

func (s *MockServer) handleResumeTask(req *common.RequestEnvelope) (any, error) {
	ids, err := s.matchTasks(req)
	if err != nil {
		return nil, err
	}

	s.state.mu.Lock()
	resumed := make([]any, 0, len(ids))
	for _, id := range ids {
		s.state.tasks[id].Status = taskStatusActive
		resumed = append(resumed, id)
	}
	s.state.mu.Unlock()

	return map[string]any{"taskIds": resumed}, nil
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// matchTasks returns the ids of all tasks matching the taskId, taskIds, taskType and
// taskTypes filters of the request. Without filter all tasks match
func (s *MockServer) matchTasks(req *common.RequestEnvelope) ([]string, error) {
	taskID, err := stringParam(req, "taskId")
	if err != nil {
		return nil, err
	}
	taskType, err := stringParam(req, "taskType")
	if err != nil {
		return nil, err
	}
	ids := stringListParam(req, "taskIds")
	types := stringListParam(req, "taskTypes")
	if taskID != "" {
		ids = append(ids, taskID)
	}
	if taskType != "" {
		types = append(types, taskType)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	var matched []string
	for _, id := range s.state.sortedTaskIDs() {
		task := s.state.tasks[id]
		if len(ids) > 0 && !contains(ids, id) {
			continue
		}
		if len(types) > 0 && !contains(types, task.TaskType) {
			continue
		}
		matched = append(matched, id)
	}
	return matched, nil
}

// sortedTaskIDs returns the task ids in order, mu must be held
func (v *visionState) sortedTaskIDs() []string {
	ids := make([]string, 0, len(v.tasks))
	for id := range v.tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// stringParam returns an optional string parameter
func stringParam(req *common.RequestEnvelope, key string) (string, error) {
	v, ok := req.Parameters[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &CommandError{Code: ErrCodeInvalidParameter, Description: fmt.Sprintf("%s must be a string", key)}
	}
	return s, nil
}

// stringListParam returns the strings of an optional list parameter
func stringListParam(req *common.RequestEnvelope, key string) []string {
	list, _ := req.Parameters[key].([]any)
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func nowMS() int64 {
	return time.Now().UnixMilli()
}
