// Package camundatest provides an in-memory worker.JobClient for handler tests.
package camundatest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"google.golang.org/grpc"
)

// Gateway records the job commands a handler sends. Calls outside the job
// command set panic through the nil embedded client.
type Gateway struct {
	pb.GatewayClient

	mu        sync.Mutex
	completed []*pb.CompleteJobRequest
	failed    []*pb.FailJobRequest
	thrown    []*pb.ThrowErrorRequest
}

func (g *Gateway) CompleteJob(_ context.Context, in *pb.CompleteJobRequest, _ ...grpc.CallOption) (*pb.CompleteJobResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.completed = append(g.completed, in)
	return &pb.CompleteJobResponse{}, nil
}

func (g *Gateway) FailJob(_ context.Context, in *pb.FailJobRequest, _ ...grpc.CallOption) (*pb.FailJobResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failed = append(g.failed, in)
	return &pb.FailJobResponse{}, nil
}

func (g *Gateway) ThrowError(_ context.Context, in *pb.ThrowErrorRequest, _ ...grpc.CallOption) (*pb.ThrowErrorResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.thrown = append(g.thrown, in)
	return &pb.ThrowErrorResponse{}, nil
}

// JobClient satisfies worker.JobClient on top of a recording Gateway.
type JobClient struct {
	Gateway *Gateway
}

func NewJobClient() *JobClient {
	return &JobClient{Gateway: &Gateway{}}
}

func noRetry(context.Context, error) bool { return false }

func (c *JobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	return commands.NewCompleteJobCommand(c.Gateway, noRetry)
}

func (c *JobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	return commands.NewFailJobCommand(c.Gateway, noRetry)
}

func (c *JobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	return commands.NewThrowErrorCommand(c.Gateway, noRetry)
}

func (c *JobClient) Completed() []*pb.CompleteJobRequest {
	c.Gateway.mu.Lock()
	defer c.Gateway.mu.Unlock()
	return append([]*pb.CompleteJobRequest(nil), c.Gateway.completed...)
}

func (c *JobClient) Failed() []*pb.FailJobRequest {
	c.Gateway.mu.Lock()
	defer c.Gateway.mu.Unlock()
	return append([]*pb.FailJobRequest(nil), c.Gateway.failed...)
}

func (c *JobClient) Thrown() []*pb.ThrowErrorRequest {
	c.Gateway.mu.Lock()
	defer c.Gateway.mu.Unlock()
	return append([]*pb.ThrowErrorRequest(nil), c.Gateway.thrown...)
}

// CompletedVariables decodes the variables of the only completed job.
func (c *JobClient) CompletedVariables() (map[string]interface{}, bool) {
	completed := c.Completed()
	if len(completed) != 1 {
		return nil, false
	}
	vars := map[string]interface{}{}
	if err := json.Unmarshal([]byte(completed[0].Variables), &vars); err != nil {
		return nil, false
	}
	return vars, true
}

// NewJob builds an activated job carrying variables encoded as JSON.
func NewJob(key int64, taskType string, variables interface{}) entities.Job {
	raw := "{}"
	switch v := variables.(type) {
	case nil:
	case string:
		raw = v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		raw = string(data)
	}
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		Type:               taskType,
		ProcessInstanceKey: key * 10,
		Retries:            3,
		Variables:          raw,
	}}
}
