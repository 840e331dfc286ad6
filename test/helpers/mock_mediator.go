package helpers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/andrescamacho/factory-planner/internal/application/common"
)

// MockMediator is a test double for the Mediator interface.
// Adapters under test send requests through it without real handlers.
type MockMediator struct {
	sendFunc func(ctx context.Context, request common.Request) (common.Response, error)
	callLog  []string
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request common.Request) (common.Response, error) {
	m.callLog = append(m.callLog, common.RequestName(request))

	if m.sendFunc != nil {
		return m.sendFunc(ctx, request)
	}
	return nil, fmt.Errorf("unsupported request type: %T", request)
}

// Register is a no-op; requests are answered by the send function
func (m *MockMediator) Register(requestType reflect.Type, handler common.RequestHandler) error {
	return nil
}

// Use is a no-op; middleware is not applied by the mock
func (m *MockMediator) Use(middleware common.Middleware) {}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request common.Request) (common.Response, error)) {
	m.sendFunc = fn
}

// GetCallLog returns the names of the requests that were sent
func (m *MockMediator) GetCallLog() []string {
	return append([]string{}, m.callLog...)
}

// ClearCallLog clears the call log
func (m *MockMediator) ClearCallLog() {
	m.callLog = []string{}
}
