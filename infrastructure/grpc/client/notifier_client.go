package client

import (
	pb "accelerator-hub/proto/hub/v1"
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// NotifierClient pushes notifications through a remote hub, authenticating
// every call with the service key.
type NotifierClient struct {
	client     pb.NotifierServiceClient
	serviceKey string
}

func NewNotifierClient(cc grpc.ClientConnInterface, serviceKey string) *NotifierClient {
	return &NotifierClient{client: pb.NewNotifierServiceClient(cc), serviceKey: serviceKey}
}

// Notification carries an optional JSON object as Data.
type Notification struct {
	Type    string
	Title   string
	Message string
	Data    json.RawMessage
}

// NotifyUsers returns the number of connections the notification reached.
func (c *NotifierClient) NotifyUsers(ctx context.Context, userIDs []string, n Notification) (int, error) {
	data, err := toStruct(n.Data)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.NotifyUsers(c.outgoing(ctx), &pb.NotifyUsersRequest{
		UserIds: userIDs,
		Notification: &pb.Notification{
			Type:    n.Type,
			Title:   n.Title,
			Message: n.Message,
			Data:    data,
		},
	})
	if err != nil {
		return 0, err
	}
	return int(resp.GetDelivered()), nil
}

func (c *NotifierClient) BroadcastToRole(ctx context.Context, role, eventName string, data json.RawMessage) (int, error) {
	payload, err := toStruct(data)
	if err != nil {
		return 0, err
	}
	resp, err := c.client.BroadcastToRole(c.outgoing(ctx), &pb.BroadcastToRoleRequest{
		Role:  role,
		Event: eventName,
		Data:  payload,
	})
	if err != nil {
		return 0, err
	}
	return int(resp.GetDelivered()), nil
}

func (c *NotifierClient) outgoing(ctx context.Context) context.Context {
	if c.serviceKey == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.serviceKey)
}

func toStruct(raw json.RawMessage) (*structpb.Struct, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := new(structpb.Struct)
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, fmt.Errorf("data must be a JSON object: %w", err)
	}
	return out, nil
}
