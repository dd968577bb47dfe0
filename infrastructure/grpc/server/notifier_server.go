package server

import (
	"accelerator-hub/contract"
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"accelerator-hub/errors"
	pb "accelerator-hub/proto/hub/v1"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/types/known/structpb"
)

var validate = validator.New()

type notifyUsersInput struct {
	UserIDs []string `validate:"required,min=1,dive,required"`
	Type    string   `validate:"required,max=64"`
}

type broadcastInput struct {
	Role  string `validate:"required"`
	Event string `validate:"required,max=64"`
}

type NotifierServer struct {
	pb.UnimplementedNotifierServiceServer
	log *slog.Logger
	hub contract.IHub
}

func NewNotifierServer(log *slog.Logger, hub contract.IHub) *NotifierServer {
	return &NotifierServer{log: log, hub: hub}
}

// NotifyUsers pushes a new_notification to every connection of the given users.
func (s *NotifierServer) NotifyUsers(ctx context.Context, in *pb.NotifyUsersRequest) (*pb.DeliveryReply, error) {
	n := in.GetNotification()
	if err := check(notifyUsersInput{UserIDs: in.GetUserIds(), Type: n.GetType()}); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	data, err := opaque(n.GetData())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	delivered := s.hub.NotifyUsers(ctx, in.GetUserIds(), event.NotificationPayload{
		Type:    n.GetType(),
		Title:   n.GetTitle(),
		Message: n.GetMessage(),
		Data:    data,
	})
	s.log.Debug("Notification pushed", "users", len(in.GetUserIds()), "type", n.GetType(), "delivered", delivered)
	return &pb.DeliveryReply{Delivered: int32(delivered)}, nil
}

// BroadcastToRole pushes a named event to every connection of a role.
func (s *NotifierServer) BroadcastToRole(ctx context.Context, in *pb.BroadcastToRoleRequest) (*pb.DeliveryReply, error) {
	if err := check(broadcastInput{Role: in.GetRole(), Event: in.GetEvent()}); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	role, err := domain.ParseRole(in.GetRole())
	if err != nil {
		return nil, errors.MapToGRPCError(fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err))
	}
	data, err := opaque(in.GetData())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	delivered, err := s.hub.BroadcastToRole(ctx, role, event.Name(in.GetEvent()), data)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	s.log.Debug("Role broadcast pushed", "role", role, "event", in.GetEvent(), "delivered", delivered)
	return &pb.DeliveryReply{Delivered: int32(delivered)}, nil
}

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}

// opaque renders the data field as the JSON the clients receive.
// A missing field stays nil so that it is omitted downstream.
func opaque(data *structpb.Struct) (json.RawMessage, error) {
	if data == nil {
		return nil, nil
	}
	raw, err := json.Marshal(data.AsMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return raw, nil
}
