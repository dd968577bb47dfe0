package main

import (
	"accelerator-hub/infrastructure/grpc/client"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func runNotify(settings Settings, args []string) error {
	flags := pflag.NewFlagSet("notify", pflag.ContinueOnError)
	addr := flags.String("addr", settings.GrpcAddr, "hub gRPC address")
	key := flags.String("key", settings.NotifierKey, "notifier service key, defaults to NOTIFIER_KEY")
	users := flags.StringSlice("users", nil, "recipient user ids")
	role := flags.String("role", "", "broadcast to a role instead of users")
	eventName := flags.String("event", "", "event name when broadcasting to a role")
	kind := flags.String("type", "info", "notification type")
	title := flags.String("title", "", "notification title")
	message := flags.StringP("message", "m", "", "notification message")
	data := flags.String("data", "", "optional JSON object sent as data")
	timeout := flags.Duration("timeout", 5*time.Second, "call timeout")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var raw json.RawMessage
	if *data != "" {
		if !json.Valid([]byte(*data)) {
			return fmt.Errorf("--data is not valid JSON")
		}
		raw = json.RawMessage(*data)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()
	notifier := client.NewNotifierClient(conn, *key)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var delivered int
	switch {
	case *role != "":
		delivered, err = notifier.BroadcastToRole(ctx, *role, *eventName, raw)
	case len(*users) > 0:
		delivered, err = notifier.NotifyUsers(ctx, *users, client.Notification{
			Type: *kind, Title: *title, Message: *message, Data: raw,
		})
	default:
		return fmt.Errorf("either --users or --role is required")
	}
	if err != nil {
		return err
	}
	fmt.Printf("Delivered to %d connection(s)\n", delivered)
	return nil
}
