package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/spf13/pflag"
)

func runListen(settings Settings, args []string) error {
	flags := pflag.NewFlagSet("listen", pflag.ContinueOnError)
	url := flags.String("url", settings.WsURL, "hub WebSocket endpoint")
	token := flags.StringP("token", "t", "", "bearer token (see hubctl token)")
	origin := flags.String("origin", "", "Origin header to present")
	joins := flags.StringSlice("join", nil, "chat ids to join once connected")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("--token is required")
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+*token)
	if *origin != "" {
		header.Set("Origin", *origin)
	}

	conn, resp, err := websocket.DefaultDialer.Dial(*url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("handshake failed (%s): %w", resp.Status, err)
		}
		return err
	}
	defer conn.Close()
	color.Info.Printf("Connected to %s\n", *url)

	for _, chatID := range *joins {
		frame, _ := json.Marshal(map[string]any{"kind": "join_chat", "payload": map[string]string{"chatId": chatID}})
		if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			return err
		}
		color.Comment.Printf("Joined chat %s\n", chatID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				color.Info.Println("Disconnected")
				return nil
			}
			return err
		}
		printEvent(raw)
	}
}

func printEvent(raw []byte) {
	var envelope struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		color.Warn.Printf("unreadable frame: %s\n", raw)
		return
	}
	fmt.Printf("%s %s %s\n",
		color.Gray.Sprint(time.Now().Format(time.TimeOnly)),
		color.New(color.FgGreen, color.OpBold).Sprint(envelope.Event),
		envelope.Data)
}
