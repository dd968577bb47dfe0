package e2e

import (
	"accelerator-hub/auth"
	"accelerator-hub/domain"
	"accelerator-hub/infrastructure/grpc/client"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseHubSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseHubSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.WsURL == "" {
		s.T().Skip("HUB_WS_URL is not set, no hub to test against")
	}
	s.Require().NotEmpty(s.Config.JwtSecret, "JWT_SECRET is required to mint tokens")
}

func (s *BaseHubSuite) header(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Dial opens a WebSocket session for the identity and closes it at cleanup.
func (s *BaseHubSuite) Dial(name string, identity domain.Identity) *websocket.Conn {
	s.header(name)
	token, err := auth.GenerateToken([]byte(s.Config.JwtSecret), identity, time.Minute)
	s.Require().NoError(err)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	header.Set("Origin", s.Config.Origin)
	conn, resp, err := websocket.DefaultDialer.Dial(s.Config.WsURL, header)
	s.Require().NoError(err, "Failed to connect to hub at "+s.Config.WsURL)
	_ = resp.Body.Close()
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

func (s *BaseHubSuite) Send(conn *websocket.Conn, kind string, payload any) {
	frame, err := json.Marshal(map[string]any{"kind": kind, "payload": payload})
	s.Require().NoError(err)
	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, frame))
}

type Received struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// Expect reads frames until one with the given event name shows up.
func (s *BaseHubSuite) Expect(conn *websocket.Conn, eventName string) Received {
	deadline := time.Now().Add(5 * time.Second)
	s.Require().NoError(conn.SetReadDeadline(deadline))
	for {
		_, raw, err := conn.ReadMessage()
		s.Require().NoError(err, "waiting for "+eventName)
		var r Received
		s.Require().NoError(json.Unmarshal(raw, &r))
		if r.Event == eventName {
			return r
		}
		s.T().Logf("skipping %s while waiting for %s", r.Event, eventName)
	}
}

// WithNotifier provides a notifier client within a contextual test step.
func (s *BaseHubSuite) WithNotifier(name string, fn func(ctx context.Context, notifier *client.NotifierClient)) {
	s.header(name)
	marshaler := protojson.MarshalOptions{Multiline: true, EmitUnpopulated: true}

	conn, err := grpc.NewClient(s.Config.GrpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err == nil {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			s.T().Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.GrpcAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, client.NewNotifierClient(conn, s.Config.NotifierKey))
}
