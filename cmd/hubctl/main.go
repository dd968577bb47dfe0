// Command hubctl is the operator tool of the hub: it mints test tokens,
// manages the user directory, listens on a live hub and pushes
// notifications through the gRPC notifier.
package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings are read from the environment, flags override them.
type Settings struct {
	WsURL             string `envconfig:"HUB_WS_URL" default:"ws://localhost:5000/ws"`
	GrpcAddr          string `envconfig:"HUB_GRPC_ADDR" default:"localhost:50051"`
	JwtSecret         string `envconfig:"JWT_SECRET"`
	NotifierKey       string `envconfig:"NOTIFIER_KEY"`
	UserDirectoryPath string `envconfig:"USER_DIRECTORY_PATH" default:"./data/users"`
	Colours           bool   `envconfig:"HUBCTL_COLOURS" default:"true"`
}

type command struct {
	name    string
	summary string
	run     func(settings Settings, args []string) error
}

var commands = []command{
	{name: "token", summary: "mint a signed token for a user", run: runToken},
	{name: "users", summary: "add, disable or list directory users", run: runUsers},
	{name: "listen", summary: "connect to a hub and print every event", run: runListen},
	{name: "notify", summary: "push a notification through the gRPC notifier", run: runNotify},
	{name: "hash-key", summary: "hash a notifier service key for NOTIFIER_KEY_HASH", run: runHashKey},
}

func main() {
	_ = godotenv.Load()
	var settings Settings
	if err := envconfig.Process("", &settings); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}
	if !settings.Colours {
		color.Disable()
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	for _, cmd := range commands {
		if cmd.name == os.Args[1] {
			if err := cmd.run(settings, os.Args[2:]); err != nil {
				color.Error.Println(err)
				os.Exit(1)
			}
			return
		}
	}
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: hubctl <command> [flags]")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-9s %s\n", cmd.name, cmd.summary)
	}
}
