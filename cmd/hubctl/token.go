package main

import (
	"accelerator-hub/auth"
	"accelerator-hub/domain"
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

func runToken(settings Settings, args []string) error {
	flags := pflag.NewFlagSet("token", pflag.ContinueOnError)
	userID := flags.StringP("user", "u", "", "user id (subject)")
	role := flags.StringP("role", "r", string(domain.RoleEntrepreneur), "role of the user")
	ttl := flags.Duration("ttl", 24*time.Hour, "token lifetime")
	secret := flags.String("secret", settings.JwtSecret, "signing secret, defaults to JWT_SECRET")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *userID == "" {
		return fmt.Errorf("--user is required")
	}
	if *secret == "" {
		return fmt.Errorf("no signing secret: set JWT_SECRET or --secret")
	}
	parsed, err := domain.ParseRole(*role)
	if err != nil {
		return err
	}

	token, err := auth.GenerateToken([]byte(*secret), domain.Identity{UserID: *userID, Role: parsed}, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func runHashKey(_ Settings, args []string) error {
	flags := pflag.NewFlagSet("hash-key", pflag.ContinueOnError)
	key := flags.StringP("key", "k", "", "service key to hash")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *key == "" {
		return fmt.Errorf("--key is required")
	}
	hash, err := auth.HashAPIKey(*key)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
