package main

import (
	"accelerator-hub/domain"
	"accelerator-hub/repositories"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

func runUsers(settings Settings, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hubctl users <add|disable|enable|list> [flags]")
	}
	flags := pflag.NewFlagSet("users", pflag.ContinueOnError)
	path := flags.String("db", settings.UserDirectoryPath, "user directory path")
	userID := flags.StringP("user", "u", "", "user id")
	role := flags.StringP("role", "r", "", "role of the user")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	db, err := badger.Open(badger.DefaultOptions(*path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("unable to open user directory: %w", err)
	}
	defer db.Close()
	repo := repositories.NewUserRepository(db)

	switch args[0] {
	case "add":
		if *userID == "" || *role == "" {
			return fmt.Errorf("--user and --role are required")
		}
		parsed, err := domain.ParseRole(*role)
		if err != nil {
			return err
		}
		if err := repo.CreateUser(repositories.User{ID: *userID, Role: parsed, CreatedAt: time.Now()}); err != nil {
			return err
		}
		fmt.Printf("User %s added as %s\n", *userID, parsed)
		return nil
	case "disable", "enable":
		if *userID == "" {
			return fmt.Errorf("--user is required")
		}
		user, err := repo.GetUser(*userID)
		if err != nil {
			return err
		}
		user.Disabled = args[0] == "disable"
		if err := repo.SaveUser(user); err != nil {
			return err
		}
		fmt.Printf("User %s %sd\n", *userID, args[0])
		return nil
	case "list":
		all, err := repo.ListUsers()
		if err != nil {
			return err
		}
		renderUsers(all)
		return nil
	default:
		return fmt.Errorf("unknown users action %q", args[0])
	}
}

func renderUsers(users []repositories.User) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Role", "Disabled", "Created"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, user := range users {
		table.Append([]string{
			user.ID,
			string(user.Role),
			strconv.FormatBool(user.Disabled),
			user.CreatedAt.Local().Format(time.DateTime),
		})
	}
	table.Render()
}
