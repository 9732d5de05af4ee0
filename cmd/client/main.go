// Command client is a small command-line client for the real-estate API.
//
// Usage:
//
//	client [-a address] [-email e -password p] <command> [args]
//
// Commands:
//
//	list [category]     print listings, optionally only "sell" or "rent"
//	favorites           print the favorites of the logged-in user
//	favorite <id>       add a listing to favorites
//	unfavorite <id>     remove a listing from favorites
//	promote <userID>    grant the admin role (admin credentials required)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/DATCH7/real-estate/internal/adapter"
	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [-a address] [-email e -password p] <list|favorites|favorite|unfavorite|promote> [args]")

func main() {
	log := logger.NewLogger("real-estate-client")

	fs := flag.NewFlagSet("client", flag.ExitOnError)
	address := fs.String("a", "localhost:5000", "API address")
	email := fs.String("email", os.Getenv("CLIENT_EMAIL"), "login email")
	password := fs.String("password", os.Getenv("CLIENT_PASSWORD"), "login password")
	timeout := fs.Duration("timeout", 15*time.Second, "request timeout")
	version := fs.Bool("version", false, "print build info and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
		return
	}

	client, err := adapter.NewHTTPAPIClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()
	if *email != "" {
		profile, err := client.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
		if err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		log.Debug().Str("user_id", profile.ID).Str("role", string(profile.Role)).Msg("logged in")
	}

	runErr := run(ctx, client, fs.Args())

	if *email != "" {
		if err = client.Logout(ctx); err != nil {
			log.Err(err).Msg("logout failed")
		}
	}

	if runErr != nil {
		log.Error().Err(runErr).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.APIClient, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; {
	case cmd == "list" && len(rest) == 0:
		properties, err := client.ListProperties(ctx)
		if err != nil {
			return err
		}
		printProperties(properties)
	case cmd == "list" && len(rest) == 1:
		properties, err := client.ListPropertiesByCategory(ctx, rest[0])
		if err != nil {
			return err
		}
		printProperties(properties)
	case cmd == "favorites" && len(rest) == 0:
		favorites, err := client.ListFavorites(ctx)
		if err != nil {
			return err
		}
		properties := make([]models.Property, 0, len(favorites))
		for _, f := range favorites {
			if f.Property != nil {
				properties = append(properties, *f.Property)
			}
		}
		printProperties(properties)
	case cmd == "favorite" && len(rest) == 1:
		if err := client.AddFavorite(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("added to favorites")
	case cmd == "unfavorite" && len(rest) == 1:
		if err := client.RemoveFavorite(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Println("removed from favorites")
	case cmd == "promote" && len(rest) == 1:
		user, err := client.ChangeRole(ctx, rest[0], models.RoleAdmin)
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", user.Email, user.Role)
	default:
		return errUsage
	}

	return nil
}

func printProperties(properties []models.Property) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tCATEGORY\tPRICE\tTITLE\tADDRESS")
	for _, p := range properties {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n", p.ID, p.Category, p.Price, p.Title, p.Address)
	}
	_ = tw.Flush()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
