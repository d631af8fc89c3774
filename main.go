package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/customeros/socialstack/api/graphql/schema"
	"github.com/customeros/socialstack/config"
	"github.com/customeros/socialstack/server"
)

func main() {
	app := &cli.App{
		Name:  "socialstack",
		Usage: "GraphQL API over in-memory users, profiles and posts",
		Commands: []*cli.Command{
			{
				Name:   "server",
				Usage:  "Start the application server",
				Action: runServer,
			},
			{
				Name:  "schema",
				Usage: "Print the GraphQL schema",
				Action: func(c *cli.Context) error {
					_, err := fmt.Fprint(c.App.Writer, schema.SDL)
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runServer(_ *cli.Context) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("SocialStack starting up...")

	cfg, err := config.InitConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}

	if err := srv.Run(); err != nil {
		return fmt.Errorf("server startup failed: %w", err)
	}

	log.Println("Shutdown complete")
	return nil
}
