package updtime

import (
	"fmt"
	"time"

	"github.com/dtnitsch/spyglass/pkg/fetcher"
	probe "github.com/dtnitsch/spyglass/pkg/updtime"
	"github.com/urfave/cli/v2"
)

func UpdTimeAction(c *cli.Context) error {
	nation := c.String("nation")
	if nation == "" {
		return cli.Exit("Error: --nation is required to identify yourself to the API", 2)
	}

	client := fetcher.NewClient(c.App.Version, nation)
	if err := client.ValidateNation(c.Context); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	lengths, err := probe.Probe(c.Context, client, time.Now())
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	fmt.Printf("minor: %d\n", lengths.Minor)
	fmt.Printf("major: %d\n", lengths.Major)
	return nil
}
