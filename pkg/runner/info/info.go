package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/daily/pkg/app"
	"tableflip.dev/daily/pkg/node"
	"tableflip.dev/daily/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("DAILY_CONFIG_PATH"); override != "" {
		fmt.Println("DAILY_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("DAILY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.DataPath())

	if n.Service == nil {
		return fmt.Errorf("failed to load tracking data")
	}

	dates := n.Service.Dates()
	fmt.Printf("Dates: %d\n", len(dates))
	for _, d := range dates {
		day, _ := n.Service.Day(d)
		nodes := 0
		day.Root.Walk(func(path []string, _ node.Node) {
			nodes++
		})
		fmt.Printf("  %s (%d nodes)\n", d, nodes)
	}

	return nil
}
