// Command ghsmst runs the fragment-merging minimum spanning tree protocol
// over a topology file or a generated network.
//
//	ghsmst gen --topology random --nodes 20 --prob 0.2 --seed 7 > net.toml
//	ghsmst run net.toml --format dot
//	ghsmst verify net.toml --trials 10
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ghsmst:", err)
		stop()
		os.Exit(1)
	}
}
