package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/devbook/devbook/devbook"
	"github.com/devbook/devbook/internal/cliopt"
	"github.com/devbook/devbook/internal/cliutil"
)

// openStore loads the configured snapshot into a fresh store.
func openStore(g cliopt.GlobalOptions) (*devbook.Store, error) {
	snap, err := cliutil.ResolveAdapter(g)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	dump, err := snap.Load(context.Background())
	if err != nil {
		return nil, err
	}
	store := devbook.NewStore()
	if err := store.Load(dump); err != nil {
		return nil, err
	}
	return store, nil
}

// criteriaArgs is a repeatable -field Kind=probe flag.
type criteriaArgs []string

func (c *criteriaArgs) String() string { return strings.Join(*c, ",") }
func (c *criteriaArgs) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func (c criteriaArgs) Parse() (map[devbook.FieldKind]string, error) {
	criteria := make(map[devbook.FieldKind]string, len(c))
	for _, kv := range c {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid -field %q (expected Kind=probe)", kv)
		}
		criteria[devbook.FieldKind(parts[0])] = parts[1]
	}
	return criteria, nil
}
