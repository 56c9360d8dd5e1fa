package console

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/undoable/internal/core"
	"github.com/sandevgo/undoable/pkg/log"
)

// Router dispatches text input such as "click" or "set 4" to actions.
type Router struct {
	actions map[string]core.Action
}

func New(actions []core.Action) *Router {
	r := &Router{
		actions: make(map[string]core.Action),
	}

	for _, a := range actions {
		r.actions[a.Name()] = a
	}
	return r
}

// Execute runs one line of input. Blank lines and lines starting with '#' are ignored.
func (r *Router) Execute(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
		return nil
	}

	name := strings.ToLower(parts[0])
	args := parts[1:]

	a, ok := r.actions[name]
	if !ok {
		return fmt.Errorf("unknown action: %s", name)
	}

	log.FromCtx(ctx).Debug().Str("action", name).Strs("args", args).Msg("running action")
	return a.Execute(ctx, args)
}

// ListActions returns the registered actions sorted by name.
func (r *Router) ListActions() []core.Action {
	res := make([]core.Action, 0, len(r.actions))
	for _, a := range r.actions {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})
	return res
}
