package commands

import (
	"context"
	"fmt"

	"MemoryApp/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the signed-in user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	u, err := s.client.Me(ctx)
	if err != nil {
		return s.localize(err)
	}
	fmt.Fprintf(Out, "%s %s\n", s.prefs.T("auth.signedInAs"), u.Login)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
