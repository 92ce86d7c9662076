package commands

import (
	"context"

	"MemoryApp/internal/config"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload a file and print its link" }
func (uploadCmd) Usage() string       { return "upload <path>" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s, err := openSession(cfg)
	if err != nil {
		return err
	}
	up, err := s.client.Upload(ctx, args[0])
	if err != nil {
		return s.localize(err)
	}
	s.view.UploadResult(*up)
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }
