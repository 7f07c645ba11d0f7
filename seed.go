// path: seed.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Kausheya2006/RaiseUrVoice/database"
	"github.com/Kausheya2006/RaiseUrVoice/models"
	"github.com/Kausheya2006/RaiseUrVoice/store"
)

var seedFile string

type seedDoc struct {
	Authorities []seedAuthority `yaml:"authorities"`
}

type seedAuthority struct {
	Name        string `yaml:"name"`
	Email       string `yaml:"email"`
	HonourScore int    `yaml:"honourScore"`
}

func parseSeed(data []byte) ([]seedAuthority, error) {
	var doc seedDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(doc.Authorities) == 0 {
		return nil, errors.New("seed file lists no authorities")
	}
	return doc.Authorities, nil
}

type authorityCreator interface {
	Create(ctx context.Context, name, email string, honourScore int) (models.Authority, error)
}

// seedAuthorities creates each entry, skipping duplicates. Any other failure
// stops the run.
func seedAuthorities(ctx context.Context, s authorityCreator, entries []seedAuthority, log *zap.Logger) (created, skipped int, err error) {
	for _, e := range entries {
		a, err := s.Create(ctx, e.Name, e.Email, e.HonourScore)
		switch {
		case errors.Is(err, store.ErrConflict):
			log.Info("authority exists, skipping", zap.String("email", e.Email))
			skipped++
		case err != nil:
			return created, skipped, fmt.Errorf("seed %q: %w", e.Email, err)
		default:
			log.Info("authority created", zap.String("id", a.ID.Hex()), zap.String("email", a.Email))
			created++
		}
	}
	return created, skipped, nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	entries, err := parseSeed(data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return err
	}
	defer disconnect(db, logger)

	created, skipped, err := seedAuthorities(ctx, store.NewAuthorityStore(db.Authorities()), entries, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %d, skipped %d\n", created, skipped)
	return nil
}
