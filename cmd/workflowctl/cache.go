package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/travel_desk_backend/internal/adapters/cache"
	"github.com/SscSPs/travel_desk_backend/internal/core/domain"
	"github.com/spf13/cobra"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the reference-data cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate <currency|account|supplier> <id>",
		Short: "Drop a cached reference, e.g. after deactivating a supplier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.RedisURL == "" {
				return errors.New("REDIS_URL is not set, nothing is cached")
			}
			kind := domain.ReferenceKind(args[0])
			switch kind {
			case domain.RefCurrency, domain.RefAccount, domain.RefSupplier:
			default:
				return fmt.Errorf("unknown reference kind %q", args[0])
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}

			client, err := cache.NewRedisClient(cmd.Context(), cfg.RedisURL)
			if err != nil {
				return err
			}
			defer client.Close()
			if err := cache.NewReferenceCache(client, nil, cfg.ReferenceCacheTTL).Invalidate(cmd.Context(), kind, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "invalidated %s %d\n", kind, id)
			return nil
		},
	})
	return cmd
}
