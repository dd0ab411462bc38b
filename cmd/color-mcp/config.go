package main

import (
	"encoding/json"
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration keys with their current and default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))

		fields := config.Fields()
		if len(keys) > 0 {
			fields = make([]config.Field, 0, len(keys))
			for _, k := range keys {
				f, ok := config.Default[k]
				if !ok {
					return errUnknownKey(k)
				}
				fields = append(fields, f)
			}
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(lo.Map(fields, func(f config.Field, _ int) *config.Field {
			return &f
		}))
	},
}

func errUnknownKey(k string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return fmt.Errorf("unknown key %s, did you mean %s?", k, closest)
}
