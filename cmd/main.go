package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rbcmap",
		Short: "City minimap server with nearest-location reports",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(nearestCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP server port (overrides PORT)")
	return cmd
}

func nearestCmd() *cobra.Command {
	var opts nearestOptions

	cmd := &cobra.Command{
		Use:   "nearest",
		Short: "Print the nearest locations around a named intersection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNearest(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Column, "column", "", "column street name")
	cmd.Flags().StringVar(&opts.Row, "row", "", "row street name")
	cmd.Flags().StringVar(&opts.Category, "category", "", "list every location of one category by distance")
	cmd.Flags().StringVar(&opts.Profile, "profile", "default", "profile whose saved destination is reported")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("row")
	return cmd
}
