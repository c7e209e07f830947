package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/3schwartz/hardhat/internal/app"
	"github.com/3schwartz/hardhat/internal/errors"
	"github.com/3schwartz/hardhat/pkg/docker"
)

// version is set at build time via ldflags
var version = "dev"

var socketPath string

var rootCmd = &cobra.Command{
	Use:     "hardhat-docker",
	Short:   "hardhat-docker - Sandboxed container execution for build toolchains",
	Version: version,
	Long: `hardhat-docker runs one-shot build and test commands inside pinned
toolchain images, managing image pulls and freshness checks against the
registry so users never touch the container runtime directly.`,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that Docker is installed and its daemon is reachable",
	Run: func(cmd *cobra.Command, args []string) {
		if err := app.Status(cmd.Context(), dockerOptions()); err != nil {
			errors.HandleError(err)
			os.Exit(1)
		}
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull <repository:tag>",
	Short: "Pull an image unless the local copy is already current",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := app.Pull(cmd.Context(), args[0], dockerOptions()); err != nil {
			errors.HandleError(err)
			os.Exit(1)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a ContainerRun spec in a one-shot container",
	Long: `Run parses a ContainerRun YAML spec, makes sure the referenced image is
present and up to date, executes the command with the configured bind
mounts, and exits with the container's status code.`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			fmt.Fprintln(os.Stderr, "Error: --file flag is required")
			os.Exit(1)
		}

		statusCode, err := app.Run(cmd.Context(), file, dockerOptions())
		if err != nil {
			errors.HandleError(err)
		}
		os.Exit(statusCode)
	},
}

func dockerOptions() docker.Options {
	return docker.Options{SocketPath: socketPath}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&socketPath, "socket", "", "Docker control socket path (defaults to the platform's well-known path)")

	runCmd.Flags().StringP("file", "f", "", "Path to the ContainerRun spec file")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
