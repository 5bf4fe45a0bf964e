package targets

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/enlight/dbgmits/pkg/target"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runBinDir string

var runCmd = &cobra.Command{
	Use:   "run target [args...]",
	Short: "Launch a built target binary",
	Long: `Launches the binary of the given target from the configured binary
directory, forwarding any extra arguments and propagating its exit code.

The binary directory is taken from --bin-dir, the targets.bin_dir config
key, or defaults to ./bin. Targets are plain executables; this command only
saves the harness from tracking where they were built.

Example:
  dbgmits targets run exec
  dbgmits targets run threads --threads 5`,
	Args: cobra.MinimumNArgs(1),
	Run:  runTarget,
}

func init() {
	TargetsCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runBinDir, "bin-dir", "b", "", "Directory containing the built target binaries")
	// everything after the target name belongs to the target, not to us
	runCmd.Flags().SetInterspersed(false)
}

// binDir resolves the binary directory from flag, config, or the default
func binDir() string {
	if runBinDir != "" {
		return runBinDir
	}
	if configured := viper.GetString("targets.bin_dir"); configured != "" {
		return configured
	}
	return "bin"
}

func runTarget(cmd *cobra.Command, args []string) {
	t, err := target.Descriptor.Target(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	binPath := filepath.Join(binDir(), t.Binary)
	if _, err := os.Stat(binPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: target binary not found at %s (build it first, or point --bin-dir at it)\n", binPath)
		os.Exit(2)
	}

	slog.Debug("launching target", "target", t.Name, "binary", binPath, "args", args[1:])

	proc := exec.Command(binPath, args[1:]...)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Debug("target exited", "target", t.Name, "code", exitErr.ExitCode())
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "Error launching target: %v\n", err)
		os.Exit(2)
	}

	slog.Debug("target exited", "target", t.Name, "code", 0)
}
