package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"go.fabricnet.io/fabric-cni/pkg/config"
	"go.fabricnet.io/fabric-cni/pkg/logging"
)

func newLogsCmd() *cobra.Command {
	var tailLines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the plugin's log file",
		Long: dedent.Dedent(`
			logs reads the file the plugin's structured logger writes to
			(spec §6), since a CNI plugin's own stdout/stderr carry the wire
			protocol and can never be used for diagnostics.
		`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			daemon, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading daemon configuration: %w", err)
			}
			logFile := daemon.LogFile
			if logFile == "" {
				logFile = logging.DefaultLogFile
			}

			f, err := os.Open(logFile)
			if err != nil {
				return fmt.Errorf("opening %s: %w", logFile, err)
			}
			defer f.Close()

			if tailLines <= 0 {
				_, err := io.Copy(cmd.OutOrStdout(), f)
				return err
			}
			return printTail(cmd.OutOrStdout(), f, tailLines)
		},
	}

	cmd.Flags().IntVarP(&tailLines, "tail", "n", 0, "print only the last N lines (0 prints the whole file)")
	return cmd
}

// printTail keeps a ring buffer of the last n lines, avoiding a second
// pass or a seek-from-end over what may be a large rotated log file.
func printTail(w io.Writer, r io.Reader, n int) error {
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			ring = ring[1:]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	for _, line := range ring {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
