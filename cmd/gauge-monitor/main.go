//go:build !rp2040 && !rp2350

// Command gauge-monitor tails the gauge firmware's serial log and prints the
// periodic value summaries in each channel's display color.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"gaugecode-go/services/config"
	"gaugecode-go/services/gauge/status"
)

const defaultBaudRate = 115200

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port       string
		baud       int
		configPath string
		list       bool
	)
	cmd := &cobra.Command{
		Use:   "gauge-monitor",
		Short: "Follow the gauge firmware's serial log",
		Long: `Open the firmware's log UART and print every line. Value summaries are
reformatted with each channel in its configured color and channel switches
are highlighted.

Examples:
  gauge-monitor --list
  gauge-monitor --port /dev/ttyUSB0
  gauge-monitor --port COM5 --config gauge.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return listPorts(cmd.OutOrStdout())
			}
			if port == "" {
				return fmt.Errorf("--port is required (see --list)")
			}
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}

			p, err := serial.Open(port, &serial.Mode{BaudRate: baud})
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", port, err)
			}
			defer p.Close()

			return follow(p, cmd.OutOrStdout(), newPalette(cfg))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&port, "port", "p", "", "serial port of the firmware's log UART")
	f.IntVarP(&baud, "baud", "b", defaultBaudRate, "baud rate")
	f.StringVarP(&configPath, "config", "c", "", "YAML configuration with the channel colors")
	f.BoolVar(&list, "list", false, "list serial ports and exit")
	return cmd
}

func listPorts(w io.Writer) error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return fmt.Errorf("failed to list serial ports: %w", err)
	}
	if len(ports) == 0 {
		fmt.Fprintln(w, "no serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Fprintln(w, p)
	}
	return nil
}

// palette maps channel names to their display styles.
type palette struct {
	channels map[string]lipgloss.Style
	plain    lipgloss.Style
	active   lipgloss.Style
	dim      lipgloss.Style
}

func newPalette(cfg *config.Config) *palette {
	p := &palette{
		channels: make(map[string]lipgloss.Style, len(cfg.Channels)),
		plain:    lipgloss.NewStyle(),
		active:   lipgloss.NewStyle().Bold(true).Underline(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	for _, cc := range cfg.Channels {
		p.channels[cc.Name] = lipgloss.NewStyle().Foreground(lipgloss.Color(cc.Color.String()))
	}
	return p
}

func (p *palette) style(name string) lipgloss.Style {
	if s, ok := p.channels[name]; ok {
		return s
	}
	return p.plain
}

// follow copies r to w line by line until r is exhausted.
func follow(r io.Reader, w io.Writer, p *palette) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fmt.Fprintln(w, p.format(sc.Text()))
	}
	return sc.Err()
}

func (p *palette) format(line string) string {
	if rs, ok := status.Parse(line); ok {
		parts := make([]string, len(rs))
		for i, r := range rs {
			parts[i] = p.style(r.Name).Render(status.Format([]status.Reading{r}))
		}
		return strings.Join(parts, "  |  ")
	}
	if i, name, ok := status.ParseSwitch(line); ok {
		return p.active.Render(fmt.Sprintf("> [%d] %s", i, p.style(name).Render(name)))
	}
	return p.dim.Render(strings.TrimRight(line, "\r"))
}
