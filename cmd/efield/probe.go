package main

import (
	"fmt"
	"time"

	"github.com/phanxgames/efield"
	"github.com/phanxgames/efield/field"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// probeCmd samples the configured scene once without opening a window.
func (c *cli) probeCmd() *cobra.Command {
	var x, y float64
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the field at a point and per-frame statistics",
		Long: "Evaluates the configured charges at (--x, --y), or at the configured\n" +
			"sensor when no point is given, and samples one full frame.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := field.Vec2{X: c.cfg.Sensor.X, Y: c.cfg.Sensor.Y}
			if cmd.Flags().Changed("x") {
				p.X = x
			}
			if cmd.Flags().Changed("y") {
				p.Y = y
			}
			return c.probe(cmd, p)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "probe x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "probe y coordinate")
	return cmd
}

func (c *cli) probe(cmd *cobra.Command, p field.Vec2) error {
	st := efield.NewState(c.cfg)
	sampler, err := field.NewSampler(c.cfg.SamplerConfig())
	if err != nil {
		return err
	}

	start := time.Now()
	frame := sampler.Sample(st.Charges, st.Sensor)
	elapsed := time.Since(start)
	s := field.SampleSensor(p, st.Charges)

	c.log.Debug("frame sampled",
		zap.Duration("elapsed", elapsed),
		zap.Int("workers", sampler.Config().Workers))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "point:        (%g, %g)\n", p.X, p.Y)
	fmt.Fprintf(out, "field:        (%.6g, %.6g) N/C\n", s.Vector.X, s.Vector.Y)
	fmt.Fprintf(out, "magnitude:    %.6g N/C\n", s.Magnitude())
	fmt.Fprintf(out, "charges:      %d\n", len(st.Charges))
	fmt.Fprintf(out, "grid samples: %d\n", len(frame.Grid))
	fmt.Fprintf(out, "lines:        %d\n", len(frame.Lines))
	fmt.Fprintf(out, "points:       %d\n", frame.PointCount())
	fmt.Fprintf(out, "sample time:  %v\n", elapsed)
	return nil
}

// configCmd prints the effective configuration as YAML.
func (c *cli) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(c.cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}
