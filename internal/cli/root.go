// Package cli implements the rot3 command line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/solarlune/rot3"
	"github.com/solarlune/rot3/internal/config"
	"github.com/solarlune/rot3/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Batch is the layout of a batch file: a list of conversions to run.
type Batch struct {
	Jobs []Job `yaml:"jobs"`
}

type app struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand returns the rot3 command with all of its subcommands.
func NewRootCommand() *cobra.Command {

	a := &app{}

	root := &cobra.Command{
		Use:   "rot3",
		Short: "Convert between rotation matrices, quaternions, and Euler angles",
		Long: `rot3 converts a rotation between a 3x3 rotation matrix, a unit quaternion (w, x, y, z),
and Euler angles (roll, pitch, yaw; applied intrinsically in X, Y, Z order).

Negative numbers need to come after "--" so they aren't read as flags:
  rot3 euler -- 0 -1.5 0`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Sync() },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to config file")
	flags.Int("precision", 64, "Float precision to compute in (32 or 64)")
	flags.Bool("degrees", false, "Read and print Euler angles in degrees")
	flags.String("format", config.FormatText, "Output format (text or yaml)")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("log-file", "", "Also write logs to this file")

	root.AddCommand(
		a.eulerCommand(),
		a.quaternionCommand(),
		a.matrixCommand(),
		a.gltfCommand(),
		a.batchCommand(),
	)

	return root

}

// Execute runs the rot3 command with the process's arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if err := applyFlags(cfg, cmd.Flags()); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	logger.Debug("configured",
		zap.Int("precision", cfg.Precision),
		zap.Bool("degrees", cfg.Degrees),
		zap.String("format", cfg.Format),
	)

	a.cfg = cfg

	return nil

}

// applyFlags applies command line flag overrides to the config.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) error {

	var err error

	if flags.Changed("precision") {
		if cfg.Precision, err = flags.GetInt("precision"); err != nil {
			return err
		}
	}
	if flags.Changed("degrees") {
		if cfg.Degrees, err = flags.GetBool("degrees"); err != nil {
			return err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Changed("log-file") {
		if cfg.Logging.LogFile, err = flags.GetString("log-file"); err != nil {
			return err
		}
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}

	return nil

}

func (a *app) eulerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "euler ROLL PITCH YAW",
		Short: "Convert Euler angles to a quaternion and rotation matrix",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.run(cmd.OutOrStdout(), Job{Euler: values})
		},
	}
}

func (a *app) quaternionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "quat W X Y Z",
		Aliases: []string{"quaternion"},
		Short:   "Convert a unit quaternion to a rotation matrix and Euler angles",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.run(cmd.OutOrStdout(), Job{Quaternion: values})
		},
	}
}

func (a *app) matrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix M00 M01 M02 M10 M11 M12 M20 M21 M22",
		Short: "Convert a rotation matrix (given row by row) to Euler angles and a quaternion",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			return a.run(cmd.OutOrStdout(), Job{Matrix: [][]float64{values[0:3], values[3:6], values[6:9]}})
		},
	}
}

func (a *app) gltfCommand() *cobra.Command {

	var world bool

	cmd := &cobra.Command{
		Use:   "gltf FILE",
		Short: "Print the rotation of every node in a .gltf or .glb file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			options := &rot3.GLTFLoadOptions{WorldSpace: world}

			var results []Result
			var err error

			if a.cfg.Precision == 32 {
				results, err = gltfResults[float32](args[0], options, a.cfg.Degrees)
			} else {
				results, err = gltfResults[float64](args[0], options, a.cfg.Degrees)
			}

			if err != nil {
				return err
			}

			logger.Info("loaded gltf", zap.String("path", args[0]), zap.Int("nodes", len(results)))

			return writeResults(cmd.OutOrStdout(), a.cfg.Format, a.cfg.Degrees, results)

		},
	}

	cmd.Flags().BoolVar(&world, "world", false, "Combine each node's rotation with its parents' rotations")

	return cmd

}

func gltfResults[T rot3.Real](path string, options *rot3.GLTFLoadOptions, degrees bool) ([]Result, error) {

	rotations, err := rot3.LoadGLTFFile[T](path, options)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(rotations))

	for _, rot := range rotations {
		name := rot.Name
		if name == "" {
			name = "node " + strconv.Itoa(rot.Index)
		}
		kind := KindQuaternion
		if rot.FromMatrix {
			kind = KindMatrix
		}
		results = append(results, newResult(name, kind, rot.Matrix, rot.Quaternion, degrees))
	}

	return results, nil

}

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Run every conversion listed in a YAML batch file (- reads from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			var data []byte
			var err error

			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}

			if err != nil {
				return fmt.Errorf("reading batch file: %w", err)
			}

			batch := Batch{}
			if err := yaml.Unmarshal(data, &batch); err != nil {
				return fmt.Errorf("decoding batch file: %w", err)
			}

			return a.run(cmd.OutOrStdout(), batch.Jobs...)

		},
	}
}

func (a *app) run(w io.Writer, jobs ...Job) error {

	results := make([]Result, 0, len(jobs))

	for i, job := range jobs {
		result, err := Convert(job, a.cfg.Precision, a.cfg.Degrees)
		if err != nil {
			if job.Name != "" {
				return fmt.Errorf("job %d (%s): %w", i, job.Name, err)
			}
			return fmt.Errorf("job %d: %w", i, err)
		}
		results = append(results, result)
	}

	return writeResults(w, a.cfg.Format, a.cfg.Degrees, results)

}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", arg)
		}
		values[i] = v
	}
	return values, nil
}
